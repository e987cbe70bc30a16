// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/services/availability"
)

// DefaultBookingService guards admissions into the booking ledger.
//
// A candidate passes three gates: the treatment and slot must exist in the
// catalog, and no booking with the same (email, appointmentDate, treatment)
// may already be in the ledger. The duplicate pre-check produces the
// user-facing message; the unique index on the collection is what actually
// closes the race, so a duplicate-key error from the insert maps to the same
// rejection. Slot exclusivity across different patients is deliberately not
// enforced.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Catalog treatmentRepo.TreatmentRepository
	Cache   availability.Invalidator
	Logger  *zap.Logger
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, candidate models.Booking) (*models.BookingResult, error) {
	option, err := s.Catalog.GetByName(ctx, candidate.Treatment)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrNotFound) {
			return nil, NewInvalidReferenceError(fmt.Sprintf("unknown treatment %q", candidate.Treatment))
		}
		return nil, NewDataUnavailableError("failed to load slot catalog", err)
	}
	if !containsSlot(option.Slots, candidate.Slot) {
		return nil, NewInvalidReferenceError(
			fmt.Sprintf("slot %q is not offered for treatment %q", candidate.Slot, candidate.Treatment))
	}

	conflicts, err := s.Repo.FindConflicts(ctx, candidate.Email, candidate.AppointmentDate, candidate.Treatment)
	if err != nil {
		return nil, NewDataUnavailableError("failed to check existing bookings", err)
	}
	if len(conflicts) > 0 {
		return nil, NewDuplicateBookingError(candidate.AppointmentDate)
	}

	id, err := s.Repo.Insert(ctx, candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			// Lost the race to a concurrent identical request.
			return nil, NewDuplicateBookingError(candidate.AppointmentDate)
		}
		return nil, NewDataUnavailableError("failed to insert booking", err)
	}

	s.invalidate(ctx, candidate.AppointmentDate)

	if s.Logger != nil {
		s.Logger.Info("booking admitted",
			zap.String("id", id),
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.AppointmentDate),
			zap.String("slot", candidate.Slot))
	}
	return &models.BookingResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *DefaultBookingService) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewDataUnavailableError("failed to load bookings", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// invalidate drops any cached availability for the booked date. The write is
// already acknowledged, so a cache failure is logged, not surfaced.
func (s *DefaultBookingService) invalidate(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, date); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to invalidate availability cache",
			zap.String("date", date), zap.Error(err))
	}
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
