// File: services/availability/client_computed.go
package availability

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
)

// ClientComputedService loads both collections fully and computes the
// difference in-process.
type ClientComputedService struct {
	Treatments treatmentRepo.TreatmentRepository
	Bookings   bookingRepo.BookingRepository
	Logger     *zap.Logger
}

func (s *ClientComputedService) GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	options, err := s.Treatments.GetAll(ctx)
	if err != nil {
		return nil, NewDataUnavailableError("failed to load slot catalog", err)
	}

	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, NewDataUnavailableError("failed to load bookings", err)
	}

	// Group the taken slots by treatment name.
	taken := make(map[string]map[string]struct{}, len(options))
	for _, b := range booked {
		slots, ok := taken[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	result := make([]models.TreatmentAvailability, 0, len(options))
	for _, option := range options {
		result = append(result, models.TreatmentAvailability{
			Name:  option.Name,
			Price: option.Price,
			Slots: subtractSlots(option.Slots, taken[option.Name]),
		})
	}

	if s.Logger != nil {
		s.Logger.Debug("computed availability",
			zap.String("date", date),
			zap.Int("treatments", len(result)),
			zap.Int("bookings", len(booked)))
	}
	return result, nil
}

// subtractSlots keeps the catalog's slot order; the taken set's order is
// irrelevant.
func subtractSlots(catalog []string, taken map[string]struct{}) []string {
	remaining := make([]string, 0, len(catalog))
	for _, slot := range catalog {
		if _, booked := taken[slot]; !booked {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}
