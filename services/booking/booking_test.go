package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
)

// fakeLedger is an in-memory BookingRepository. When enforceUnique is set it
// behaves like the real collection's unique index.
type fakeLedger struct {
	bookings      []models.Booking
	insertErr     error
	findErr       error
	enforceUnique bool
}

func (f *fakeLedger) Insert(ctx context.Context, booking models.Booking) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	if f.enforceUnique {
		for _, b := range f.bookings {
			if b.Email == booking.Email && b.AppointmentDate == booking.AppointmentDate && b.Treatment == booking.Treatment {
				return "", bookingRepo.ErrDuplicateBooking
			}
		}
	}
	booking.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, booking)
	return booking.ID.Hex(), nil
}

func (f *fakeLedger) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			return &f.bookings[i], nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeLedger) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindConflicts(ctx context.Context, email, date, treatment string) ([]models.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email && b.AppointmentDate == date && b.Treatment == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) SetPaid(ctx context.Context, id, transactionID string) (bool, error) {
	for i := range f.bookings {
		if f.bookings[i].ID.Hex() == id {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
			return true, nil
		}
	}
	return false, nil
}

// fakeCatalog is an in-memory TreatmentRepository for the reference checks.
type fakeCatalog struct {
	options []models.TreatmentOption
	err     error
}

func (f *fakeCatalog) GetAll(ctx context.Context) ([]models.TreatmentOption, error) {
	return f.options, f.err
}

func (f *fakeCatalog) GetByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.options {
		if f.options[i].Name == name {
			return &f.options[i], nil
		}
	}
	return nil, treatmentRepo.ErrNotFound
}

func (f *fakeCatalog) GetNames(ctx context.Context) ([]models.TreatmentName, error) {
	return nil, nil
}

func (f *fakeCatalog) AggregateAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	return nil, nil
}

// fakeInvalidator records which dates were dropped from the cache.
type fakeInvalidator struct {
	dates []string
	err   error
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, date string) error {
	if f.err != nil {
		return f.err
	}
	f.dates = append(f.dates, date)
	return nil
}

func newService(ledger *fakeLedger) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: ledger,
		Catalog: &fakeCatalog{options: []models.TreatmentOption{
			{Name: "Braces", Price: 300, Slots: []string{"9AM", "10AM", "11AM"}},
		}},
	}
}

func candidate() models.Booking {
	return models.Booking{
		Treatment:       "Braces",
		AppointmentDate: "2024-01-05",
		Slot:            "10AM",
		Email:           "a@x.com",
	}
}

func TestCreateBookingAdmits(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)

	result, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	require.NotEmpty(t, result.InsertedID)

	// Exactly one append, and the record is retrievable by the returned id.
	require.Len(t, ledger.bookings, 1)
	stored, err := svc.GetByID(context.Background(), result.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Braces", stored.Treatment)
	assert.Equal(t, "10AM", stored.Slot)
}

func TestDuplicateTripleRejected(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)

	// Same (email, date, treatment) with a different slot must still be
	// rejected, and the ledger must not grow.
	second := candidate()
	second.Slot = "9AM"
	_, err = svc.CreateBooking(context.Background(), second)
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDuplicateBooking, be.Code)
	assert.Contains(t, be.Message, "2024-01-05")
	assert.Len(t, ledger.bookings, 1)
}

func TestDifferentEmailSameSlotAdmitted(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)

	// Slot exclusivity across patients is not guarded; only availability
	// subtraction protects against it.
	other := candidate()
	other.Email = "b@x.com"
	result, err := svc.CreateBooking(context.Background(), other)
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Len(t, ledger.bookings, 2)
}

func TestStorageDuplicateMapsToRejection(t *testing.T) {
	// The pre-check sees an empty ledger but the insert loses the race and
	// hits the unique index.
	ledger := &fakeLedger{insertErr: bookingRepo.ErrDuplicateBooking}
	svc := newService(ledger)

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDuplicateBooking, be.Code)
	assert.Empty(t, ledger.bookings)
}

func TestUniqueIndexBehaviorEndToEnd(t *testing.T) {
	ledger := &fakeLedger{enforceUnique: true}
	svc := newService(ledger)

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)

	second := candidate()
	second.Slot = "11AM"
	_, err = svc.CreateBooking(context.Background(), second)
	require.Error(t, err)
	assert.Len(t, ledger.bookings, 1)
}

func TestUnknownTreatmentRejected(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)

	c := candidate()
	c.Treatment = "Ghost Treatment"
	_, err := svc.CreateBooking(context.Background(), c)
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidReference, be.Code)
	assert.Empty(t, ledger.bookings)
}

func TestUnknownSlotRejected(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)

	c := candidate()
	c.Slot = "3AM"
	_, err := svc.CreateBooking(context.Background(), c)
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidReference, be.Code)
	assert.Empty(t, ledger.bookings)
}

func TestLedgerFailureSurfacesAsDataUnavailable(t *testing.T) {
	ledger := &fakeLedger{findErr: errors.New("connection refused")}
	svc := newService(ledger)

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDataUnavailable, be.Code)
}

func TestCacheInvalidatedOnAdmissionOnly(t *testing.T) {
	ledger := &fakeLedger{}
	inv := &fakeInvalidator{}
	svc := newService(ledger)
	svc.Cache = inv

	_, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-05"}, inv.dates)

	// A rejection must not touch the cache.
	_, err = svc.CreateBooking(context.Background(), candidate())
	require.Error(t, err)
	assert.Equal(t, []string{"2024-01-05"}, inv.dates)
}

func TestCacheFailureDoesNotFailAdmission(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newService(ledger)
	svc.Cache = &fakeInvalidator{err: errors.New("redis down")}

	result, err := svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
}
