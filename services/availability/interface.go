// File: services/availability/interface.go
package availability

import (
	"context"

	"doctorsportal/models"
)

// Service answers the one availability question: which slots of each
// treatment are still free on a given date. The date is an opaque key; an
// empty date matches no bookings and returns the full catalog.
//
// Two interchangeable implementations exist. ClientComputedService loads the
// catalog and the day's bookings and subtracts in-process;
// StoreComputedService pushes the join and set-difference into the store.
// They must agree treatment-by-treatment, slot-order-sensitive, for every
// catalog/ledger state.
type Service interface {
	GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error)
}
