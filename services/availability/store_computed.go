// File: services/availability/store_computed.go
package availability

import (
	"context"

	"go.uber.org/zap"

	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
)

// StoreComputedService delegates the join and set-difference to the store's
// aggregation engine.
type StoreComputedService struct {
	Treatments treatmentRepo.TreatmentRepository
	Logger     *zap.Logger
}

func (s *StoreComputedService) GetAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	result, err := s.Treatments.AggregateAvailability(ctx, date)
	if err != nil {
		return nil, NewDataUnavailableError("failed to aggregate availability", err)
	}

	if s.Logger != nil {
		s.Logger.Debug("aggregated availability",
			zap.String("date", date),
			zap.Int("treatments", len(result)))
	}
	return result, nil
}
