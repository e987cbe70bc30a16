// File: services/doctor/doctor.go
package doctor

import (
	"context"

	"go.uber.org/zap"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// DoctorService is the admin-facing roster CRUD.
type DoctorService interface {
	Add(ctx context.Context, doctor models.Doctor) (string, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Remove(ctx context.Context, id string) error
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func (s *DefaultDoctorService) Add(ctx context.Context, doctor models.Doctor) (string, error) {
	id, err := s.Repo.Insert(ctx, doctor)
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.Info("doctor added", zap.String("id", id), zap.String("name", doctor.Name))
	}
	return id, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultDoctorService) Remove(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
