// File: database/repository/treatment/interface.go
package treatmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/database"
	"doctorsportal/models"
)

// TreatmentRepository reads the slot catalog. The catalog is owned by the
// admin collaborator; this core never writes it.
type TreatmentRepository interface {
	GetAll(ctx context.Context) ([]models.TreatmentOption, error)
	GetByName(ctx context.Context, name string) (*models.TreatmentOption, error)
	GetNames(ctx context.Context) ([]models.TreatmentName, error)
	// AggregateAvailability pushes the date-filtered join against the bookings
	// collection and the slot set-difference into the query engine.
	AggregateAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error)
}

type mongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a TreatmentRepository over the
// appointmentOptions collection.
func NewMongoTreatmentRepo() TreatmentRepository {
	return &mongoTreatmentRepo{
		coll: database.DB().Collection("appointmentOptions"),
	}
}
