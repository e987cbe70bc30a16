// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/database"
	"doctorsportal/models"
)

// ErrNotFound is returned when a delete targets a missing doctor.
var ErrNotFound = mongo.ErrNoDocuments

// DoctorRepository stores the doctor roster, admin-managed.
type DoctorRepository interface {
	Insert(ctx context.Context, doctor models.Doctor) (string, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a DoctorRepository over the doctors collection.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
