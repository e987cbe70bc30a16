// File: database/repository/treatment/treatment_mongo.go
package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/models"
)

// ErrNotFound is returned when a catalog lookup by name misses.
var ErrNotFound = mongo.ErrNoDocuments

func (r *mongoTreatmentRepo) GetAll(ctx context.Context) ([]models.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var options []models.TreatmentOption
	if err := cursor.All(ctx, &options); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return options, nil
}

func (r *mongoTreatmentRepo) GetByName(ctx context.Context, name string) (*models.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var option models.TreatmentOption
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&option); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment option %q: %w", name, err)
	}
	return &option, nil
}

func (r *mongoTreatmentRepo) GetNames(ctx context.Context) ([]models.TreatmentName, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var names []models.TreatmentName
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode appointment specialties: %w", err)
	}
	return names, nil
}
