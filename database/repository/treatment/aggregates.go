// File: database/repository/treatment/aggregates.go
package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"doctorsportal/models"
)

// AggregateAvailability joins each appointment option against the bookings
// taken on the given date and projects the remaining slots, all inside the
// store. The date is matched as a literal key: an empty date joins no
// bookings and every slot comes back.
func (r *mongoTreatmentRepo) AggregateAvailability(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, AvailabilityPipeline(date))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability for %q: %w", date, err)
	}
	defer cursor.Close(ctx)

	var availability []models.TreatmentAvailability
	if err := cursor.All(ctx, &availability); err != nil {
		return nil, fmt.Errorf("failed to decode availability for %q: %w", date, err)
	}
	return availability, nil
}

// AvailabilityPipeline builds the lookup / set-difference pipeline. Exposed
// so the stages can be asserted on without a live store.
func AvailabilityPipeline(date string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "bookings"},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", date}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "price", Value: 1},
			{Key: "booked", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$booked"},
					{Key: "as", Value: "book"},
					{Key: "in", Value: "$$book.slot"},
				}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: bson.D{
				{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}},
			}},
		}}},
	}
}
