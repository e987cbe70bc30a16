package treatmentRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailabilityPipelineShape(t *testing.T) {
	pipeline := AvailabilityPipeline("2024-01-05")
	require.Len(t, pipeline, 3)

	lookup, ok := pipeline[0].Map()["$lookup"].(bson.D)
	require.True(t, ok)
	lookupMap := lookup.Map()
	assert.Equal(t, "bookings", lookupMap["from"])
	assert.Equal(t, "name", lookupMap["localField"])
	assert.Equal(t, "treatment", lookupMap["foreignField"])
	assert.Equal(t, "booked", lookupMap["as"])

	// The inner pipeline matches the date as a literal key.
	inner, ok := lookupMap["pipeline"].(bson.A)
	require.True(t, ok)
	require.Len(t, inner, 1)
	match := inner[0].(bson.D).Map()["$match"].(bson.D).Map()
	expr := match["$expr"].(bson.D).Map()
	assert.Equal(t, bson.A{"$appointmentDate", "2024-01-05"}, expr["$eq"])

	// The final projection subtracts booked slots from the catalog.
	final, ok := pipeline[2].Map()["$project"].(bson.D)
	require.True(t, ok)
	slots := final.Map()["slots"].(bson.D).Map()
	assert.Equal(t, bson.A{"$slots", "$booked"}, slots["$setDifference"])
}

func TestAvailabilityPipelineEmptyDate(t *testing.T) {
	pipeline := AvailabilityPipeline("")
	lookup := pipeline[0].Map()["$lookup"].(bson.D).Map()
	inner := lookup["pipeline"].(bson.A)
	match := inner[0].(bson.D).Map()["$match"].(bson.D).Map()
	expr := match["$expr"].(bson.D).Map()

	// No date is still a literal comparison, never a match-all.
	assert.Equal(t, bson.A{"$appointmentDate", ""}, expr["$eq"])
}
