// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/database"
	"doctorsportal/models"
)

// PaymentRepository stores payment records. Append-only.
type PaymentRepository interface {
	Insert(ctx context.Context, payment models.Payment) (string, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a PaymentRepository over the payments collection.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{
		coll: database.DB().Collection("payments"),
	}
}
