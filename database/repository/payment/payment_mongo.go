// File: database/repository/payment/payment_mongo.go
package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"doctorsportal/models"
)

func (r *mongoPaymentRepo) Insert(ctx context.Context, payment models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("failed to insert payment: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}
