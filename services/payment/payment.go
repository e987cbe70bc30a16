// File: services/payment/payment.go
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
)

// PaymentService is the payment collaborator boundary: it creates a stripe
// payment intent for a booking's price and, after the charge, records the
// payment and flips paid/transactionId on the booking.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
	RecordPayment(ctx context.Context, p models.Payment) (*models.PaymentResult, error)
}

type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Logger   *zap.Logger
}

func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	// Amount factor carried over from the legacy server.
	amount := int64(price * 1000)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

func (s *DefaultPaymentService) RecordPayment(ctx context.Context, p models.Payment) (*models.PaymentResult, error) {
	if p.InvoiceID == "" {
		p.InvoiceID = uuid.New().String()
	}

	insertedID, err := s.Payments.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	updated, err := s.Bookings.SetPaid(ctx, p.BookingID, p.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("payment recorded",
			zap.String("invoice", p.InvoiceID),
			zap.String("booking", p.BookingID),
			zap.Bool("bookingUpdated", updated))
	}
	return &models.PaymentResult{InsertedID: insertedID, BookingUpdated: updated}, nil
}
