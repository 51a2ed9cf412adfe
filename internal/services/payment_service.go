package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

// PaymentService creates stub payment records: no gateway is called and
// every created payment is COMPLETED. The gateway operations below exist so
// that callers get a deterministic unsupported error instead of a fault.
type PaymentService struct {
	payments models.PaymentRepo
}

func NewPaymentService(payments models.PaymentRepo) *PaymentService {
	return &PaymentService{
		payments: payments,
	}
}

func (ps *PaymentService) CreatePayment(ctx context.Context, bookingID, userID, eventID string, amount float64, method models.PaymentMethod) (*models.Payment, error) {
	if method == "" {
		method = models.PaymentMethodCash
	}

	now := time.Now()
	payment := &models.Payment{
		BookingID:     bookingID,
		UserID:        userID,
		EventID:       eventID,
		Amount:        amount,
		Status:        models.PaymentStatusCompleted,
		Method:        method,
		TransactionID: "TXN-" + bookingID,
		CreatedAt:     now,
		CompletedAt:   now,
	}

	created, err := ps.payments.CreatePayment(ctx, payment)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to create payment", err)
	}
	return created, nil
}

func (ps *PaymentService) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := ps.payments.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load payment", err)
	}
	if payment == nil {
		return nil, apperr.New(apperr.NotFound, "payment not found")
	}
	return payment, nil
}

func (ps *PaymentService) ListUserPayments(ctx context.Context, userID string) ([]*models.Payment, error) {
	payments, err := ps.payments.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list payments", err)
	}
	return payments, nil
}

func (ps *PaymentService) ProcessPayment(ctx context.Context, paymentID string, method models.PaymentMethod) (*models.Payment, error) {
	return nil, apperr.New(apperr.Unsupported, "real payment processing is not implemented")
}

func (ps *PaymentService) RefundPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return nil, apperr.New(apperr.Unsupported, "refunds are not implemented")
}

func (ps *PaymentService) InitiateStripePayment(ctx context.Context, paymentID string, amount float64) (string, error) {
	return "", apperr.New(apperr.Unsupported, "stripe integration is not implemented")
}

func (ps *PaymentService) InitiatePayPalPayment(ctx context.Context, paymentID string, amount float64) (string, error) {
	return "", apperr.New(apperr.Unsupported, "paypal integration is not implemented")
}
