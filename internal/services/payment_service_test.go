package services

import (
	"context"
	"testing"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayment_StubFields(t *testing.T) {
	repo := newFakePaymentRepo()
	ps := NewPaymentService(repo)

	payment, err := ps.CreatePayment(context.Background(), "bk-1", "user-1", "ev-1", 120.0, models.PaymentMethodStripe)
	require.NoError(t, err)

	assert.Equal(t, "bk-1", payment.BookingID)
	assert.Equal(t, "user-1", payment.UserID)
	assert.Equal(t, "ev-1", payment.EventID)
	assert.Equal(t, 120.0, payment.Amount)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, models.PaymentMethodStripe, payment.Method)
	assert.Equal(t, "TXN-bk-1", payment.TransactionID)
	assert.False(t, payment.CompletedAt.IsZero())
}

func TestCreatePayment_EmptyMethodDefaultsToCash(t *testing.T) {
	ps := NewPaymentService(newFakePaymentRepo())

	payment, err := ps.CreatePayment(context.Background(), "bk-2", "u", "e", 10, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCash, payment.Method)
}

func TestGetPaymentByID_Missing(t *testing.T) {
	ps := NewPaymentService(newFakePaymentRepo())

	_, err := ps.GetPaymentByID(context.Background(), "64b0c8f2e1a2b3c4d5e6f708")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestGatewayOperationsUnsupported(t *testing.T) {
	ps := NewPaymentService(newFakePaymentRepo())
	ctx := context.Background()

	_, err := ps.ProcessPayment(ctx, "p1", models.PaymentMethodStripe)
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	_, err = ps.RefundPayment(ctx, "p1")
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	_, err = ps.InitiateStripePayment(ctx, "p1", 10)
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	_, err = ps.InitiatePayPalPayment(ctx, "p1", 10)
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))
}

func TestReviewOperationsUnsupported(t *testing.T) {
	rs := NewReviewService()
	ctx := context.Background()

	_, err := rs.CreateReview(ctx, &models.Review{})
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	_, err = rs.GetEventReviews(ctx, "ev-1")
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	_, err = rs.GetAverageRating(ctx, "ev-1")
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))

	err = rs.DeleteReview(ctx, "rv-1")
	assert.Equal(t, apperr.Unsupported, apperr.KindOf(err))
}
