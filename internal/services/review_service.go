package services

import (
	"context"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

// ReviewService is deliberately unimplemented. Every operation returns the
// same unsupported error so callers can tell a missing feature apart from a
// genuine fault.
type ReviewService struct{}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

func (rs *ReviewService) notImplemented() error {
	return apperr.New(apperr.Unsupported, "reviews are not implemented")
}

func (rs *ReviewService) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	return nil, rs.notImplemented()
}

func (rs *ReviewService) GetEventReviews(ctx context.Context, eventID string) ([]*models.Review, error) {
	return nil, rs.notImplemented()
}

func (rs *ReviewService) GetSupplierReviews(ctx context.Context, supplierID string) ([]*models.Review, error) {
	return nil, rs.notImplemented()
}

func (rs *ReviewService) GetAverageRating(ctx context.Context, entityID string) (float64, error) {
	return 0, rs.notImplemented()
}

func (rs *ReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	return rs.notImplemented()
}
