package catalog

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrAdminReview is returned when an administrator tries to post a review
var ErrAdminReview = shared.NewDomainError(shared.ErrForbidden.Code, "Only customers can post reviews")

// ReviewService handles customer reviews of products and services
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
	serviceRepo catalog.ServiceRepository
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo catalog.ReviewRepository,
	productRepo catalog.ProductRepository,
	serviceRepo catalog.ServiceRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// AddReview stores a customer's review of an existing product or service
func (s *ReviewService) AddReview(ctx context.Context, input AddReviewInput) (*ReviewResponse, error) {
	if input.IsAdmin {
		return nil, ErrAdminReview
	}
	review, err := catalog.NewReview(input.CustomerID, input.ProductID, input.ServiceID, input.Rating, input.Comment)
	if err != nil {
		return nil, err
	}

	if review.ProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *review.ProductID); err != nil {
			return nil, err
		}
	} else if _, err := s.serviceRepo.FindByID(ctx, *review.ServiceID); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("Review added",
		zap.Int64("review_id", review.ID),
		zap.Int64("customer_id", review.CustomerID),
		zap.Int("rating", review.Rating),
	)
	resp := ToReviewResponse(catalog.ReviewWithAuthor{Review: *review})
	return &resp, nil
}

// ListForProduct returns a product's reviews with reviewer names, newest first
func (s *ReviewService) ListForProduct(ctx context.Context, productID int64) ([]ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return lo.Map(reviews, func(r catalog.ReviewWithAuthor, _ int) ReviewResponse {
		return ToReviewResponse(r)
	}), nil
}
