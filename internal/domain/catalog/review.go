package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// Review is a customer's rating of a product or a service
type Review struct {
	ID         int64
	CustomerID int64
	ProductID  *int64
	ServiceID  *int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// NewReview creates a review for exactly one product or service
func NewReview(customerID int64, productID, serviceID *int64, rating int, comment string) (*Review, error) {
	if customerID <= 0 {
		return nil, shared.InvalidInput("Customer is required")
	}
	if (productID == nil) == (serviceID == nil) {
		return nil, shared.InvalidInput("A review must target either a product or a service")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.InvalidInput("Rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > 2000 {
		return nil, shared.InvalidInput("Comment cannot exceed 2000 characters")
	}
	return &Review{
		CustomerID: customerID,
		ProductID:  productID,
		ServiceID:  serviceID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}, nil
}

// ReviewWithAuthor is a review joined with the reviewer's name
type ReviewWithAuthor struct {
	Review
	FirstName string
	LastName  string
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	// FindByProduct lists a product's reviews, newest first
	FindByProduct(ctx context.Context, productID int64) ([]ReviewWithAuthor, error)
	// FindByService lists a service's reviews, newest first
	FindByService(ctx context.Context, serviceID int64) ([]ReviewWithAuthor, error)
}
