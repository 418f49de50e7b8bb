package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements catalog.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a review
func (r *GormReviewRepository) Create(ctx context.Context, review *catalog.Review) error {
	model := models.ReviewModelFromDomain(review)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	review.ID = model.ID
	return nil
}

// FindByProduct lists a product's reviews, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID int64) ([]catalog.ReviewWithAuthor, error) {
	return r.findWithAuthor(ctx, "r.product_id = ?", productID)
}

// FindByService lists a service's reviews, newest first
func (r *GormReviewRepository) FindByService(ctx context.Context, serviceID int64) ([]catalog.ReviewWithAuthor, error) {
	return r.findWithAuthor(ctx, "r.service_id = ?", serviceID)
}

func (r *GormReviewRepository) findWithAuthor(ctx context.Context, cond string, id int64) ([]catalog.ReviewWithAuthor, error) {
	var rows []models.ReviewRow
	if err := r.db.WithContext(ctx).
		Table("reviews r").
		Select("r.*, u.first_name, u.last_name").
		Joins("LEFT JOIN users u ON r.customer_id = u.id").
		Where(cond, id).
		Order("r.created_at DESC").Order("r.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.ReviewWithAuthor, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
