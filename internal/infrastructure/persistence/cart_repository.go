package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/cart"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindLines lists the session's lines with names and prices, newest first
func (r *GormCartRepository) FindLines(ctx context.Context, sessionID string) ([]cart.Line, error) {
	var rows []models.CartLineRow
	if err := r.db.WithContext(ctx).
		Table("cart c").
		Select(`c.*,
			p.name AS product_name, p.price AS product_price, p.image AS product_image,
			s.name AS service_name, s.price AS service_price`).
		Joins("LEFT JOIN products p ON c.product_id = p.id").
		Joins("LEFT JOIN services s ON c.service_id = s.id").
		Where("c.session_id = ?", sessionID).
		Order("c.created_at DESC").Order("c.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]cart.Line, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindMatching finds an existing line for the same product or service
func (r *GormCartRepository) FindMatching(ctx context.Context, sessionID string, productID, serviceID *int64, itemType cart.ItemType) (*cart.Item, error) {
	query := r.db.WithContext(ctx).Where("session_id = ? AND item_type = ?", sessionID, itemType)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	} else {
		query = query.Where("product_id IS NULL")
	}
	if serviceID != nil {
		query = query.Where("service_id = ?", *serviceID)
	} else {
		query = query.Where("service_id IS NULL")
	}

	var model models.CartItemModel
	if err := query.First(&model).Error; err != nil {
		return nil, notFound(err, "Cart item not found")
	}
	return model.ToDomain(), nil
}

// Create inserts a new line
func (r *GormCartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := models.CartItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	item.ID = model.ID
	return nil
}

// AddQuantity increments an existing line
func (r *GormCartRepository) AddQuantity(ctx context.Context, id int64, delta int) error {
	result := r.db.WithContext(ctx).Model(&models.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Cart item not found")
	}
	return nil
}

// SetQuantity overwrites a line's quantity within the session
func (r *GormCartRepository) SetQuantity(ctx context.Context, sessionID string, id int64, quantity int) error {
	result := r.db.WithContext(ctx).Model(&models.CartItemModel{}).
		Where("id = ? AND session_id = ?", id, sessionID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Cart item not found")
	}
	return nil
}

// Delete removes a line within the session
func (r *GormCartRepository) Delete(ctx context.Context, sessionID string, id int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Cart item not found")
	}
	return nil
}

// Clear removes every line in the session
func (r *GormCartRepository) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItemModel{}).Error
}

var _ cart.Repository = (*GormCartRepository)(nil)
