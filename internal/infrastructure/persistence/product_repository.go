package persistence

import (
	"context"
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Product not found")
	}
	return model.ToDomain(), nil
}

// FindByName finds a product by name
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, notFound(err, "Product not found")
	}
	return model.ToDomain(), nil
}

// Browse lists products matching the filter, newest first
func (r *GormProductRepository) Browse(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})
	if filter.InStockOnly {
		query = query.Where("stock_quantity > 0")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	switch filter.Usage {
	case catalog.UsageRacing:
		query = query.Where("is_racing = ?", true)
	case catalog.UsageDaily:
		query = query.Where("is_daily = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
	}
	return r.find(query.Order("created_at DESC").Order("id DESC"))
}

// FindFeatured lists up to limit in-stock products, newest first
func (r *GormProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	return r.find(r.db.WithContext(ctx).
		Where("stock_quantity > 0").
		Order("created_at DESC").Order("id DESC").
		Limit(limit))
}

// FindRelated lists in-stock products of the same category, excluding the product itself
func (r *GormProductRepository) FindRelated(ctx context.Context, product *catalog.Product, limit int) ([]catalog.Product, error) {
	if product.CategoryID == nil {
		return []catalog.Product{}, nil
	}
	return r.find(r.db.WithContext(ctx).
		Where("category_id = ? AND id <> ? AND stock_quantity > 0", *product.CategoryID, product.ID).
		Order("created_at DESC").
		Limit(limit))
}

// FindAllWithCategory lists every product with its category name, newest first
func (r *GormProductRepository) FindAllWithCategory(ctx context.Context) ([]catalog.ProductListing, error) {
	var rows []models.ProductListingRow
	if err := r.db.WithContext(ctx).
		Table("products p").
		Select("p.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Order("p.created_at DESC").Order("p.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.ProductListing, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindInStockByName lists in-stock products ordered by name
func (r *GormProductRepository) FindInStockByName(ctx context.Context) ([]catalog.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("stock_quantity > 0").Order("name ASC"))
}

// FindLowStock lists products with stock below threshold, lowest first
func (r *GormProductRepository) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("stock_quantity < ?", threshold).Order("stock_quantity ASC").Order("name ASC"))
}

// Count counts all products
func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).Count(&count).Error
	return count, err
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	product.ID = model.ID
	return nil
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Product not found")
	}
	return nil
}

// IsOrdered checks whether any order line references the product
func (r *GormProductRepository) IsOrdered(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderItemModel{}).Where("product_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormProductRepository) find(query *gorm.DB) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.Product, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
