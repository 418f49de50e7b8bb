package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInventoryTransactionRepository implements inventory.TransactionRepository using GORM
type GormInventoryTransactionRepository struct {
	db *gorm.DB
}

// NewGormInventoryTransactionRepository creates a new GormInventoryTransactionRepository
func NewGormInventoryTransactionRepository(db *gorm.DB) *GormInventoryTransactionRepository {
	return &GormInventoryTransactionRepository{db: db}
}

// Apply moves the product's stock and appends the ledger entry in one transaction
func (r *GormInventoryTransactionRepository) Apply(ctx context.Context, entry *inventory.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyStockMovement(tx, entry)
	})
}

// Summary returns one row per product with its sold and walk-in totals, ordered by name
func (r *GormInventoryTransactionRepository) Summary(ctx context.Context) ([]inventory.ProductSummary, error) {
	var rows []models.ProductSummaryRow
	err := r.db.WithContext(ctx).
		Table("products p").
		Select(`p.id, p.name, p.brand, p.model, p.stock_quantity, p.price,
			c.name AS category_name,
			COALESCE(SUM(CASE WHEN it.transaction_type = ? THEN ABS(it.quantity) ELSE 0 END), 0) AS total_sold,
			COALESCE(SUM(CASE WHEN it.transaction_type = ? THEN ABS(it.quantity) ELSE 0 END), 0) AS total_walkin`,
			inventory.TransactionTypeSale, inventory.TransactionTypeWalkIn).
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Joins("LEFT JOIN inventory_transactions it ON p.id = it.product_id").
		Group("p.id, p.name, p.brand, p.model, p.stock_quantity, p.price, c.name").
		Order("p.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]inventory.ProductSummary, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// Recent returns the latest entries joined with product, admin and order, newest first
func (r *GormInventoryTransactionRepository) Recent(ctx context.Context, limit int) ([]inventory.TransactionView, error) {
	var rows []models.TransactionViewRow
	query := r.db.WithContext(ctx).
		Table("inventory_transactions it").
		Select(`it.*,
			p.name AS product_name, p.brand AS product_brand, p.model AS product_model,
			u.first_name AS admin_first_name, u.last_name AS admin_last_name,
			o.order_number`).
		Joins("LEFT JOIN products p ON it.product_id = p.id").
		Joins("LEFT JOIN users u ON it.admin_id = u.id").
		Joins("LEFT JOIN orders o ON it.order_id = o.id").
		Order("it.transaction_date DESC").Order("it.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.TransactionView, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindByProduct returns a product's entries, newest first
func (r *GormInventoryTransactionRepository) FindByProduct(ctx context.Context, productID int64) ([]inventory.Transaction, error) {
	var rows []models.InventoryTransactionModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("transaction_date DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]inventory.Transaction, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// NetChange sums the signed quantities recorded for a product
func (r *GormInventoryTransactionRepository) NetChange(ctx context.Context, productID int64) (int, error) {
	var net int
	err := r.db.WithContext(ctx).
		Model(&models.InventoryTransactionModel{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&net).Error
	return net, err
}

var _ inventory.TransactionRepository = (*GormInventoryTransactionRepository)(nil)
