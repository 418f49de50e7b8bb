package persistence

import (
	"fmt"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// applyStockMovement moves a product's stock counter by entry.Quantity and appends
// the ledger entry, both on tx. Decreases are guarded so stock never goes negative.
func applyStockMovement(tx *gorm.DB, entry *inventory.Transaction) error {
	query := tx.Model(&models.ProductModel{}).Where("id = ?", entry.ProductID)
	if entry.IsDecrease() {
		query = query.Where("stock_quantity >= ?", entry.Units())
	}
	result := query.Updates(map[string]any{
		"stock_quantity": gorm.Expr("stock_quantity + ?", entry.Quantity),
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("update stock for product %d: %w", entry.ProductID, result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.ProductModel{}).Where("id = ?", entry.ProductID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.NotFound("Product not found")
		}
		return shared.NewDomainError(shared.ErrInsufficientStock.Code,
			fmt.Sprintf("Insufficient stock for product #%d", entry.ProductID))
	}

	if entry.TransactionDate.IsZero() {
		entry.TransactionDate = time.Now()
	}
	model := models.InventoryTransactionModelFromDomain(entry)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("record inventory transaction: %w", err)
	}
	entry.ID = model.ID
	return nil
}
