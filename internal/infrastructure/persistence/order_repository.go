package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// PlaceOrder writes the order, its items, the stock movements and clears the cart in one transaction
func (r *GormOrderRepository) PlaceOrder(ctx context.Context, order *trade.Order, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.OrderModelFromDomain(order)
		items := model.Items
		model.Items = nil
		if err := tx.Create(model).Error; err != nil {
			if isUniqueViolation(err) {
				return shared.NewDomainError(shared.ErrAlreadyExists.Code, "Order number already exists")
			}
			return err
		}
		order.ID = model.ID

		for i := range items {
			items[i].OrderID = model.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		for i := range order.Items {
			order.Items[i].ID = items[i].ID
			order.Items[i].OrderID = model.ID
		}

		for _, item := range order.ProductItems() {
			entry, err := inventory.NewSaleTransaction(*item.ProductID, item.Quantity, order.ID, order.CustomerID, order.OrderNumber, item.Price)
			if err != nil {
				return err
			}
			entry.TransactionDate = order.OrderDate
			if err := applyStockMovement(tx, entry); err != nil {
				return err
			}
		}

		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItemModel{}).Error
	})
}

// ExistsByOrderNumber checks if an order number is taken
func (r *GormOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

// FindByID finds an order without items
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*trade.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Order not found")
	}
	return model.ToDomain(), nil
}

// FindByCustomer lists a customer's orders, newest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]trade.Order, error) {
	var rows []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("order_date DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]trade.Order, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// FindDetailForCustomer returns the order with its joined items if it belongs to the customer
func (r *GormOrderRepository) FindDetailForCustomer(ctx context.Context, customerID, id int64) (*trade.OrderDetail, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&model).Error; err != nil {
		return nil, notFound(err, "Order not found")
	}

	var rows []models.OrderItemRow
	if err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.*, p.name AS product_name, p.image AS product_image, s.name AS service_name").
		Joins("LEFT JOIN products p ON oi.product_id = p.id").
		Joins("LEFT JOIN services s ON oi.service_id = s.id").
		Where("oi.order_id = ?", id).
		Order("oi.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	detail := &trade.OrderDetail{Order: *model.ToDomain()}
	detail.Lines = make([]trade.OrderItemView, len(rows))
	for i := range rows {
		detail.Lines[i] = rows[i].ToDomain()
		detail.Items = append(detail.Items, detail.Lines[i].OrderItem)
	}
	return detail, nil
}

// FindAllWithCustomer lists orders with customer names, newest first. limit <= 0 means all.
func (r *GormOrderRepository) FindAllWithCustomer(ctx context.Context, limit int) ([]trade.OrderSummary, error) {
	var rows []models.OrderSummaryRow
	query := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.*, u.first_name, u.last_name, u.email").
		Joins("LEFT JOIN users u ON o.customer_id = u.id").
		Order("o.order_date DESC").Order("o.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]trade.OrderSummary, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// UpdateStatus sets the status of an existing order
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status trade.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Order not found")
	}
	return nil
}

// Count counts all orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderModel{}).Count(&count).Error
	return count, err
}

// CompletedRevenue sums the totals of completed orders
func (r *GormOrderRepository) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", trade.OrderStatusCompleted).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
