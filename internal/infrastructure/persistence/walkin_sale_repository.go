package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWalkInSaleRepository implements trade.WalkInSaleRepository using GORM
type GormWalkInSaleRepository struct {
	db *gorm.DB
}

// NewGormWalkInSaleRepository creates a new GormWalkInSaleRepository
func NewGormWalkInSaleRepository(db *gorm.DB) *GormWalkInSaleRepository {
	return &GormWalkInSaleRepository{db: db}
}

// Create writes the sale, its items and the stock movements in one transaction
func (r *GormWalkInSaleRepository) Create(ctx context.Context, sale *trade.WalkInSale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.WalkInSaleModelFromDomain(sale)
		items := model.Items
		model.Items = nil
		if err := tx.Create(model).Error; err != nil {
			if isUniqueViolation(err) {
				return shared.NewDomainError(shared.ErrAlreadyExists.Code, "Sale number already exists")
			}
			return err
		}
		sale.ID = model.ID

		for i := range items {
			items[i].WalkInSaleID = model.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		adminID := sale.AdminID
		for i := range sale.Items {
			item := &sale.Items[i]
			item.ID = items[i].ID
			item.WalkInSaleID = model.ID

			entry, err := inventory.NewWalkInTransaction(item.ProductID, item.Quantity, adminID, sale.SaleNumber, item.UnitPrice, item.TotalPrice)
			if err != nil {
				return err
			}
			entry.TransactionDate = sale.SaleDate
			if err := applyStockMovement(tx, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// ExistsBySaleNumber checks if a sale number is taken
func (r *GormWalkInSaleRepository) ExistsBySaleNumber(ctx context.Context, saleNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WalkInSaleModel{}).Where("sale_number = ?", saleNumber).Count(&count).Error
	return count > 0, err
}

func (r *GormWalkInSaleRepository) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("walkin_sales ws").
		Select(`ws.*, u.first_name, u.last_name,
			(SELECT COUNT(*) FROM walkin_sale_items wsi WHERE wsi.walkin_sale_id = ws.id) AS item_count`).
		Joins("LEFT JOIN users u ON ws.admin_id = u.id")
}

// FindAllWithAdmin lists sales with the recording admin, newest first
func (r *GormWalkInSaleRepository) FindAllWithAdmin(ctx context.Context) ([]trade.WalkInSaleSummary, error) {
	var rows []models.WalkInSaleRow
	if err := r.summaries(ctx).
		Order("ws.sale_date DESC").Order("ws.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]trade.WalkInSaleSummary, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindDetail returns a sale with its joined items
func (r *GormWalkInSaleRepository) FindDetail(ctx context.Context, id int64) (*trade.WalkInSaleDetail, error) {
	var rows []models.WalkInSaleRow
	if err := r.summaries(ctx).Where("ws.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, shared.NotFound("Sale not found")
	}

	var items []models.WalkInItemRow
	if err := r.db.WithContext(ctx).
		Table("walkin_sale_items wsi").
		Select("wsi.*, p.name AS product_name, p.brand AS product_brand, p.model AS product_model").
		Joins("LEFT JOIN products p ON wsi.product_id = p.id").
		Where("wsi.walkin_sale_id = ?", id).
		Order("wsi.id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}

	detail := &trade.WalkInSaleDetail{WalkInSaleSummary: rows[0].ToDomain()}
	detail.Lines = make([]trade.WalkInItemView, len(items))
	for i := range items {
		detail.Lines[i] = items[i].ToDomain()
		detail.Items = append(detail.Items, detail.Lines[i].WalkInSaleItem)
	}
	return detail, nil
}

var _ trade.WalkInSaleRepository = (*GormWalkInSaleRepository)(nil)
