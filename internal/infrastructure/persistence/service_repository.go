package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormServiceRepository implements catalog.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a workshop service by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id int64) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Service not found")
	}
	return model.ToDomain(), nil
}

// FindByName finds a workshop service by name
func (r *GormServiceRepository) FindByName(ctx context.Context, name string) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, notFound(err, "Service not found")
	}
	return model.ToDomain(), nil
}

// Browse lists services ordered by name; an empty usage lists all
func (r *GormServiceRepository) Browse(ctx context.Context, usage catalog.UsageType) ([]catalog.Service, error) {
	query := r.db.WithContext(ctx).Model(&models.ServiceModel{})
	switch usage {
	case catalog.UsageRacing:
		query = query.Where("is_racing = ?", true)
	case catalog.UsageDaily:
		query = query.Where("is_daily = ?", true)
	}

	var rows []models.ServiceModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]catalog.Service, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a workshop service
func (r *GormServiceRepository) Save(ctx context.Context, service *catalog.Service) error {
	model := models.ServiceModelFromDomain(service)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	service.ID = model.ID
	return nil
}

// Delete deletes a workshop service
func (r *GormServiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Service not found")
	}
	return nil
}

// IsOrdered checks whether any order line references the service
func (r *GormServiceRepository) IsOrdered(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderItemModel{}).Where("service_id = ?", id).Count(&count).Error
	return count > 0, err
}

var _ catalog.ServiceRepository = (*GormServiceRepository)(nil)
