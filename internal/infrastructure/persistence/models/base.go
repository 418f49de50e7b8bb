package models

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// BaseModel provides the id and timestamps shared by most tables.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AllModels lists every persistence model, in foreign key order.
// Tests use it with AutoMigrate; the server uses the SQL migrations.
func AllModels() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&ServiceModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CartItemModel{},
		&ReviewModel{},
		&InventoryTransactionModel{},
		&WalkInSaleModel{},
		&WalkInSaleItemModel{},
		&TeamMemberModel{},
		&CollaborateTeamModel{},
		&AwardModel{},
	}
}
