package models

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
	m.Image = c.Image
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID    *int64          `gorm:"index"`
	Brand         string          `gorm:"type:varchar(100)"`
	Model         string          `gorm:"type:varchar(100)"`
	YearRange     string          `gorm:"type:varchar(50)"`
	StockQuantity int             `gorm:"not null;default:0"`
	Image         string          `gorm:"type:varchar(255)"`
	IsRacing      bool            `gorm:"not null;default:false"`
	IsDaily       bool            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		CategoryID:    m.CategoryID,
		Brand:         m.Brand,
		Model:         m.Model,
		YearRange:     m.YearRange,
		StockQuantity: m.StockQuantity,
		Image:         m.Image,
		IsRacing:      m.IsRacing,
		IsDaily:       m.IsDaily,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.CategoryID = p.CategoryID
	m.Brand = p.Brand
	m.Model = p.Model
	m.YearRange = p.YearRange
	m.StockQuantity = p.StockQuantity
	m.Image = p.Image
	m.IsRacing = p.IsRacing
	m.IsDaily = p.IsDaily
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// ProductListingRow is the scan target for products joined with their category
type ProductListingRow struct {
	ProductModel
	CategoryName *string
}

// ToDomain converts the row to a ProductListing
func (r *ProductListingRow) ToDomain() catalog.ProductListing {
	l := catalog.ProductListing{Product: *r.ProductModel.ToDomain()}
	if r.CategoryName != nil {
		l.CategoryName = *r.CategoryName
	}
	return l
}

// ServiceModel is the persistence model for the workshop Service domain entity.
type ServiceModel struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DurationHours int             `gorm:"not null;default:0"`
	IsRacing      bool            `gorm:"not null;default:false"`
	IsDaily       bool            `gorm:"not null"`
	Image         string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service entity.
func (m *ServiceModel) ToDomain() *catalog.Service {
	return &catalog.Service{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		DurationHours: m.DurationHours,
		IsRacing:      m.IsRacing,
		IsDaily:       m.IsDaily,
		Image:         m.Image,
	}
}

// FromDomain populates the persistence model from a domain Service entity.
func (m *ServiceModel) FromDomain(s *catalog.Service) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Description = s.Description
	m.Price = s.Price
	m.DurationHours = s.DurationHours
	m.IsRacing = s.IsRacing
	m.IsDaily = s.IsDaily
	m.Image = s.Image
}

// ServiceModelFromDomain creates a new persistence model from a domain Service entity.
func ServiceModelFromDomain(s *catalog.Service) *ServiceModel {
	m := &ServiceModel{}
	m.FromDomain(s)
	return m
}

// ReviewModel is the persistence model for product and service reviews.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"not null;index"`
	ProductID  *int64    `gorm:"index"`
	ServiceID  *int64    `gorm:"index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		ServiceID:  m.ServiceID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

// ReviewModelFromDomain creates a new persistence model from a domain Review.
func ReviewModelFromDomain(r *catalog.Review) *ReviewModel {
	return &ReviewModel{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		ServiceID:  r.ServiceID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// ReviewRow is the scan target for reviews joined with the reviewer's name
type ReviewRow struct {
	ReviewModel
	FirstName *string
	LastName  *string
}

// ToDomain converts the row to a ReviewWithAuthor
func (r *ReviewRow) ToDomain() catalog.ReviewWithAuthor {
	out := catalog.ReviewWithAuthor{Review: *r.ReviewModel.ToDomain()}
	if r.FirstName != nil {
		out.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		out.LastName = *r.LastName
	}
	return out
}
