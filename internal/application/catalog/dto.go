package catalog

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ImageURLer resolves a stored image filename to its public URL
type ImageURLer interface {
	URL(name string) string
}

func imageURL(urls ImageURLer, name string) string {
	if urls == nil || name == "" {
		return ""
	}
	return urls.URL(name)
}

// CategoryRequest carries the editable fields of a category
type CategoryRequest struct {
	Name        string
	Description string
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ProductRequest carries the editable fields of a product
type ProductRequest struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    *int64
	Brand         string
	Model         string
	YearRange     string
	StockQuantity int
	IsRacing      bool
	IsDaily       bool
}

func (r ProductRequest) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		Brand:         r.Brand,
		Model:         r.Model,
		YearRange:     r.YearRange,
		StockQuantity: r.StockQuantity,
		IsRacing:      r.IsRacing,
		IsDaily:       r.IsDaily,
	}
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    *int64          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	YearRange     string          `json:"year_range"`
	StockQuantity int             `json:"stock_quantity"`
	InStock       bool            `json:"in_stock"`
	Image         string          `json:"image,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsRacing      bool            `json:"is_racing"`
	IsDaily       bool            `json:"is_daily"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *catalog.Product, urls ImageURLer) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		Brand:         p.Brand,
		Model:         p.Model,
		YearRange:     p.YearRange,
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
		Image:         p.Image,
		ImageURL:      imageURL(urls, p.Image),
		IsRacing:      p.IsRacing,
		IsDaily:       p.IsDaily,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// BrowseProductsQuery filters the storefront product list
type BrowseProductsQuery struct {
	CategoryID *int64
	Type       string
	Search     string
}

// ProductDetailResponse is a product page: the product, related parts and reviews
type ProductDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related_products"`
	Reviews []ReviewResponse  `json:"reviews"`
}

// ServiceRequest carries the editable fields of a workshop service
type ServiceRequest struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	DurationHours int
	IsRacing      bool
	IsDaily       bool
}

func (r ServiceRequest) details() catalog.ServiceDetails {
	return catalog.ServiceDetails{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DurationHours: r.DurationHours,
		IsRacing:      r.IsRacing,
		IsDaily:       r.IsDaily,
	}
}

// ServiceResponse represents a workshop service in API responses
type ServiceResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	DurationHours int             `json:"duration_hours"`
	IsRacing      bool            `json:"is_racing"`
	IsDaily       bool            `json:"is_daily"`
	Image         string          `json:"image,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToServiceResponse converts a domain service to a response
func ToServiceResponse(s *catalog.Service, urls ImageURLer) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		DurationHours: s.DurationHours,
		IsRacing:      s.IsRacing,
		IsDaily:       s.IsDaily,
		Image:         s.Image,
		ImageURL:      imageURL(urls, s.Image),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ServiceDetailResponse is a service page with its reviews
type ServiceDetailResponse struct {
	Service ServiceResponse  `json:"service"`
	Reviews []ReviewResponse `json:"reviews"`
}

// ImageResponse is returned by the image and logo update endpoints
type ImageResponse struct {
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

// AddReviewInput carries a customer's review
type AddReviewInput struct {
	CustomerID int64
	IsAdmin    bool
	ProductID  *int64
	ServiceID  *int64
	Rating     int
	Comment    string
}

// ReviewResponse represents a review with its author
type ReviewResponse struct {
	ID        int64     `json:"id"`
	ProductID *int64    `json:"product_id,omitempty"`
	ServiceID *int64    `json:"service_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToReviewResponse converts a joined review to a response
func ToReviewResponse(r catalog.ReviewWithAuthor) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		ServiceID: r.ServiceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CreatedAt: r.CreatedAt,
	}
}
