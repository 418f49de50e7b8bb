package catalog

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	// FeaturedLimit is how many products the home page shows
	FeaturedLimit = 8
	// RelatedLimit is how many related parts a product page shows
	RelatedLimit = 4
	// DefaultLowStockThreshold applies when no threshold is configured
	DefaultLowStockThreshold = 10
)

// ErrProductOrdered is returned when deleting a product that appears on an order
var ErrProductOrdered = shared.Conflict("Cannot delete product that has been ordered. Consider marking as discontinued instead.")

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	reviewRepo   catalog.ReviewRepository
	media        *media.Service
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	reviewRepo catalog.ReviewRepository,
	mediaSvc *media.Service,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		media:        mediaSvc,
		logger:       logger,
	}
}

// Create creates a product, storing the image when one is uploaded
func (s *ProductService) Create(ctx context.Context, req ProductRequest, image *media.File) (*ProductResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "product", "create")
	defer span.End()

	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	product, err := catalog.NewProduct(req.details())
	if err != nil {
		return nil, err
	}

	if image != nil {
		name, err := s.media.Store(ctx, *image)
		if err != nil {
			return nil, err
		}
		product.SetImage(name)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.media.Remove(ctx, product.Image)
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrProductID, product.ID)
	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
	)
	resp := ToProductResponse(product, s.media)
	return &resp, nil
}

// Update changes a product. Without a new image the current one is kept.
func (s *ProductService) Update(ctx context.Context, id int64, req ProductRequest, image *media.File) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := product.Update(req.details()); err != nil {
		return nil, err
	}

	if image != nil {
		name, err := s.media.Replace(ctx, product.Image, *image)
		if err != nil {
			return nil, err
		}
		product.SetImage(name)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.Int64("product_id", product.ID))
	resp := ToProductResponse(product, s.media)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product, s.media)
	return &resp, nil
}

// Delete removes a product that no order references, together with its image
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	ordered, err := s.productRepo.IsOrdered(ctx, id)
	if err != nil {
		return err
	}
	if ordered {
		return ErrProductOrdered
	}

	s.media.Remove(ctx, product.Image)
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

// AdminList lists every product with its category name, newest first
func (s *ProductService) AdminList(ctx context.Context) ([]ProductResponse, error) {
	listings, err := s.productRepo.FindAllWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(listings, func(l catalog.ProductListing, _ int) ProductResponse {
		resp := ToProductResponse(&l.Product, s.media)
		resp.CategoryName = l.CategoryName
		return resp
	}), nil
}

// Browse lists in-stock products for the storefront
func (s *ProductService) Browse(ctx context.Context, q BrowseProductsQuery) ([]ProductResponse, error) {
	products, err := s.productRepo.Browse(ctx, catalog.ProductFilter{
		CategoryID:  q.CategoryID,
		Usage:       catalog.ParseUsageType(q.Type),
		Search:      q.Search,
		InStockOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return s.toResponses(products), nil
}

// Featured lists the newest in-stock products for the home page
func (s *ProductService) Featured(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(products), nil
}

// Detail returns a product with related parts and its reviews
func (s *ProductService) Detail(ctx context.Context, id int64) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.productRepo.FindRelated(ctx, product, RelatedLimit)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetailResponse{
		Product: ToProductResponse(product, s.media),
		Related: s.toResponses(related),
		Reviews: lo.Map(reviews, func(r catalog.ReviewWithAuthor, _ int) ReviewResponse {
			return ToReviewResponse(r)
		}),
	}, nil
}

// InStockForSale lists sellable products by name for the walk-in form
func (s *ProductService) InStockForSale(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindInStockByName(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(products), nil
}

// LowStock lists products below threshold, lowest stock first
func (s *ProductService) LowStock(ctx context.Context, threshold int) ([]ProductResponse, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	products, err := s.productRepo.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return s.toResponses(products), nil
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categoryRepo.FindByID(ctx, *categoryID)
	return err
}

func (s *ProductService) toResponses(products []catalog.Product) []ProductResponse {
	return lo.Map(products, func(p catalog.Product, _ int) ProductResponse {
		return ToProductResponse(&p, s.media)
	})
}
