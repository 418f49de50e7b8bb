package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type productFixture struct {
	products   *MockProductRepository
	categories *MockCategoryRepository
	reviews    *MockReviewRepository
	store      *storage.MemoryImageStore
	svc        *ProductService
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products:   new(MockProductRepository),
		categories: new(MockCategoryRepository),
		reviews:    new(MockReviewRepository),
		store:      storage.NewMemoryImageStore(),
	}
	clock := media.WithClock(func() time.Time { return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC) })
	f.svc = NewProductService(f.products, f.categories, f.reviews, media.NewService(f.store, 0, clock), zap.NewNop())
	return f
}

func brakePads() ProductRequest {
	cat := int64(2)
	return ProductRequest{
		Name:          "Racing Brake Pads",
		Description:   "High-performance brake pads for racing",
		Price:         decimal.NewFromInt(4500),
		CategoryID:    &cat,
		Brand:         "Brembo",
		Model:         "Universal",
		YearRange:     "2015-2024",
		StockQuantity: 50,
		IsRacing:      true,
	}
}

func pngUpload(name string) *media.File {
	return &media.File{Filename: name, Size: 3, ContentType: "image/png", Body: strings.NewReader("png")}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores image and product", func(t *testing.T) {
		f := newProductFixture()
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(&catalog.Category{BaseEntity: shared.BaseEntity{ID: 2}}, nil)
		f.products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := f.svc.Create(ctx, brakePads(), pngUpload("pads.png"))

		require.NoError(t, err)
		assert.Equal(t, "20240302_100000_pads.png", resp.Image)
		assert.Equal(t, "/static/uploads/20240302_100000_pads.png", resp.ImageURL)
		assert.True(t, resp.InStock)
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		f := newProductFixture()
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(&catalog.Category{BaseEntity: shared.BaseEntity{ID: 2}}, nil)
		req := brakePads()
		req.Price = decimal.Zero

		_, err := f.svc.Create(ctx, req, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price must be greater than zero")
		f.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		f := newProductFixture()
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(nil, shared.NotFound("Category not found"))

		_, err := f.svc.Create(ctx, brakePads(), nil)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects bad image format", func(t *testing.T) {
		f := newProductFixture()
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(&catalog.Category{BaseEntity: shared.BaseEntity{ID: 2}}, nil)

		_, err := f.svc.Create(ctx, brakePads(), pngUpload("pads.exe"))

		assert.ErrorIs(t, err, media.ErrInvalidFormat)
		assert.Equal(t, 0, f.store.Len())
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps image when none uploaded", func(t *testing.T) {
		f := newProductFixture()
		existing := &catalog.Product{BaseEntity: shared.BaseEntity{ID: 5}, Name: "Old", Price: decimal.NewFromInt(1), Image: "old.png"}
		f.products.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(&catalog.Category{}, nil)
		f.products.On("Save", mock.Anything, existing).Return(nil)

		resp, err := f.svc.Update(ctx, 5, brakePads(), nil)

		require.NoError(t, err)
		assert.Equal(t, "old.png", resp.Image)
		assert.Equal(t, "Racing Brake Pads", resp.Name)
	})

	t.Run("replaces image and removes the previous one", func(t *testing.T) {
		f := newProductFixture()
		require.NoError(t, f.store.Save(ctx, "old.png", strings.NewReader("x"), 1, "image/png"))
		existing := &catalog.Product{BaseEntity: shared.BaseEntity{ID: 5}, Name: "Old", Price: decimal.NewFromInt(1), Image: "old.png"}
		f.products.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
		f.categories.On("FindByID", mock.Anything, int64(2)).Return(&catalog.Category{}, nil)
		f.products.On("Save", mock.Anything, existing).Return(nil)

		resp, err := f.svc.Update(ctx, 5, brakePads(), pngUpload("new.png"))

		require.NoError(t, err)
		assert.Equal(t, "20240302_100000_new.png", resp.Image)
		_, ok := f.store.Get("old.png")
		assert.False(t, ok)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict when ordered", func(t *testing.T) {
		f := newProductFixture()
		f.products.On("FindByID", mock.Anything, int64(7)).Return(&catalog.Product{BaseEntity: shared.BaseEntity{ID: 7}}, nil)
		f.products.On("IsOrdered", mock.Anything, int64(7)).Return(true, nil)

		err := f.svc.Delete(ctx, 7)

		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Contains(t, err.Error(), "Consider marking as discontinued instead.")
		f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("removes image and row", func(t *testing.T) {
		f := newProductFixture()
		require.NoError(t, f.store.Save(ctx, "chain.png", strings.NewReader("x"), 1, "image/png"))
		f.products.On("FindByID", mock.Anything, int64(7)).Return(&catalog.Product{BaseEntity: shared.BaseEntity{ID: 7}, Image: "chain.png"}, nil)
		f.products.On("IsOrdered", mock.Anything, int64(7)).Return(false, nil)
		f.products.On("Delete", mock.Anything, int64(7)).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, 7))
		assert.Equal(t, 0, f.store.Len())
	})
}

func TestProductService_Browse(t *testing.T) {
	f := newProductFixture()
	cat := int64(3)
	expected := catalog.ProductFilter{CategoryID: &cat, Usage: catalog.UsageRacing, Search: "brembo", InStockOnly: true}
	f.products.On("Browse", mock.Anything, expected).Return([]catalog.Product{
		{BaseEntity: shared.BaseEntity{ID: 1}, Name: "Racing Brake Pads", StockQuantity: 4},
	}, nil)

	products, err := f.svc.Browse(context.Background(), BrowseProductsQuery{CategoryID: &cat, Type: "racing", Search: "brembo"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Racing Brake Pads", products[0].Name)
}

func TestProductService_Browse_IgnoresUnknownType(t *testing.T) {
	f := newProductFixture()
	f.products.On("Browse", mock.Anything, catalog.ProductFilter{InStockOnly: true}).Return([]catalog.Product{}, nil)

	products, err := f.svc.Browse(context.Background(), BrowseProductsQuery{Type: "vintage"})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_Detail(t *testing.T) {
	f := newProductFixture()
	product := &catalog.Product{BaseEntity: shared.BaseEntity{ID: 1}, Name: "Racing Chain", StockQuantity: 3}
	f.products.On("FindByID", mock.Anything, int64(1)).Return(product, nil)
	f.products.On("FindRelated", mock.Anything, product, RelatedLimit).Return([]catalog.Product{
		{BaseEntity: shared.BaseEntity{ID: 2}, Name: "Street Chain", StockQuantity: 9},
	}, nil)
	f.reviews.On("FindByProduct", mock.Anything, int64(1)).Return([]catalog.ReviewWithAuthor{
		{Review: catalog.Review{ID: 4, Rating: 5, Comment: "Solid"}, FirstName: "Ana", LastName: "Cruz"},
	}, nil)

	detail, err := f.svc.Detail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Racing Chain", detail.Product.Name)
	require.Len(t, detail.Related, 1)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Ana", detail.Reviews[0].FirstName)
}

func TestProductService_LowStock_DefaultThreshold(t *testing.T) {
	f := newProductFixture()
	f.products.On("FindLowStock", mock.Anything, DefaultLowStockThreshold).Return([]catalog.Product{}, nil)

	_, err := f.svc.LowStock(context.Background(), 0)

	require.NoError(t, err)
	f.products.AssertExpectations(t)
}

func TestProductService_AdminList(t *testing.T) {
	f := newProductFixture()
	f.products.On("FindAllWithCategory", mock.Anything).Return([]catalog.ProductListing{
		{Product: catalog.Product{BaseEntity: shared.BaseEntity{ID: 1}, Name: "Racing Exhaust"}, CategoryName: "Exhaust Systems"},
	}, nil)

	list, err := f.svc.AdminList(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Exhaust Systems", list[0].CategoryName)
	assert.False(t, list[0].InStock)
}
