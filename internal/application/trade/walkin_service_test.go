package trade

import (
	"context"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWalkInFixture() (*WalkInService, *MockWalkInSaleRepository, *MockProductRepository) {
	sales := new(MockWalkInSaleRepository)
	products := new(MockProductRepository)
	svc := NewWalkInService(sales, products, cache.NewInMemoryIdempotencyStore(), time.Hour, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc, sales, products
}

func chain(id int64, stock int) *catalog.Product {
	return &catalog.Product{
		BaseEntity:    shared.BaseEntity{ID: id},
		Name:          "Racing Chain",
		Price:         decimal.NewFromInt(10000),
		StockQuantity: stock,
	}
}

func TestWalkInService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("records valid lines and reports skipped ones", func(t *testing.T) {
		svc, sales, products := newWalkInFixture()
		products.On("FindByID", mock.Anything, int64(1)).Return(chain(1, 5), nil)
		products.On("FindByID", mock.Anything, int64(2)).Return(chain(2, 1), nil)
		products.On("FindByID", mock.Anything, int64(3)).Return(nil, shared.NotFound("Product not found"))
		sales.On("ExistsBySaleNumber", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
		sales.On("Create", mock.Anything, mock.AnythingOfType("*trade.WalkInSale")).Return(nil)

		result, err := svc.Create(ctx, WalkInSaleInput{
			AdminID:      1,
			CustomerName: " Pedro ",
			Lines: []WalkInLineInput{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 3},
				{ProductID: 3, Quantity: 1},
				{ProductID: 1, Quantity: 0},
			},
		})

		require.NoError(t, err)
		assert.Regexp(t, `^WALKIN-20240615-\d{4}$`, result.Sale.SaleNumber)
		assert.Equal(t, "Pedro", result.Sale.CustomerName)
		assert.Equal(t, "cash", result.Sale.PaymentMethod)
		assert.True(t, decimal.NewFromInt(20000).Equal(result.Sale.TotalAmount))
		require.Len(t, result.Sale.Items, 1)
		require.Len(t, result.Skipped, 3)
		assert.Equal(t, trade.SkipReasonStock, result.Skipped[0].Reason)
		assert.Equal(t, trade.SkipReasonMissing, result.Skipped[1].Reason)
		assert.Equal(t, trade.SkipReasonQuantity, result.Skipped[2].Reason)
		products.AssertNumberOfCalls(t, "FindByID", 3)
	})

	t.Run("no lines", func(t *testing.T) {
		svc, _, _ := newWalkInFixture()

		_, err := svc.Create(ctx, WalkInSaleInput{AdminID: 1})

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Equal(t, "Please add at least one product", err.Error())
	})

	t.Run("nothing sellable", func(t *testing.T) {
		svc, sales, products := newWalkInFixture()
		products.On("FindByID", mock.Anything, int64(1)).Return(chain(1, 0), nil)
		sales.On("ExistsBySaleNumber", mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.Create(ctx, WalkInSaleInput{AdminID: 1, Lines: []WalkInLineInput{{ProductID: 1, Quantity: 1}}})

		require.Error(t, err)
		assert.Equal(t, "No valid products selected", err.Error())
		sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		svc, sales, products := newWalkInFixture()
		products.On("FindByID", mock.Anything, int64(1)).Return(chain(1, 5), nil)
		sales.On("ExistsBySaleNumber", mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.Create(ctx, WalkInSaleInput{
			AdminID:       1,
			PaymentMethod: "barter",
			Lines:         []WalkInLineInput{{ProductID: 1, Quantity: 1}},
		})

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("replayed idempotency key", func(t *testing.T) {
		svc, sales, products := newWalkInFixture()
		products.On("FindByID", mock.Anything, int64(1)).Return(chain(1, 5), nil)
		sales.On("ExistsBySaleNumber", mock.Anything, mock.Anything).Return(false, nil)
		sales.On("Create", mock.Anything, mock.Anything).Return(nil)

		input := WalkInSaleInput{AdminID: 1, IdempotencyKey: "k1", Lines: []WalkInLineInput{{ProductID: 1, Quantity: 1}}}
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
		_, err = svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})
}

func TestWalkInService_ListAndDetail(t *testing.T) {
	svc, sales, _ := newWalkInFixture()
	summary := trade.WalkInSaleSummary{
		WalkInSale:     trade.WalkInSale{ID: 4, SaleNumber: "WALKIN-20240615-1111"},
		AdminFirstName: "Admin",
		AdminLastName:  "User",
		ItemCount:      2,
	}
	sales.On("FindAllWithAdmin", mock.Anything).Return([]trade.WalkInSaleSummary{summary}, nil)
	sales.On("FindDetail", mock.Anything, int64(4)).Return(&trade.WalkInSaleDetail{
		WalkInSaleSummary: summary,
		Lines: []trade.WalkInItemView{
			{WalkInSaleItem: trade.WalkInSaleItem{ID: 1, ProductID: 9, Quantity: 1}, ProductName: "Street Chain", ProductBrand: "RK"},
		},
	}, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Admin User", list[0].AdminName)
	assert.Equal(t, 2, list[0].ItemCount)

	detail, err := svc.Detail(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Street Chain", detail.Items[0].ProductName)
}
