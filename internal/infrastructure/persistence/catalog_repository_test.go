package persistence

import (
	"context"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	brakes, err := catalog.NewCategory("Brakes", "Pads and discs")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, brakes))

	dup, err := catalog.NewCategory("Brakes", "")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	has, err := repo.HasProducts(ctx, brakes.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, db.Create(&models.ProductModel{Name: "Pads", Price: decimal.NewFromInt(10), CategoryID: &brakes.ID}).Error)
	has, err = repo.HasProducts(ctx, brakes.ID)
	require.NoError(t, err)
	assert.True(t, has)

	found, err := repo.FindByName(ctx, "Brakes")
	require.NoError(t, err)
	assert.Equal(t, brakes.ID, found.ID)

	assert.ErrorIs(t, repo.Delete(ctx, 9999), shared.ErrNotFound)
}

func TestProductRepository_Browse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	cat := &models.CategoryModel{Name: "Exhaust"}
	require.NoError(t, db.Create(cat).Error)

	mk := func(name, brand string, stock int, racing, daily bool, categoryID *int64) *catalog.Product {
		p, err := catalog.NewProduct(catalog.ProductDetails{
			Name:          name,
			Price:         decimal.RequireFromString("99.50"),
			Brand:         brand,
			StockQuantity: stock,
			IsRacing:      racing,
			IsDaily:       daily,
			CategoryID:    categoryID,
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
		return p
	}

	slipOn := mk("Slip-On Exhaust", "Akrapovic", 3, true, false, &cat.ID)
	mk("Commuter Mirror", "Generic", 0, false, true, nil)
	mk("Titanium Header", "Akrapovic", 1, true, true, &cat.ID)

	t.Run("in stock only", func(t *testing.T) {
		products, err := repo.Browse(ctx, catalog.ProductFilter{InStockOnly: true})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("daily flag persists false values", func(t *testing.T) {
		products, err := repo.Browse(ctx, catalog.ProductFilter{Usage: catalog.UsageDaily})
		require.NoError(t, err)
		assert.Len(t, products, 2)

		found, err := repo.FindByID(ctx, slipOn.ID)
		require.NoError(t, err)
		assert.False(t, found.IsDaily)
	})

	t.Run("case-insensitive search over brand", func(t *testing.T) {
		products, err := repo.Browse(ctx, catalog.ProductFilter{Search: "AKRA"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := repo.Browse(ctx, catalog.ProductFilter{CategoryID: &cat.ID, Usage: catalog.UsageRacing})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("related excludes the product", func(t *testing.T) {
		related, err := repo.FindRelated(ctx, slipOn, 4)
		require.NoError(t, err)
		require.Len(t, related, 1)
		assert.Equal(t, "Titanium Header", related[0].Name)
	})

	t.Run("listing carries category name", func(t *testing.T) {
		listings, err := repo.FindAllWithCategory(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 3)
		names := map[string]string{}
		for _, l := range listings {
			names[l.Name] = l.CategoryName
		}
		assert.Equal(t, "Exhaust", names["Slip-On Exhaust"])
		assert.Equal(t, "", names["Commuter Mirror"])
	})

	t.Run("low stock", func(t *testing.T) {
		low, err := repo.FindLowStock(ctx, 2)
		require.NoError(t, err)
		require.Len(t, low, 2)
		assert.Equal(t, 0, low[0].StockQuantity)
	})
}

func TestReviewRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormReviewRepository(db)
	ctx := context.Background()
	customer := seedUser(t, db, "rider", identity.RoleCustomer)
	pads := seedProduct(t, db, "Brake Pads", "10.00", 1)

	review, err := catalog.NewReview(customer.ID, &pads.ID, nil, 5, "Great bite")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, review))

	reviews, err := repo.FindByProduct(ctx, pads.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Firstrider", reviews[0].FirstName)
	assert.Equal(t, 5, reviews[0].Rating)

	none, err := repo.FindByService(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	identity.BcryptCost = 4
	u, err := identity.NewCustomer("rider", "Rider@Example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	dup, err := identity.NewCustomer("rider", "other@example.com", "secret123")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

	byEmail, err := repo.FindByLogin(ctx, "rider@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byName, err := repo.FindByLogin(ctx, "rider")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = repo.FindByLogin(ctx, "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "someone", "rider@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.CountByRole(ctx, identity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	users, total, err := repo.FindByRole(ctx, identity.RoleCustomer, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)
}
