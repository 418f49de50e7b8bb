//go:build integration

package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/inventory"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/domain/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/migration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgresDB starts a throwaway PostgreSQL container and applies the
// embedded postgres migrations to it.
func setupPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("garage_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.New(sqlDB, migration.DialectPostgres, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return db
}

func TestPostgres_ConcurrentWalkInSalesNeverOversell(t *testing.T) {
	db := setupPostgresDB(t)
	repo := NewGormWalkInSaleRepository(db)
	admin := seedUser(t, db, "admin", identity.RoleAdmin)
	product := seedProduct(t, db, "Wave Brake Disc", "89.00", 10)

	const workers = 25
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		oversold  atomic.Int32
	)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sale, err := trade.NewWalkInSale(
				fmt.Sprintf("WALK-PG-%03d", i),
				admin.ID,
				trade.WalkInCustomer{Name: "Counter"},
				[]trade.WalkInSaleItem{{
					ProductID:  product.ID,
					Quantity:   1,
					UnitPrice:  decimal.RequireFromString("89.00"),
					TotalPrice: decimal.RequireFromString("89.00"),
				}},
			)
			if err != nil {
				t.Errorf("build sale: %v", err)
				return
			}
			switch err := repo.Create(context.Background(), sale); {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, shared.ErrInsufficientStock):
				oversold.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(workers-10), oversold.Load())
	assert.Equal(t, 0, stockOf(t, db, product.ID))

	net, err := NewGormInventoryTransactionRepository(db).NetChange(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, -10, net)
}

func TestPostgres_RestockAndSummary(t *testing.T) {
	db := setupPostgresDB(t)
	repo := NewGormInventoryTransactionRepository(db)
	ctx := context.Background()
	admin := seedUser(t, db, "admin", identity.RoleAdmin)
	product := seedProduct(t, db, "Chain Kit", "149.50", 2)

	entry, err := inventory.NewRestockTransaction(product.ID, 8, admin.ID, "delivery")
	require.NoError(t, err)
	require.NoError(t, repo.Apply(ctx, entry))

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 10, summary[0].StockQuantity)
	assert.Equal(t, 0, summary[0].TotalSold)
}
