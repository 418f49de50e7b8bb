package persistence

import (
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database with every table migrated.
// One connection keeps transactions and plain queries on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role identity.Role) *models.UserModel {
	t.Helper()
	u := &models.UserModel{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "$2a$04$hash",
		FirstName: "First" + username,
		LastName:  "Last",
		Role:      role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) *models.ProductModel {
	t.Helper()
	p := &models.ProductModel{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		Brand:         "Brembo",
		Model:         "RC-1",
		StockQuantity: stock,
		IsRacing:      true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedService(t *testing.T, db *gorm.DB, name, price string) *models.ServiceModel {
	t.Helper()
	s := &models.ServiceModel{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		DurationHours: 2,
		IsDaily:       true,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func stockOf(t *testing.T, db *gorm.DB, productID int64) int {
	t.Helper()
	var p models.ProductModel
	require.NoError(t, db.First(&p, productID).Error)
	return p.StockQuantity
}

func ptr[T any](v T) *T { return &v }
