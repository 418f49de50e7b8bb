package persistence

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDatabase creates a Database backed by a mocked postgres connection
func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	// gorm.Open pings the pool once
	mock.ExpectPing()

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())

	return &Database{DB: gormDB}, mock, mockDB
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "garage.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("garage.db"))
	assert.Equal(t, "file:garage.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("file:garage.db?mode=rwc"))
}

func TestDialector(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		d := Dialector(&config.DatabaseConfig{Driver: "sqlite", Path: "garage.db"})
		assert.Equal(t, "sqlite", d.Name())
	})

	t.Run("postgres", func(t *testing.T) {
		d := Dialector(&config.DatabaseConfig{Driver: "postgres", Host: "localhost", Port: 5432, User: "garage", DBName: "garage", SSLMode: "disable"})
		assert.Equal(t, "postgres", d.Name())
	})
}

func TestNewDatabase_SQLiteMemory(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestDatabase_Ping(t *testing.T) {
	t.Run("successful ping", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectPing()
		assert.NoError(t, db.Ping())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed ping", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		assert.Error(t, db.Ping())
	})
}

func TestDatabase_Transaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "products" SET stock_quantity = stock_quantity \+ \$1`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Exec(`UPDATE "products" SET stock_quantity = stock_quantity + $1`, 5).Error
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := db.Transaction(func(tx *gorm.DB) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_Stats(t *testing.T) {
	db, _, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	stats, err := db.Stats()
	assert.NoError(t, err)
	assert.IsType(t, ConnectionStats{}, stats)
}
