package persistence

import (
	"path/filepath"
	"testing"

	"github.com/erp/customeroptions/internal/infrastructure/config"
	"github.com/erp/customeroptions/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "seed.db"),
		MaxOpenConns: 10,
		MaxIdleConns: 2,
		TraceEnabled: true,
	}

	db, err := NewDatabase(cfg, zap.NewNop(), WithSQLLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())
	require.NoError(t, db.AutoMigrate())

	for _, model := range []any{
		&models.CustomerOptionModel{},
		&models.ProductModel{},
		&models.OptionGroupModel{},
		&models.OptionGroupTranslationModel{},
		&models.OptionAssociationModel{},
		&models.OptionGroupProductModel{},
	} {
		assert.True(t, db.DB.Migrator().HasTable(model), "%T", model)
	}

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Driver: "mysql"}, nil)

	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestAutoMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	assert.NoError(t, AutoMigrate(db))
}
