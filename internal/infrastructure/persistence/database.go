package persistence

import (
	"fmt"
	"time"

	"github.com/erp/customeroptions/internal/infrastructure/config"
	"github.com/erp/customeroptions/internal/infrastructure/logger"
	"github.com/erp/customeroptions/internal/infrastructure/persistence/models"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database operations
type Database struct {
	DB *gorm.DB
}

// DatabaseOption tunes how NewDatabase opens the connection
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logLevel gormlogger.LogLevel
}

// WithSQLLogLevel sets the GORM log level; the default is warn
func WithSQLLogLevel(level gormlogger.LogLevel) DatabaseOption {
	return func(o *databaseOptions) {
		o.logLevel = level
	}
}

// NewDatabase opens a postgres or sqlite database as configured, logging SQL
// through log
func NewDatabase(cfg *config.DatabaseConfig, log *zap.Logger, opts ...DatabaseOption) (*Database, error) {
	o := databaseOptions{logLevel: gormlogger.Warn}
	for _, opt := range opts {
		opt(&o)
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.NewGormLogger(log, o.logLevel),
		SkipDefaultTransaction: true,
		PrepareStmt:            cfg.Driver == config.DriverPostgres,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.TraceEnabled {
		plugin := otelgorm.NewPlugin(
			otelgorm.WithDBName(cfg.DBName),
			otelgorm.WithoutQueryVariables(),
		)
		if err := db.Use(plugin); err != nil {
			return nil, fmt.Errorf("failed to register tracing plugin: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite supports a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// AutoMigrate creates or updates the catalog tables
func (d *Database) AutoMigrate() error {
	return AutoMigrate(d.DB)
}

// AutoMigrate creates or updates the catalog tables on db
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.OptionGroupModel{}, "Products", &models.OptionGroupProductModel{}); err != nil {
		return fmt.Errorf("failed to set up option group products join table: %w", err)
	}
	if err := db.AutoMigrate(
		&models.CustomerOptionModel{},
		&models.ProductModel{},
		&models.OptionGroupModel{},
		&models.OptionGroupTranslationModel{},
		&models.OptionAssociationModel{},
		&models.OptionGroupProductModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}
