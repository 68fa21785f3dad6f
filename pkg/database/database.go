package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dkmezza/auth-service/internal/model"
	"github.com/dkmezza/auth-service/pkg/config"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection, configures the pool and runs
// migrations. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey, which the repository
// layer maps to domain errors.
func InitDB(cfg *config.Config) error {
	pgConfig := postgres.Config{
		DSN: cfg.DB.GetDSN(),
		// Disables implicit prepared statement usage to prevent
		// "prepared statement already exists" errors behind pgbouncer
		PreferSimpleProtocol: true,
	}

	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(cfg.DB.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}

	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	// AutoMigrate will automatically create or update the table structure based on our models
	if err := db.AutoMigrate(&model.User{}, &model.Tenant{}, &model.Company{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
