package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
)

// ConnectGorm opens the postgres connection and runs migrations.
func ConnectGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("database connected and migrated")
	return db, nil
}

// Migrate creates required extensions and syncs the schema.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the id defaults on every table.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Brand{},
		&models.Medicine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Prescription{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}

	return nil
}
