package config

import (
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates or updates the tables for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.WeightEntry{},
		&domain.NutritionLog{},
		&domain.MacroTarget{},
		&domain.WeeklyCheckIn{},
		&domain.ExpenditureData{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
