package gormdb

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymtrack/core/internal/config"
	"gymtrack/core/internal/domain"
)

//go:embed default_exercises.json
var seedFiles embed.FS

// Connect opens a Postgres-backed gorm session using the provided database
// configuration.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("gormdb: open postgres connection: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every model the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Exercise{},
		&domain.ExerciseResult{},
		&domain.UserProfile{},
		&domain.WeekPlan{},
		&domain.WorkoutPlan{},
		&domain.WarmUpPlan{},
		&domain.ExercisePlan{},
	)
}

// Seed inserts the default exercise catalog when the exercises table is
// empty, so a fresh deployment has a vocabulary for plan generation.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Exercise{}).Count(&count).Error; err != nil {
		return fmt.Errorf("gormdb: count exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := seedFiles.ReadFile("default_exercises.json")
	if err != nil {
		return fmt.Errorf("gormdb: read default exercises: %w", err)
	}
	var exercises []domain.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return fmt.Errorf("gormdb: parse default exercises: %w", err)
	}

	if err := db.WithContext(ctx).Create(&exercises).Error; err != nil {
		return fmt.Errorf("gormdb: seed exercises: %w", err)
	}
	log.Printf("Seeded %d default exercises", len(exercises))
	return nil
}
