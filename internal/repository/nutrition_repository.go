package repository

import (
	"context"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NutritionRepository interface {
	// Upsert stores one intake total per user and day.
	Upsert(ctx context.Context, log *domain.NutritionLog) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.NutritionLog, error)
}

type nutritionRepository struct {
	db *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Upsert(ctx context.Context, log *domain.NutritionLog) error {
	return r.db.WithContext(ctx).
		Clauses(onUserDateConflict("calories", "protein_g", "carbs_g", "fat_g", "fiber_g")).
		Create(log).Error
}

func (r *nutritionRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionLog, error) {
	var logs []domain.NutritionLog
	err := rangeByDate(r.db.WithContext(ctx), "date", userID, from, to).Find(&logs).Error
	return logs, err
}

func (r *nutritionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.NutritionLog, error) {
	query, err := pageByDate(r.db.WithContext(ctx), "date", userID, filter)
	if err != nil {
		return nil, err
	}
	var logs []domain.NutritionLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
