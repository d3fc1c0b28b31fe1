package repository

import (
	"context"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenditureRepository interface {
	// Upsert keeps one history row per user and day; recomputing a day overwrites it.
	Upsert(ctx context.Context, row *domain.ExpenditureData) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.ExpenditureData, error)
}

type expenditureRepository struct {
	db *gorm.DB
}

func NewExpenditureRepository(db *gorm.DB) ExpenditureRepository {
	return &expenditureRepository{db: db}
}

func (r *expenditureRepository) Upsert(ctx context.Context, row *domain.ExpenditureData) error {
	return r.db.WithContext(ctx).
		Clauses(onUserDateConflict(
			"estimated_tdee", "confidence_percent", "confidence_level", "methodology",
			"weight_kg", "trend_weight_kg", "calories_consumed",
			"weight_change_7d", "weight_change_14d", "trend",
			"calorie_average_7d", "calorie_average_14d",
			"algorithm_version", "components",
		)).
		Create(row).Error
}

func (r *expenditureRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.ExpenditureData, error) {
	query, err := pageByDate(r.db.WithContext(ctx), "date", userID, filter)
	if err != nil {
		return nil, err
	}
	var rows []domain.ExpenditureData
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
