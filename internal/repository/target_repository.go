package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TargetRepository interface {
	Create(ctx context.Context, target *domain.MacroTarget) error
	// Current returns the latest target effective on or before date.
	Current(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MacroTarget, error)
}

type targetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Create(ctx context.Context, target *domain.MacroTarget) error {
	return conn(ctx, r.db).Create(target).Error
}

func (r *targetRepository) Current(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MacroTarget, error) {
	var target domain.MacroTarget
	err := conn(ctx, r.db).
		Where("user_id = ? AND effective_date <= ?", userID, date).
		Order("effective_date DESC").
		Order("created_at DESC").
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &target, nil
}
