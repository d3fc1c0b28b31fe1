package repository

import (
	"context"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightRepository interface {
	// Upsert stores one weigh-in per user and day. A second write for the same
	// day replaces the weight.
	Upsert(ctx context.Context, entry *domain.WeightEntry) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeightEntry, error)
}

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) Upsert(ctx context.Context, entry *domain.WeightEntry) error {
	return r.db.WithContext(ctx).
		Clauses(onUserDateConflict("weight_kg")).
		Create(entry).Error
}

func (r *weightRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error) {
	var entries []domain.WeightEntry
	err := rangeByDate(r.db.WithContext(ctx), "date", userID, from, to).Find(&entries).Error
	return entries, err
}

func (r *weightRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeightEntry, error) {
	query, err := pageByDate(r.db.WithContext(ctx), "date", userID, filter)
	if err != nil {
		return nil, err
	}
	var entries []domain.WeightEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
