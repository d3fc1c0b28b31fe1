package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.WeeklyCheckIn) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyCheckIn, error)
	GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyCheckIn, error)
	Update(ctx context.Context, checkIn *domain.WeeklyCheckIn) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeeklyCheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *domain.WeeklyCheckIn) error {
	return conn(ctx, r.db).Create(checkIn).Error
}

// GetByID locks the row until commit when called inside a transaction.
func (r *checkInRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyCheckIn, error) {
	var checkIn domain.WeeklyCheckIn
	query := conn(ctx, r.db)
	if inTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.First(&checkIn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &checkIn, nil
}

// GetByWeek returns nil without error when the week has no check-in.
func (r *checkInRepository) GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyCheckIn, error) {
	var checkIn domain.WeeklyCheckIn
	err := conn(ctx, r.db).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart).
		First(&checkIn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepository) Update(ctx context.Context, checkIn *domain.WeeklyCheckIn) error {
	return conn(ctx, r.db).Save(checkIn).Error
}

func (r *checkInRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeeklyCheckIn, error) {
	query, err := pageByDate(r.db.WithContext(ctx), "week_start_date", userID, filter)
	if err != nil {
		return nil, err
	}
	var checkIns []domain.WeeklyCheckIn
	if err := query.Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}
