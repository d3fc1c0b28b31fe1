package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// profileColumns are the columns a profile update may touch.
var profileColumns = []string{
	"timezone", "sex", "age", "height_cm", "weight_kg", "body_fat_percent",
	"activity_level", "exercise_minutes_per_week", "exercise_intensity", "steps_per_day",
	"goal_type", "coaching_mode", "updated_at",
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Update writes the profile columns of an existing user.
	Update(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

// isUniqueViolation reports a Postgres unique_violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Model(user).Select(profileColumns).Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
