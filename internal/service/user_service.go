package service

import (
	"context"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:                     uuid.New(),
		Timezone:               req.Timezone,
		Sex:                    req.Sex,
		Age:                    req.Age,
		HeightCm:               req.HeightCm,
		WeightKg:               req.WeightKg,
		BodyFatPercent:         req.BodyFatPercent,
		ActivityLevel:          req.ActivityLevel,
		ExerciseMinutesPerWeek: req.ExerciseMinutesPerWeek,
		ExerciseIntensity:      req.ExerciseIntensity,
		StepsPerDay:            req.StepsPerDay,
		GoalType:               req.GoalType,
		CoachingMode:           req.CoachingMode,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial update. The profile is the only place the
// engine's biological and activity inputs come from.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(user)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
