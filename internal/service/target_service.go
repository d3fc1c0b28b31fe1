package service

import (
	"context"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/google/uuid"
)

type TargetService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTargetRequest) (*domain.MacroTarget, error)
	// Current returns the target in effect on date (nil means today in the
	// user's timezone).
	Current(ctx context.Context, userID uuid.UUID, date *time.Time) (*domain.MacroTarget, error)
}

type targetService struct {
	repo     repository.TargetRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewTargetService(repo repository.TargetRepository, userRepo repository.UserRepository) TargetService {
	return &targetService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *targetService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTargetRequest) (*domain.MacroTarget, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	effective, err := domain.ParseDate(req.EffectiveDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	target := &domain.MacroTarget{
		UserID:        userID,
		EffectiveDate: effective,
		Calories:      req.Calories,
		ProteinG:      req.ProteinG,
		CarbsG:        req.CarbsG,
		FatG:          req.FatG,
		Source:        domain.TargetSourceManual,
	}
	if err := s.repo.Create(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *targetService) Current(ctx context.Context, userID uuid.UUID, date *time.Time) (*domain.MacroTarget, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.Current(ctx, userID, resolveDay(date, user, s.now))
}
