package service

import (
	"context"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type NutritionService interface {
	// Upsert records the intake total for a day, replacing any earlier total.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertNutritionRequest) (*domain.NutritionLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.NutritionListResponse, error)
}

type nutritionService struct {
	repo     repository.NutritionRepository
	userRepo repository.UserRepository
}

func NewNutritionService(repo repository.NutritionRepository, userRepo repository.UserRepository) NutritionService {
	return &nutritionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *nutritionService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertNutritionRequest) (*domain.NutritionLog, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	log := &domain.NutritionLog{
		UserID:   userID,
		Date:     date,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		FiberG:   req.FiberG,
	}
	if err := s.repo.Upsert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *nutritionService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.NutritionListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	logs, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	logs, next, hasMore := pagination.Page(logs, filter.Limit, func(n domain.NutritionLog) pagination.Cursor {
		return pagination.Cursor{ID: n.ID, Date: n.Date}
	})

	response := &domain.NutritionListResponse{
		Data:       make([]domain.NutritionLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{NextCursor: next, HasMore: hasMore},
	}
	for i := range logs {
		response.Data[i] = logs[i].ToResponse()
	}
	return response, nil
}
