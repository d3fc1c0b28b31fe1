package service

import (
	"context"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
)

type WeightService interface {
	// Upsert records the weigh-in for a day, replacing any earlier one.
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertWeightRequest) (*domain.WeightEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.WeightListResponse, error)
}

type weightService struct {
	repo     repository.WeightRepository
	userRepo repository.UserRepository
}

func NewWeightService(repo repository.WeightRepository, userRepo repository.UserRepository) WeightService {
	return &weightService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *weightService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertWeightRequest) (*domain.WeightEntry, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	entry := &domain.WeightEntry{
		UserID:   userID,
		Date:     date,
		WeightKg: req.WeightKg,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *weightService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.WeightListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	entries, next, hasMore := pagination.Page(entries, filter.Limit, func(e domain.WeightEntry) pagination.Cursor {
		return pagination.Cursor{ID: e.ID, Date: e.Date}
	})

	response := &domain.WeightListResponse{
		Data:       make([]domain.WeightEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{NextCursor: next, HasMore: hasMore},
	}
	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}
	return response, nil
}
