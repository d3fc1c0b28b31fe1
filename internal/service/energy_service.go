package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// HistoryDays is how far back series are loaded for an estimate. It covers
	// the estimator lookback plus enough earlier weigh-ins to settle the trend.
	HistoryDays = 90

	DefaultQualityWindowDays = 28
)

// EnergySnapshot is everything computed for one user and day.
type EnergySnapshot struct {
	User     *domain.User
	AsOf     time.Time
	Estimate engine.TDEEEstimate
	Window   engine.WindowSummary
	Target   *engine.Macros

	Weights   []engine.WeightEntry
	Nutrition []engine.NutritionDay
}

// ComponentsResponse is the decomposition reconciled to the day's estimate.
// @Description Energy components (BMR, TEF, EAT, NEAT) summing to the estimated TDEE.
type ComponentsResponse struct {
	AsOf          time.Time               `json:"as_of"`
	EstimatedTDEE int                     `json:"estimated_tdee" example:"2296"`
	Methodology   engine.Methodology      `json:"methodology" example:"adherence_neutral"`
	Intake        engine.IntakeSummary    `json:"intake"`
	Components    engine.EnergyComponents `json:"components"`
}

// EnergyService runs the expenditure engine over a user's stored series.
type EnergyService interface {
	// Snapshot computes the estimate and window summary for asOf (nil means
	// today in the user's timezone).
	Snapshot(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*EnergySnapshot, error)
	Estimate(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error)
	Components(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*ComponentsResponse, error)
	DataQuality(ctx context.Context, userID uuid.UUID, windowDays int, asOf *time.Time) (*engine.DataQualityReport, error)
	// RecordHistory computes the estimate and upserts it as the day's history row.
	RecordHistory(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*domain.ExpenditureData, error)
	ListHistory(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ExpenditureListResponse, error)
}

type energyService struct {
	userRepo        repository.UserRepository
	weightRepo      repository.WeightRepository
	nutritionRepo   repository.NutritionRepository
	targetRepo      repository.TargetRepository
	expenditureRepo repository.ExpenditureRepository
	policy          engine.Policy
	now             func() time.Time
}

// NewEnergyService creates a new EnergyService.
func NewEnergyService(
	userRepo repository.UserRepository,
	weightRepo repository.WeightRepository,
	nutritionRepo repository.NutritionRepository,
	targetRepo repository.TargetRepository,
	expenditureRepo repository.ExpenditureRepository,
	policy engine.Policy,
) EnergyService {
	return &energyService{
		userRepo:        userRepo,
		weightRepo:      weightRepo,
		nutritionRepo:   nutritionRepo,
		targetRepo:      targetRepo,
		expenditureRepo: expenditureRepo,
		policy:          policy,
		now:             time.Now,
	}
}

func (s *energyService) Snapshot(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*EnergySnapshot, error) {
	tracer := otel.Tracer("energy-tracker-api/energy")
	ctx, span := tracer.Start(ctx, "EnergyService.Snapshot",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	day := resolveDay(asOf, user, s.now)
	span.SetAttributes(attribute.String("energy.as_of", day.Format(domain.DateLayout)))

	weights, nutrition, err := loadSeries(ctx, s.weightRepo, s.nutritionRepo, userID, day.AddDate(0, 0, -HistoryDays), day)
	if err != nil {
		return nil, err
	}
	target, err := currentTarget(ctx, s.targetRepo, userID, day)
	if err != nil {
		return nil, err
	}

	inputPayload := map[string]any{
		"user_id":       userID.String(),
		"as_of":         day.Format(domain.DateLayout),
		"weigh_ins":     len(weights),
		"logged_days":   len(nutrition),
		"has_target":    target != nil,
		"coaching_mode": user.CoachingMode,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	est, err := engine.EstimateTDEE(engine.EstimateInput{
		Weights:    weights,
		Nutrition:  nutrition,
		Targets:    target,
		Biological: user.Biological(),
		Activity:   user.Activity(),
		AsOf:       day,
	}, s.policy)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "estimate failed")
		return nil, fmt.Errorf("estimate tdee: %w", err)
	}

	snap := &EnergySnapshot{
		User:     user,
		AsOf:     day,
		Estimate: est,
		Window:   engine.Summarize(weights, nutrition, day, s.policy),
		Target:   target,

		Weights:   weights,
		Nutrition: nutrition,
	}

	span.SetAttributes(
		attribute.Int("energy.tdee", est.CurrentTDEE),
		attribute.String("energy.methodology", string(est.Methodology)),
		attribute.Float64("energy.confidence", est.ConfidencePercent),
	)
	if outputJSON, err := json.Marshal(est); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return snap, nil
}

func (s *energyService) Estimate(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error) {
	snap, err := s.Snapshot(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	return &snap.Estimate, nil
}

func (s *energyService) Components(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*ComponentsResponse, error) {
	snap, err := s.Snapshot(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}

	est := snap.Estimate
	if est.EnergyComponents == nil {
		return nil, fmt.Errorf("decompose energy: no components for %s", snap.AsOf.Format("2006-01-02"))
	}
	return &ComponentsResponse{
		AsOf:          snap.AsOf,
		EstimatedTDEE: est.CurrentTDEE,
		Methodology:   est.Methodology,
		Intake:        est.Intake,
		Components:    *est.EnergyComponents,
	}, nil
}

func (s *energyService) DataQuality(ctx context.Context, userID uuid.UUID, windowDays int, asOf *time.Time) (*engine.DataQualityReport, error) {
	tracer := otel.Tracer("energy-tracker-api/energy")
	ctx, span := tracer.Start(ctx, "EnergyService.DataQuality",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if windowDays == 0 {
		windowDays = DefaultQualityWindowDays
	}
	day := resolveDay(asOf, user, s.now)

	// Out-of-range windows are rejected by the engine; clamp only the load range.
	from := day.AddDate(0, 0, -clampInt(windowDays, 1, engine.MaxWindowDays))
	weights, nutrition, err := loadSeries(ctx, s.weightRepo, s.nutritionRepo, userID, from, day)
	if err != nil {
		return nil, err
	}

	report, err := engine.ScoreDataQuality(nutrition, weights, windowDays, day, s.policy)
	if err != nil {
		return nil, fmt.Errorf("score data quality: %w", err)
	}

	span.SetAttributes(
		attribute.Float64("quality.overall", report.OverallQuality),
		attribute.String("quality.level", string(report.Level)),
	)
	if outputJSON, err := json.Marshal(report); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &report, nil
}

func (s *energyService) RecordHistory(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*domain.ExpenditureData, error) {
	snap, err := s.Snapshot(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}

	row, err := domain.NewExpenditureData(userID, snap.Estimate, snap.Window)
	if err != nil {
		return nil, err
	}
	if err := s.expenditureRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *energyService) ListHistory(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ExpenditureListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	rows, err := s.expenditureRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	rows, next, hasMore := pagination.Page(rows, filter.Limit, func(e domain.ExpenditureData) pagination.Cursor {
		return pagination.Cursor{ID: e.ID, Date: e.Date}
	})

	response := &domain.ExpenditureListResponse{
		Data:       make([]domain.ExpenditureResponse, len(rows)),
		Pagination: domain.PaginationResponse{NextCursor: next, HasMore: hasMore},
	}
	for i := range rows {
		response.Data[i] = rows[i].ToResponse()
	}
	return response, nil
}

// resolveDay returns asOf as a calendar day, or today in the user's timezone.
func resolveDay(asOf *time.Time, user *domain.User, now func() time.Time) time.Time {
	t := now().In(user.Location())
	if asOf != nil {
		t = *asOf
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// loadSeries fetches weigh-ins and nutrition logs for [from, to].
func loadSeries(
	ctx context.Context,
	weightRepo repository.WeightRepository,
	nutritionRepo repository.NutritionRepository,
	userID uuid.UUID,
	from, to time.Time,
) ([]engine.WeightEntry, []engine.NutritionDay, error) {
	weightRows, err := weightRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("load weights: %w", err)
	}
	nutritionRows, err := nutritionRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("load nutrition: %w", err)
	}
	return domain.WeightsToEngine(weightRows), domain.NutritionToEngine(nutritionRows), nil
}

// currentTarget returns the macros in effect on day, or nil when none was set.
func currentTarget(ctx context.Context, repo repository.TargetRepository, userID uuid.UUID, day time.Time) (*engine.Macros, error) {
	target, err := repo.Current(ctx, userID, day)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	m := target.Macros()
	return &m, nil
}

func ensureUser(ctx context.Context, repo repository.UserRepository, userID uuid.UUID) error {
	exists, err := repo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
