package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/repository"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
)

// trendHistoryDays of weigh-ins before the week are loaded so the displayed
// trend delta has a settled starting point.
const trendHistoryDays = 60

// Adjuster computes a macro adjustment. engine.AdjustMacros in production.
type Adjuster func(in engine.AdjustmentInput, p engine.Policy) (engine.AdjustmentResult, error)

// CheckInService records weekly check-ins and routes their adjustments
// according to the user's coaching mode.
type CheckInService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.WeeklyCheckIn, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.CheckInListResponse, error)
	// Confirm applies a pending proposal as the new target.
	Confirm(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error)
	// Reject discards a pending proposal.
	Reject(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error)
}

type checkInService struct {
	repo          repository.CheckInRepository
	userRepo      repository.UserRepository
	weightRepo    repository.WeightRepository
	nutritionRepo repository.NutritionRepository
	targetRepo    repository.TargetRepository
	tx            repository.Transactor
	policy        engine.Policy
	adjust        Adjuster
	now           func() time.Time
}

// NewCheckInService creates a new CheckInService. A nil adjust uses engine.AdjustMacros.
// Check-in and target writes that belong together run in one transaction of tx.
func NewCheckInService(
	repo repository.CheckInRepository,
	userRepo repository.UserRepository,
	weightRepo repository.WeightRepository,
	nutritionRepo repository.NutritionRepository,
	targetRepo repository.TargetRepository,
	tx repository.Transactor,
	policy engine.Policy,
	adjust Adjuster,
) CheckInService {
	if adjust == nil {
		adjust = engine.AdjustMacros
	}
	return &checkInService{
		repo:          repo,
		userRepo:      userRepo,
		weightRepo:    weightRepo,
		nutritionRepo: nutritionRepo,
		targetRepo:    targetRepo,
		tx:            tx,
		policy:        policy,
		adjust:        adjust,
		now:           time.Now,
	}
}

func (s *checkInService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.WeeklyCheckIn, error) {
	tracer := otel.Tracer("energy-tracker-api/check-ins")
	ctx, span := tracer.Start(ctx, "CheckInService.Create",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("check_in.week_start", req.WeekStart),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStart, err := domain.ParseDate(req.WeekStart)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	existing, err := s.repo.GetByWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	weights, nutrition, err := loadSeries(ctx, s.weightRepo, s.nutritionRepo, userID, weekStart.AddDate(0, 0, -trendHistoryDays), weekEnd)
	if err != nil {
		return nil, err
	}
	target, err := currentTarget(ctx, s.targetRepo, userID, weekEnd)
	if err != nil {
		return nil, err
	}

	summary := engine.SummarizeWeek(weights, nutrition, weekStart, target, s.policy)

	checkIn := &domain.WeeklyCheckIn{
		ID:                  uuid.New(),
		UserID:              userID,
		WeekStartDate:       weekStart,
		EnergyLevel:         req.EnergyLevel,
		HungerLevel:         req.HungerLevel,
		TrainingPerformance: req.TrainingPerformance,
		Notes:               req.Notes,
		CoachingMode:        user.CoachingMode,
		AdjustmentState:     domain.AdjustmentNone,
	}
	checkIn.ApplySummary(summary)

	action := engine.DecideCoaching(user.CoachingMode)
	span.SetAttributes(attribute.String("coaching.action", string(action)))

	var proposed *engine.Macros
	switch {
	case action == engine.ActionSuppress:
		// Manual coaching: the week is recorded, no adjustment is computed.
	case target == nil:
		checkIn.Flags = datatypes.JSON(`["` + engine.FlagNoTarget + `"]`)
	default:
		res, err := s.adjust(s.adjustmentInput(user, req, summary, *target), s.policy)
		if err != nil {
			return nil, fmt.Errorf("adjust macros: %w", err)
		}
		if err := checkIn.SetAdjustment(res); err != nil {
			return nil, err
		}
		if outputJSON, err := json.Marshal(res); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
		}

		switch res.Status {
		case engine.StatusInsufficientData:
			checkIn.AdjustmentState = domain.AdjustmentInsufficient
		case engine.StatusUnchanged:
			checkIn.AdjustmentState = domain.AdjustmentUnchanged
		default:
			if action == engine.ActionApply {
				now := s.now().UTC()
				checkIn.AdjustmentState = domain.AdjustmentApplied
				checkIn.ResolvedAt = &now
				proposed = res.Proposed
			} else {
				checkIn.AdjustmentState = domain.AdjustmentPending
			}
		}
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, checkIn); err != nil {
			return err
		}
		if proposed == nil {
			return nil
		}
		return s.applyTarget(ctx, checkIn, *proposed, domain.TargetSourceCoached)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("check_in.adjustment_state", string(checkIn.AdjustmentState)))
	return checkIn, nil
}

func (s *checkInService) adjustmentInput(user *domain.User, req *domain.CreateCheckInRequest, summary engine.WeekSummary, current engine.Macros) engine.AdjustmentInput {
	bio := user.Biological()
	if summary.AverageWeightKg > 0 {
		bio.WeightKg = summary.AverageWeightKg
	}

	// BMR only feeds the calorie floor; a profile the engine rejects leaves
	// the floor at the policy minimum.
	var bmr int
	if comps, err := engine.DecomposeEnergy(bio, user.Activity(), summary.AverageIntake, nil, s.policy); err == nil {
		bmr = comps.BMR
	}

	return engine.AdjustmentInput{
		Current:             current,
		WeeklyWeightDeltaKg: summary.WeightChangeKg,
		Goal:                user.GoalType,
		EnergyLevel:         req.EnergyLevel,
		HungerLevel:         req.HungerLevel,
		TrainingPerformance: req.TrainingPerformance,
		BodyWeightKg:        bio.WeightKg,
		EstimatedBMR:        bmr,
		DaysWeighed:         summary.DaysWeighed,
		DaysLogged:          summary.DaysLogged,
	}
}

func (s *checkInService) applyTarget(ctx context.Context, checkIn *domain.WeeklyCheckIn, m engine.Macros, source domain.TargetSource) error {
	id := checkIn.ID
	target := &domain.MacroTarget{
		UserID:        checkIn.UserID,
		EffectiveDate: checkIn.WeekStartDate.AddDate(0, 0, 7),
		Calories:      m.Calories,
		ProteinG:      m.ProteinG,
		CarbsG:        m.CarbsG,
		FatG:          m.FatG,
		Source:        source,
		CheckInID:     &id,
	}
	return s.targetRepo.Create(ctx, target)
}

func (s *checkInService) Confirm(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error) {
	var confirmed *domain.WeeklyCheckIn
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		checkIn, err := s.pending(ctx, userID, checkInID)
		if err != nil {
			return err
		}

		res, err := checkIn.DecodeAdjustment()
		if err != nil {
			return fmt.Errorf("decode adjustment: %w", err)
		}
		if res == nil || res.Proposed == nil {
			return domain.ErrAdjustmentNotPending
		}

		if err := s.applyTarget(ctx, checkIn, *res.Proposed, domain.TargetSourceCollaborative); err != nil {
			return err
		}
		confirmed, err = s.resolve(ctx, checkIn, domain.AdjustmentApplied)
		return err
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

func (s *checkInService) Reject(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error) {
	var rejected *domain.WeeklyCheckIn
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		checkIn, err := s.pending(ctx, userID, checkInID)
		if err != nil {
			return err
		}
		rejected, err = s.resolve(ctx, checkIn, domain.AdjustmentRejected)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// pending loads a check-in owned by userID whose adjustment awaits a decision.
// Inside a transaction the row stays locked, so concurrent confirms serialize.
func (s *checkInService) pending(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	checkIn, err := s.repo.GetByID(ctx, checkInID)
	if err != nil {
		return nil, err
	}
	if checkIn.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if checkIn.AdjustmentState != domain.AdjustmentPending {
		if checkIn.CoachingMode == engine.ModeManual {
			return nil, domain.ErrCoachingManual
		}
		return nil, domain.ErrAdjustmentNotPending
	}
	return checkIn, nil
}

func (s *checkInService) resolve(ctx context.Context, checkIn *domain.WeeklyCheckIn, state domain.AdjustmentState) (*domain.WeeklyCheckIn, error) {
	now := s.now().UTC()
	checkIn.AdjustmentState = state
	checkIn.ResolvedAt = &now
	if err := s.repo.Update(ctx, checkIn); err != nil {
		return nil, err
	}
	return checkIn, nil
}

func (s *checkInService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.CheckInListResponse, error) {
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	checkIns, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	checkIns, next, hasMore := pagination.Page(checkIns, filter.Limit, func(c domain.WeeklyCheckIn) pagination.Cursor {
		return pagination.Cursor{ID: c.ID, Date: c.WeekStartDate}
	})

	response := &domain.CheckInListResponse{
		Data:       make([]domain.CheckInResponse, len(checkIns)),
		Pagination: domain.PaginationResponse{NextCursor: next, HasMore: hasMore},
	}
	for i := range checkIns {
		response.Data[i] = checkIns[i].ToResponse()
	}
	return response, nil
}
