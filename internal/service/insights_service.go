package service

import (
	"context"
	"log"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/langfuse"
	"github.com/blaisecz/energy-tracker/internal/llm"
	"github.com/google/uuid"
)

const (
	insightsTraceName = "energy-insights"
	feedbackScoreName = "user_rating"
)

// InsightsService generates narrative energy insights.
type InsightsService interface {
	// Generate creates energy insights for a user as of today.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	// Feedback records a user's rating of a previous insights response.
	Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

type insightsService struct {
	energyService  EnergyService
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	energyService EnergyService,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
) InsightsService {
	return &insightsService{
		energyService:  energyService,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	snap, err := s.energyService.Snapshot(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Goal:     snap.User.GoalType,
		Estimate: snap.Estimate,
		Quality:  snap.Estimate.Quality,
		Window:   snap.Window,
		Target:   snap.Target,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Estimate: snap.Estimate,
		Quality:  snap.Estimate.Quality,
		Window:   snap.Window,
		Insights: *llmOutput,
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   insightsTraceName,
			Input:  insightsCtx,
			Output: llmOutput,
			Tags:   []string{"energy-tracker", string(snap.Estimate.Methodology)},
			Metadata: map[string]any{
				"as_of":             snap.AsOf.Format(domain.DateLayout),
				"confidence_level":  snap.Estimate.ConfidenceLevel,
				"algorithm_version": engine.AlgorithmVersion,
			},
		})
		if err != nil {
			log.Printf("[langfuse] create trace failed: %v", err)
		}
		response.TraceID = traceID
	}

	return response, nil
}

func (s *insightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if s.langfuseClient == nil {
		return nil
	}
	// Scores are fire-and-forget; feedback is accepted even when Langfuse is off.
	return s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
		Metadata: map[string]any{
			"user_id": userID.String(),
		},
	})
}
