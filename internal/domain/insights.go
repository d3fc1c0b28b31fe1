package domain

import "github.com/blaisecz/energy-tracker/internal/engine"

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated energy insights.
type LLMInsightsOutput struct {
	// Summary of expenditure and intake (2-3 sentences)
	Summary string `json:"summary" example:"Your expenditure has held steady around 2300 kcal..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Intake averaged 2180 kcal over the last two weeks\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Log weekend meals to tighten the estimate\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	Goal     engine.GoalType          `json:"goal"`
	Estimate engine.TDEEEstimate      `json:"estimate"`
	Quality  engine.DataQualityReport `json:"data_quality"`
	Window   engine.WindowSummary     `json:"window"`
	Target   *engine.Macros           `json:"target,omitempty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Energy insights with the numbers they were generated from.
type InsightsResponse struct {
	Estimate engine.TDEEEstimate      `json:"estimate"`
	Quality  engine.DataQualityReport `json:"data_quality"`
	Window   engine.WindowSummary     `json:"window"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// InsightsFeedbackRequest rates a generated insight.
// @Description User rating for a previous insights response, recorded as a Langfuse score.
type InsightsFeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required,max=128" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"The guidance was useful"`
}
