package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/api/validation"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// InsightsHandler handles energy insights endpoints.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights handles GET /v1/users/{userId}/energy/insights
// @Summary Get LLM-powered energy insights
// @Description Explain the current expenditure estimate, weight trend and logging quality using an LLM.
// @Tags energy-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Energy insights with LLM analysis"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Profile is not valid for estimation"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/energy/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to generate insights")
		return
	}

	// Fall back to the OTEL trace ID for feedback linking when Langfuse is off
	if result.TraceID == "" {
		span := trace.SpanFromContext(r.Context())
		if span.SpanContext().IsValid() {
			result.TraceID = span.SpanContext().TraceID().String()
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// PostFeedback handles POST /v1/users/{userId}/energy/insights/feedback
// @Summary Submit feedback on energy insights
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags energy-insights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.InsightsFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.InsightsFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.insightsService.Feedback(r.Context(), userID, &req); err != nil {
		writeServiceError(w, err, "Trace not found", "Failed to record feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
