package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/api/validation"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
)

// SeriesHandler serves the daily weigh-in and nutrition series.
type SeriesHandler struct {
	weightService    service.WeightService
	nutritionService service.NutritionService
}

func NewSeriesHandler(weightService service.WeightService, nutritionService service.NutritionService) *SeriesHandler {
	return &SeriesHandler{
		weightService:    weightService,
		nutritionService: nutritionService,
	}
}

// UpsertWeight handles PUT /v1/users/{userId}/weights
// @Summary Record a weigh-in
// @Description Record body weight for a calendar day. A second weigh-in for the same day replaces the first.
// @Tags weights
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpsertWeightRequest true "Weigh-in"
// @Success 200 {object} domain.WeightEntryResponse "Stored weigh-in"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/weights [put]
func (h *SeriesHandler) UpsertWeight(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpsertWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.weightService.Upsert(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record weight")
		return
	}

	writeJSON(w, http.StatusOK, entry.ToResponse())
}

// ListWeights handles GET /v1/users/{userId}/weights
// @Summary List weigh-ins
// @Description Fetch paginated weigh-ins, newest day first.
// @Tags weights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First day (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "Last day (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.WeightListResponse "Weigh-ins with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/weights [get]
func (h *SeriesHandler) ListWeights(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.weightService.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list weights")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// UpsertNutrition handles PUT /v1/users/{userId}/nutrition
// @Summary Record daily intake
// @Description Record the calorie and macro totals for a calendar day, replacing any earlier total. Zero calories marks the day as not logged.
// @Tags nutrition
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpsertNutritionRequest true "Daily intake"
// @Success 200 {object} domain.NutritionLogResponse "Stored intake"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/nutrition [put]
func (h *SeriesHandler) UpsertNutrition(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpsertNutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.nutritionService.Upsert(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record nutrition")
		return
	}

	writeJSON(w, http.StatusOK, log.ToResponse())
}

// ListNutrition handles GET /v1/users/{userId}/nutrition
// @Summary List daily intake
// @Description Fetch paginated daily intake totals, newest day first.
// @Tags nutrition
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First day (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "Last day (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.NutritionListResponse "Daily intake with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/nutrition [get]
func (h *SeriesHandler) ListNutrition(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.nutritionService.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list nutrition")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
