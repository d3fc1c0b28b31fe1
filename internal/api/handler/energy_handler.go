package handler

import (
	"net/http"
	"strconv"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
)

// EnergyHandler exposes the expenditure engine over a user's stored series.
type EnergyHandler struct {
	service service.EnergyService
}

func NewEnergyHandler(service service.EnergyService) *EnergyHandler {
	return &EnergyHandler{service: service}
}

// GetTDEE handles GET /v1/users/{userId}/energy/tdee
// @Summary Estimate TDEE
// @Description Estimate total daily energy expenditure from logged intake and the smoothed weight trend. Targets never enter the estimate.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param as_of query string false "Day to evaluate (YYYY-MM-DD, default today in the user's timezone)" format(date) example(2024-03-10)
// @Success 200 {object} engine.TDEEEstimate "Expenditure estimate"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query or profile"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/tdee [get]
func (h *EnergyHandler) GetTDEE(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	est, err := h.service.Estimate(r.Context(), userID, asOf)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to estimate expenditure")
		return
	}

	writeJSON(w, http.StatusOK, est)
}

// GetComponents handles GET /v1/users/{userId}/energy/components
// @Summary Decompose expenditure
// @Description Break the estimate into BMR, TEF, EAT and NEAT. NEAT absorbs the difference to the estimate.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param as_of query string false "Day to evaluate (YYYY-MM-DD)" format(date) example(2024-03-10)
// @Success 200 {object} service.ComponentsResponse "Energy components"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query or profile"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/components [get]
func (h *EnergyHandler) GetComponents(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Components(r.Context(), userID, asOf)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to decompose expenditure")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDataQuality handles GET /v1/users/{userId}/energy/data-quality
// @Summary Score logging quality
// @Description Score logging density, weighing frequency and weight stability over a window, with detected patterns and recommendations.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to score" default(28) minimum(1) maximum(365)
// @Param as_of query string false "Last day of the window (YYYY-MM-DD)" format(date) example(2024-03-10)
// @Success 200 {object} engine.DataQualityReport "Data quality report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/data-quality [get]
func (h *EnergyHandler) GetDataQuality(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	windowDays, ok := parseIntParam(r, "window_days", service.DefaultQualityWindowDays)
	if !ok || windowDays < 1 || windowDays > engine.MaxWindowDays {
		problem.BadRequest("window_days must be between 1 and " + strconv.Itoa(engine.MaxWindowDays)).Write(w)
		return
	}
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	report, err := h.service.DataQuality(r.Context(), userID, windowDays, asOf)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to score data quality")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// RecordHistory handles POST /v1/users/{userId}/energy/history
// @Summary Snapshot the estimate
// @Description Compute the estimate for as_of and store it as that day's history row, replacing any earlier snapshot.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param as_of query string false "Day to snapshot (YYYY-MM-DD)" format(date) example(2024-03-10)
// @Success 200 {object} domain.ExpenditureResponse "Stored snapshot"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query or profile"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/history [post]
func (h *EnergyHandler) RecordHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	row, err := h.service.RecordHistory(r.Context(), userID, asOf)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record history")
		return
	}

	writeJSON(w, http.StatusOK, row.ToResponse())
}

// ListHistory handles GET /v1/users/{userId}/energy/history
// @Summary List expenditure history
// @Description Fetch stored daily snapshots, newest first.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First day (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "Last day (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ExpenditureListResponse "History with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy/history [get]
func (h *EnergyHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.ListHistory(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list history")
		return
	}

	writeJSON(w, http.StatusOK, response)
}
