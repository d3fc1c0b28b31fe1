package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/api/validation"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
)

type TargetHandler struct {
	service service.TargetService
}

func NewTargetHandler(service service.TargetService) *TargetHandler {
	return &TargetHandler{service: service}
}

// Create handles POST /v1/users/{userId}/targets
// @Summary Set a manual macro target
// @Description Set a calorie and macro target that applies from effective_date until the next target.
// @Tags targets
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateTargetRequest true "Target"
// @Success 201 {object} domain.MacroTargetResponse "Created target"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/targets [post]
func (h *TargetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	target, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to create target")
		return
	}

	writeJSON(w, http.StatusCreated, target.ToResponse())
}

// Current handles GET /v1/users/{userId}/targets/current
// @Summary Get the current macro target
// @Description Get the target in effect on as_of (default: today in the user's timezone).
// @Tags targets
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param as_of query string false "Day to evaluate (YYYY-MM-DD)" format(date) example(2024-03-10)
// @Success 200 {object} domain.MacroTargetResponse "Target in effect"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User or target not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/targets/current [get]
func (h *TargetHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(w, r)
	if !ok {
		return
	}

	target, err := h.service.Current(r.Context(), userID, asOf)
	if err != nil {
		writeServiceError(w, err, "No target in effect", "Failed to get target")
		return
	}

	writeJSON(w, http.StatusOK, target.ToResponse())
}
