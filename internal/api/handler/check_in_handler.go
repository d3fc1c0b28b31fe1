package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/api/validation"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
	"github.com/google/uuid"
)

type CheckInHandler struct {
	service service.CheckInService
}

func NewCheckInHandler(service service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

// Create handles POST /v1/users/{userId}/check-ins
// @Summary Submit a weekly check-in
// @Description Record the week's ratings. Depending on the user's coaching mode the macro adjustment is applied (coached), proposed for confirmation (collaborative) or not computed (manual).
// @Tags check-ins
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateCheckInRequest true "Weekly check-in"
// @Success 201 {object} domain.CheckInResponse "Recorded check-in"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Week already checked in"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins [post]
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.CreateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	checkIn, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to record check-in")
		return
	}

	writeJSON(w, http.StatusCreated, checkIn.ToResponse())
}

// List handles GET /v1/users/{userId}/check-ins
// @Summary List weekly check-ins
// @Description Fetch paginated check-ins, newest week first.
// @Tags check-ins
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Earliest week start (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Latest week start (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CheckInListResponse "Check-ins with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins [get]
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to list check-ins")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Confirm handles POST /v1/users/{userId}/check-ins/{checkInId}/confirm
// @Summary Confirm a proposed adjustment
// @Description Apply a pending collaborative proposal as the target from the following week.
// @Tags check-ins
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param checkInId path string true "Check-in UUID" format(uuid)
// @Success 200 {object} domain.CheckInResponse "Resolved check-in"
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "Check-in not found"
// @Failure 409 {object} problem.Problem "Adjustment is not pending"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins/{checkInId}/confirm [post]
func (h *CheckInHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.Confirm, "Failed to confirm adjustment")
}

// Reject handles POST /v1/users/{userId}/check-ins/{checkInId}/reject
// @Summary Reject a proposed adjustment
// @Description Discard a pending collaborative proposal. The current target stays in effect.
// @Tags check-ins
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param checkInId path string true "Check-in UUID" format(uuid)
// @Success 200 {object} domain.CheckInResponse "Resolved check-in"
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "Check-in not found"
// @Failure 409 {object} problem.Problem "Adjustment is not pending"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/check-ins/{checkInId}/reject [post]
func (h *CheckInHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.service.Reject, "Failed to reject adjustment")
}

type resolveFunc func(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error)

func (h *CheckInHandler) resolve(w http.ResponseWriter, r *http.Request, fn resolveFunc, fallback string) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	checkInID, ok := parseUUIDParam(w, r, "checkInId", "check-in")
	if !ok {
		return
	}

	checkIn, err := fn(r.Context(), userID, checkInID)
	if err != nil {
		writeServiceError(w, err, "Check-in not found", fallback)
		return
	}

	writeJSON(w, http.StatusOK, checkIn.ToResponse())
}
