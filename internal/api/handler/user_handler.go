package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/api/validation"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users
// @Summary Create a new user
// @Description Create a user with the body, activity and coaching profile the expenditure engine needs.
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create user").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, user.ToResponse())
}

// GetByID handles GET /v1/users/{userId}
// @Summary Get user by ID
// @Description Get a user's profile by their UUID
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

// UpdateProfile handles PATCH /v1/users/{userId}
// @Summary Update user profile
// @Description Partially update the body, activity, goal or coaching mode. Omitted fields are kept.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/profile [patch]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, err, "User not found", "Failed to update user")
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}
