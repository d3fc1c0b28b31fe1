package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/blaisecz/energy-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseUUIDParam parses a UUID path parameter, writing a 400 on failure.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parseUUIDParam(w, r, "userId", "user")
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(r *http.Request, name string) (*time.Time, *problem.FieldError) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(val)
	if err != nil {
		return nil, &problem.FieldError{Field: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &d, nil
}

// parseAsOf reads the as_of query parameter, writing a 422 when malformed.
func parseAsOf(w http.ResponseWriter, r *http.Request) (*time.Time, bool) {
	asOf, fe := parseDateParam(r, "as_of")
	if fe != nil {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{*fe}).Write(w)
		return nil, false
	}
	return asOf, true
}

// parseListFilter reads from, to, limit and cursor for the dated list endpoints.
func parseListFilter(r *http.Request) (domain.ListFilter, []problem.FieldError) {
	var filter domain.ListFilter
	var fieldErrors []problem.FieldError

	if from, fe := parseDateParam(r, "from"); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	} else {
		filter.From = from
	}

	if to, fe := parseDateParam(r, "to"); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	} else {
		filter.To = to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > pagination.MaxLimit {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be an integer between 1 and " + strconv.Itoa(pagination.MaxLimit),
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")
	if filter.Cursor != "" {
		if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "cursor",
				Message: "is invalid",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
