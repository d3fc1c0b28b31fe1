package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/llm"
	"github.com/blaisecz/energy-tracker/pkg/problem"
)

// writeServiceError maps a service error to a problem response. notFound is
// the detail used for domain.ErrNotFound; fallback for anything unmapped.
func writeServiceError(w http.ResponseWriter, err error, notFound, fallback string) {
	var verr *engine.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict("A record for this period already exists").Write(w)
	case errors.Is(err, domain.ErrAdjustmentNotPending):
		problem.Conflict("The adjustment is not awaiting confirmation").Write(w)
	case errors.Is(err, domain.ErrCoachingManual):
		problem.Conflict("Manual coaching mode does not produce adjustments").Write(w)
	case errors.As(err, &verr):
		problem.ValidationError("Stored data or profile is not valid for this calculation", engineFieldErrors(verr)).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid input").Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.BadGateway("Failed to generate insights from LLM").Write(w)
	default:
		log.Printf("[api] %s: %v", fallback, err)
		problem.InternalError(fallback).Write(w)
	}
}

func engineFieldErrors(verr *engine.ValidationError) []problem.FieldError {
	out := make([]problem.FieldError, len(verr.Errors))
	for i, fe := range verr.Errors {
		out[i] = problem.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return out
}
