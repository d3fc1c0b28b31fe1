// Package problem writes RFC 9457 problem+json error responses.
package problem

import (
	"encoding/json"
	"net/http"
)

const (
	ContentType = "application/problem+json"
	BaseURI     = "http://localhost:8080/problems"
)

// Problem is the problem+json body.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError names one invalid request or engine input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(status int, problemType, title, detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// WithInstance sets the URI of the request that failed.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, "not-found", "Not Found", detail)
}

func BadRequest(detail string) *Problem {
	return New(http.StatusBadRequest, "bad-request", "Bad Request", detail)
}

func ValidationError(detail string, errors []FieldError) *Problem {
	return New(http.StatusUnprocessableEntity, "validation-error", "Validation Error", detail).WithErrors(errors)
}

func Conflict(detail string) *Problem {
	return New(http.StatusConflict, "conflict", "Conflict", detail)
}

func InternalError(detail string) *Problem {
	return New(http.StatusInternalServerError, "internal-error", "Internal Server Error", detail)
}

// ServiceUnavailable is used when an optional integration is not configured.
func ServiceUnavailable(detail string) *Problem {
	return New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", detail)
}

// BadGateway is used when an upstream model call fails or returns garbage.
func BadGateway(detail string) *Problem {
	return New(http.StatusBadGateway, "llm-error", "LLM Error", detail)
}
