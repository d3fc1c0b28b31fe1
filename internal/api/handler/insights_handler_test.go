package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/llm"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestGetInsights_IncludesTraceIDFromSpan(t *testing.T) {
	userID := uuid.New()

	handler := NewInsightsHandler(&MockInsightsService{})

	r := chi.NewRouter()
	r.Get("/users/{userId}/energy/insights", handler.GetInsights)

	// A recording provider gives the span a valid trace ID.
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())
	ctx, span := tp.Tracer("test").Start(context.Background(), "test-span")
	defer span.End()

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/energy/insights", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response domain.InsightsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if want := span.SpanContext().TraceID().String(); response.TraceID != want {
		t.Errorf("trace_id = %q, want %q", response.TraceID, want)
	}
	if response.Estimate.CurrentTDEE != 2200 {
		t.Errorf("estimate = %d, want 2200", response.Estimate.CurrentTDEE)
	}
}

func TestGetInsights_KeepsLangfuseTraceID(t *testing.T) {
	userID := uuid.New()

	handler := NewInsightsHandler(&MockInsightsService{
		generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
			return &domain.InsightsResponse{TraceID: "lf-trace"}, nil
		},
	})

	req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/insights", "", map[string]string{"userId": userID.String()})
	w := httptest.NewRecorder()

	handler.GetInsights(w, req)

	if !strings.Contains(w.Body.String(), `"trace_id":"lf-trace"`) {
		t.Errorf("expected langfuse trace id in body, got %s", w.Body.String())
	}
}

func TestGetInsights_NoTraceIDWithoutSpan(t *testing.T) {
	userID := uuid.New()

	handler := NewInsightsHandler(&MockInsightsService{})

	req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/insights", "", map[string]string{"userId": userID.String()})
	w := httptest.NewRecorder()

	handler.GetInsights(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `"trace_id"`) {
		t.Error("expected trace_id to be omitted")
	}
}

func TestGetInsights_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", domain.ErrNotFound, http.StatusNotFound},
		{"llm not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"llm request failed", fmt.Errorf("%w: timeout", llm.ErrOpenAIRequest), http.StatusBadGateway},
		{"llm response invalid", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			handler := NewInsightsHandler(&MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, tt.err
				},
			})

			req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/insights", "", map[string]string{"userId": userID.String()})
			w := httptest.NewRecorder()

			handler.GetInsights(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestPostFeedback_Success(t *testing.T) {
	userID := uuid.New()

	var received *domain.InsightsFeedbackRequest
	handler := NewInsightsHandler(&MockInsightsService{
		feedbackFunc: func(ctx context.Context, id uuid.UUID, req *domain.InsightsFeedbackRequest) error {
			received = req
			return nil
		},
	})

	r := chi.NewRouter()
	r.Post("/users/{userId}/energy/insights/feedback", handler.PostFeedback)

	body := `{"trace_id": "trace-123", "score": 4, "comment": "Helpful!"}`
	req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/energy/insights/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}
	if received == nil || received.TraceID != "trace-123" || received.Score != 4 {
		t.Errorf("unexpected feedback passed to service: %+v", received)
	}
}

func TestPostFeedback_ValidationErrors(t *testing.T) {
	userID := uuid.New()

	handler := NewInsightsHandler(&MockInsightsService{})

	r := chi.NewRouter()
	r.Post("/users/{userId}/energy/insights/feedback", handler.PostFeedback)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing trace_id", `{"score": 4}`, http.StatusUnprocessableEntity},
		{"score too low", `{"trace_id": "abc", "score": 0}`, http.StatusUnprocessableEntity},
		{"score too high", `{"trace_id": "abc", "score": 6}`, http.StatusUnprocessableEntity},
		{"malformed body", `{"trace_id":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/energy/insights/feedback", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
