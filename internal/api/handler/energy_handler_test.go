package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/blaisecz/energy-tracker/pkg/problem"
	"github.com/google/uuid"
)

func TestEnergyHandler_GetTDEE(t *testing.T) {
	userID := uuid.New()

	var gotAsOf *time.Time
	mock := &MockEnergyService{
		estimateFunc: func(ctx context.Context, id uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error) {
			if id != userID {
				return nil, domain.ErrNotFound
			}
			gotAsOf = asOf
			return &engine.TDEEEstimate{CurrentTDEE: 2296, Methodology: engine.MethodologyAdherenceNeutral}, nil
		},
	}

	tests := []struct {
		name       string
		userID     string
		query      string
		wantStatus int
		wantAsOf   string
	}{
		{"today", userID.String(), "", http.StatusOK, ""},
		{"explicit day", userID.String(), "?as_of=2024-03-10", http.StatusOK, "2024-03-10"},
		{"malformed day", userID.String(), "?as_of=10/03/2024", http.StatusUnprocessableEntity, ""},
		{"unknown user", uuid.New().String(), "", http.StatusNotFound, ""},
		{"invalid user ID", "nope", "", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAsOf = nil
			handler := NewEnergyHandler(mock)

			req := newRequest(http.MethodGet, "/users/"+tt.userID+"/energy/tdee"+tt.query, "", map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.GetTDEE(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var est engine.TDEEEstimate
			if err := json.NewDecoder(rec.Body).Decode(&est); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if est.CurrentTDEE != 2296 {
				t.Errorf("current_tdee = %d, want 2296", est.CurrentTDEE)
			}

			switch {
			case tt.wantAsOf == "" && gotAsOf != nil:
				t.Errorf("as_of = %v, want nil", gotAsOf)
			case tt.wantAsOf != "" && (gotAsOf == nil || gotAsOf.Format(domain.DateLayout) != tt.wantAsOf):
				t.Errorf("as_of = %v, want %s", gotAsOf, tt.wantAsOf)
			}
		})
	}
}

func TestEnergyHandler_GetTDEE_ProfileRejected(t *testing.T) {
	userID := uuid.New()
	mock := &MockEnergyService{
		estimateFunc: func(ctx context.Context, id uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error) {
			return nil, &engine.ValidationError{Errors: []engine.FieldError{{Field: "age", Message: "must be between 13 and 120"}}}
		},
	}

	req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/tdee", "", map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	NewEnergyHandler(mock).GetTDEE(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var p problem.Problem
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if len(p.Errors) != 1 || p.Errors[0].Field != "age" {
		t.Errorf("errors = %+v, want one error on age", p.Errors)
	}
}

func TestEnergyHandler_GetComponents(t *testing.T) {
	userID := uuid.New()
	mock := &MockEnergyService{
		componentsFunc: func(ctx context.Context, id uuid.UUID, asOf *time.Time) (*service.ComponentsResponse, error) {
			return &service.ComponentsResponse{
				EstimatedTDEE: 2296,
				Components:    engine.EnergyComponents{BMR: 1780, TEF: 220, EAT: 60, NEAT: 236, Total: 2296},
			}, nil
		},
	}

	req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/components", "", map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	NewEnergyHandler(mock).GetComponents(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp service.ComponentsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Components.Total != resp.EstimatedTDEE {
		t.Errorf("components total = %v, want %d", resp.Components.Total, resp.EstimatedTDEE)
	}
}

func TestEnergyHandler_GetDataQuality(t *testing.T) {
	userID := uuid.New()

	var gotWindow int
	mock := &MockEnergyService{
		dataQualityFunc: func(ctx context.Context, id uuid.UUID, windowDays int, asOf *time.Time) (*engine.DataQualityReport, error) {
			gotWindow = windowDays
			return &engine.DataQualityReport{WindowDays: windowDays}, nil
		},
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantWindow int
	}{
		{"default window", "", http.StatusOK, service.DefaultQualityWindowDays},
		{"custom window", "?window_days=14", http.StatusOK, 14},
		{"max window", "?window_days=365", http.StatusOK, 365},
		{"window too large", "?window_days=366", http.StatusBadRequest, 0},
		{"window zero", "?window_days=0", http.StatusBadRequest, 0},
		{"window not a number", "?window_days=abc", http.StatusBadRequest, 0},
		{"malformed as_of", "?as_of=yesterday", http.StatusUnprocessableEntity, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWindow = 0
			req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/data-quality"+tt.query, "", map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			NewEnergyHandler(mock).GetDataQuality(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if gotWindow != tt.wantWindow {
				t.Errorf("window passed to service = %d, want %d", gotWindow, tt.wantWindow)
			}
		})
	}
}

func TestEnergyHandler_History(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	var gotFilter domain.ListFilter
	mock := &MockEnergyService{
		recordHistoryFunc: func(ctx context.Context, id uuid.UUID, asOf *time.Time) (*domain.ExpenditureData, error) {
			return &domain.ExpenditureData{
				ID:               uuid.New(),
				UserID:           id,
				Date:             *asOf,
				EstimatedTDEE:    2296,
				Methodology:      engine.MethodologyAdherenceNeutral,
				AlgorithmVersion: engine.AlgorithmVersion,
			}, nil
		},
		listHistoryFunc: func(ctx context.Context, id uuid.UUID, filter domain.ListFilter) (*domain.ExpenditureListResponse, error) {
			gotFilter = filter
			return &domain.ExpenditureListResponse{Data: []domain.ExpenditureResponse{}}, nil
		},
	}
	handler := NewEnergyHandler(mock)
	params := map[string]string{"userId": userID.String()}

	t.Run("record", func(t *testing.T) {
		req := newRequest(http.MethodPost, "/users/"+userID.String()+"/energy/history?as_of=2024-03-10", "", params)
		rec := httptest.NewRecorder()

		handler.RecordHistory(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}
		var resp domain.ExpenditureResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.EstimatedTDEE != 2296 || resp.Date != day.Format(domain.DateLayout) {
			t.Errorf("unexpected snapshot: %+v", resp)
		}
	})

	listTests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"no filter", "", http.StatusOK},
		{"range and limit", "?from=2024-03-01&to=2024-03-31&limit=10", http.StatusOK},
		{"to before from", "?from=2024-03-31&to=2024-03-01", http.StatusUnprocessableEntity},
		{"limit too large", "?limit=500", http.StatusUnprocessableEntity},
		{"bad cursor", "?cursor=not-a-cursor", http.StatusUnprocessableEntity},
	}

	for _, tt := range listTests {
		t.Run("list "+tt.name, func(t *testing.T) {
			gotFilter = domain.ListFilter{}
			req := newRequest(http.MethodGet, "/users/"+userID.String()+"/energy/history"+tt.query, "", params)
			rec := httptest.NewRecorder()

			handler.ListHistory(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.name == "range and limit" && (gotFilter.Limit != 10 || gotFilter.From == nil || gotFilter.To == nil) {
				t.Errorf("filter not parsed: %+v", gotFilter)
			}
		})
	}
}
