package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestTargetHandler_Create(t *testing.T) {
	userID := uuid.New()
	params := map[string]string{"userId": userID.String()}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"effective_date": "2024-03-11", "calories": 2200, "protein_g": 160, "carbs_g": 230, "fat_g": 70}`, http.StatusCreated},
		{"missing calories", `{"effective_date": "2024-03-11"}`, http.StatusUnprocessableEntity},
		{"negative protein", `{"effective_date": "2024-03-11", "calories": 2200, "protein_g": -5}`, http.StatusUnprocessableEntity},
		{"invalid JSON", `[`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTargetHandler(&MockTargetService{})

			req := newRequest(http.MethodPost, "/users/"+userID.String()+"/targets", tt.body, params)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var resp domain.MacroTargetResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Calories != 2200 || resp.EffectiveDate != "2024-03-11" || resp.Source != domain.TargetSourceManual {
				t.Errorf("unexpected target: %+v", resp)
			}
		})
	}
}

func TestTargetHandler_Current(t *testing.T) {
	userID := uuid.New()
	params := map[string]string{"userId": userID.String()}
	effective := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock := &MockTargetService{
		currentFunc: func(ctx context.Context, id uuid.UUID, date *time.Time) (*domain.MacroTarget, error) {
			if date != nil && date.Before(effective) {
				return nil, domain.ErrNotFound
			}
			return &domain.MacroTarget{ID: uuid.New(), EffectiveDate: effective, Calories: 2400, Source: domain.TargetSourceCoached}, nil
		},
	}

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"today", "", http.StatusOK},
		{"after effective date", "?as_of=2024-03-10", http.StatusOK},
		{"before any target", "?as_of=2024-02-01", http.StatusNotFound},
		{"malformed as_of", "?as_of=2024-3-1", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodGet, "/users/"+userID.String()+"/targets/current"+tt.query, "", params)
			rec := httptest.NewRecorder()

			NewTargetHandler(mock).Current(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
