package service

import (
	"context"
	"testing"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.CreateUserRequest
		wantErr bool
	}{
		{
			name:    "valid timezone",
			req:     validCreateUserRequest("Europe/Budapest"),
			wantErr: false,
		},
		{
			name:    "UTC timezone",
			req:     validCreateUserRequest("UTC"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockUserRepository()
			svc := NewUserService(repo)

			user, err := svc.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if user == nil {
					t.Error("Create() returned nil user")
					return
				}
				if user.Timezone != tt.req.Timezone {
					t.Errorf("Create() timezone = %v, want %v", user.Timezone, tt.req.Timezone)
				}
				if user.ID == uuid.Nil {
					t.Error("Create() user ID should not be nil")
				}
				if user.Sex != tt.req.Sex || user.Age != tt.req.Age || user.WeightKg != tt.req.WeightKg {
					t.Errorf("Create() biological profile = %+v", user.Biological())
				}
				if user.CoachingMode != tt.req.CoachingMode {
					t.Errorf("Create() coaching mode = %v, want %v", user.CoachingMode, tt.req.CoachingMode)
				}
			}
		})
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	// Create a user first
	req := validCreateUserRequest("America/New_York")
	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	tests := []struct {
		name    string
		id      uuid.UUID
		wantErr error
	}{
		{
			name:    "existing user",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "non-existing user",
			id:      uuid.New(),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.GetByID(context.Background(), tt.id)
			if err != tt.wantErr {
				t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr == nil && user == nil {
				t.Error("GetByID() returned nil user for existing ID")
			}
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := NewMockUserRepository()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), validCreateUserRequest("UTC"))
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	mode := engine.ModeCoached
	weight := 77.5
	updated, err := svc.UpdateProfile(context.Background(), created.ID, &domain.UpdateProfileRequest{
		WeightKg:     &weight,
		CoachingMode: &mode,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.WeightKg != 77.5 {
		t.Errorf("UpdateProfile() weight = %v, want 77.5", updated.WeightKg)
	}
	if updated.CoachingMode != engine.ModeCoached {
		t.Errorf("UpdateProfile() coaching mode = %v, want coached", updated.CoachingMode)
	}
	if updated.Age != 30 {
		t.Errorf("UpdateProfile() should keep omitted fields, age = %v", updated.Age)
	}

	if _, err := svc.UpdateProfile(context.Background(), uuid.New(), &domain.UpdateProfileRequest{}); err != domain.ErrNotFound {
		t.Errorf("UpdateProfile() unknown user error = %v, want ErrNotFound", err)
	}
}

func validCreateUserRequest(tz string) *domain.CreateUserRequest {
	return &domain.CreateUserRequest{
		Timezone:      tz,
		Sex:           engine.SexFemale,
		Age:           30,
		HeightCm:      168,
		WeightKg:      64,
		ActivityLevel: engine.ActivityLightlyActive,
		GoalType:      engine.GoalMaintenance,
		CoachingMode:  engine.ModeCollaborative,
	}
}
