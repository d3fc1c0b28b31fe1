package domain

import (
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`

	// Biological profile
	Sex            engine.Sex `gorm:"type:varchar(10);not null" json:"sex"`
	Age            int        `gorm:"type:smallint;not null" json:"age"`
	HeightCm       float64    `gorm:"not null" json:"height_cm"`
	WeightKg       float64    `gorm:"not null" json:"weight_kg"`
	BodyFatPercent *float64   `json:"body_fat_percent,omitempty"`

	// Activity profile
	ActivityLevel          engine.ActivityLevel     `gorm:"type:varchar(32);not null" json:"activity_level"`
	ExerciseMinutesPerWeek *float64                 `json:"exercise_minutes_per_week,omitempty"`
	ExerciseIntensity      engine.ExerciseIntensity `gorm:"type:varchar(16)" json:"exercise_intensity,omitempty"`
	StepsPerDay            *int                     `json:"steps_per_day,omitempty"`

	GoalType     engine.GoalType     `gorm:"type:varchar(16);not null;default:'maintenance'" json:"goal_type"`
	CoachingMode engine.CoachingMode `gorm:"type:varchar(16);not null;default:'manual'" json:"coaching_mode"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Biological returns the profile fields used for BMR.
func (u *User) Biological() engine.BiologicalProfile {
	return engine.BiologicalProfile{
		Age:            u.Age,
		Sex:            u.Sex,
		WeightKg:       u.WeightKg,
		HeightCm:       u.HeightCm,
		BodyFatPercent: u.BodyFatPercent,
	}
}

// Activity returns the habitual movement profile.
func (u *User) Activity() engine.ActivityProfile {
	return engine.ActivityProfile{
		Level:                  u.ActivityLevel,
		ExerciseMinutesPerWeek: u.ExerciseMinutesPerWeek,
		ExerciseIntensity:      u.ExerciseIntensity,
		StepsPerDay:            u.StepsPerDay,
	}
}

// Location returns the user's home timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user.
// @Description Request payload for creating a user with a body and activity profile.
type CreateUserRequest struct {
	// IANA timezone used to resolve "today"
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	// Biological sex used to select the BMR equation
	Sex engine.Sex `json:"sex" validate:"required,oneof=male female" example:"male" enums:"male,female"`
	// Age in years
	Age int `json:"age" validate:"required,min=13,max=120" example:"30"`
	// Height in centimetres
	HeightCm float64 `json:"height_cm" validate:"required,gt=0,lt=300" example:"180"`
	// Current body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lt=700" example:"80"`
	// Optional body fat percentage; enables Katch-McArdle
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" validate:"omitempty,gt=0,lt=75" example:"18"`
	// Habitual activity level
	ActivityLevel engine.ActivityLevel `json:"activity_level" validate:"required,oneof=sedentary lightly_active moderately_active very_active extra_active" example:"lightly_active"`
	// Structured exercise minutes per week
	ExerciseMinutesPerWeek *float64 `json:"exercise_minutes_per_week,omitempty" validate:"omitempty,gte=0,lte=10080" example:"180"`
	// Intensity of structured exercise
	ExerciseIntensity engine.ExerciseIntensity `json:"exercise_intensity,omitempty" validate:"omitempty,oneof=low moderate high" example:"moderate"`
	// Average daily step count
	StepsPerDay *int `json:"steps_per_day,omitempty" validate:"omitempty,gte=0,lte=200000" example:"8000"`
	// Body composition goal
	GoalType engine.GoalType `json:"goal_type" validate:"required,oneof=cut gain maintenance recomp" example:"cut"`
	// What happens to weekly adjustments
	CoachingMode engine.CoachingMode `json:"coaching_mode" validate:"required,oneof=coached collaborative manual" example:"collaborative"`
}

// UpdateProfileRequest is a partial profile update. Omitted fields are kept.
// @Description Partial update of the body, activity and coaching profile.
type UpdateProfileRequest struct {
	Timezone               *string                   `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
	Age                    *int                      `json:"age,omitempty" validate:"omitempty,min=13,max=120" example:"31"`
	HeightCm               *float64                  `json:"height_cm,omitempty" validate:"omitempty,gt=0,lt=300" example:"180"`
	WeightKg               *float64                  `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lt=700" example:"78.5"`
	BodyFatPercent         *float64                  `json:"body_fat_percent,omitempty" validate:"omitempty,gt=0,lt=75" example:"17"`
	ActivityLevel          *engine.ActivityLevel     `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary lightly_active moderately_active very_active extra_active" example:"moderately_active"`
	ExerciseMinutesPerWeek *float64                  `json:"exercise_minutes_per_week,omitempty" validate:"omitempty,gte=0,lte=10080" example:"240"`
	ExerciseIntensity      *engine.ExerciseIntensity `json:"exercise_intensity,omitempty" validate:"omitempty,oneof=low moderate high" example:"high"`
	StepsPerDay            *int                      `json:"steps_per_day,omitempty" validate:"omitempty,gte=0,lte=200000" example:"10000"`
	GoalType               *engine.GoalType          `json:"goal_type,omitempty" validate:"omitempty,oneof=cut gain maintenance recomp" example:"maintenance"`
	CoachingMode           *engine.CoachingMode      `json:"coaching_mode,omitempty" validate:"omitempty,oneof=coached collaborative manual" example:"coached"`
}

// Apply copies every non-nil field onto u.
func (r *UpdateProfileRequest) Apply(u *User) {
	if r.Timezone != nil {
		u.Timezone = *r.Timezone
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	if r.HeightCm != nil {
		u.HeightCm = *r.HeightCm
	}
	if r.WeightKg != nil {
		u.WeightKg = *r.WeightKg
	}
	if r.BodyFatPercent != nil {
		u.BodyFatPercent = r.BodyFatPercent
	}
	if r.ActivityLevel != nil {
		u.ActivityLevel = *r.ActivityLevel
	}
	if r.ExerciseMinutesPerWeek != nil {
		u.ExerciseMinutesPerWeek = r.ExerciseMinutesPerWeek
	}
	if r.ExerciseIntensity != nil {
		u.ExerciseIntensity = *r.ExerciseIntensity
	}
	if r.StepsPerDay != nil {
		u.StepsPerDay = r.StepsPerDay
	}
	if r.GoalType != nil {
		u.GoalType = *r.GoalType
	}
	if r.CoachingMode != nil {
		u.CoachingMode = *r.CoachingMode
	}
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID                     uuid.UUID                `json:"id"`
	Timezone               string                   `json:"timezone"`
	Sex                    engine.Sex               `json:"sex"`
	Age                    int                      `json:"age"`
	HeightCm               float64                  `json:"height_cm"`
	WeightKg               float64                  `json:"weight_kg"`
	BodyFatPercent         *float64                 `json:"body_fat_percent,omitempty"`
	ActivityLevel          engine.ActivityLevel     `json:"activity_level"`
	ExerciseMinutesPerWeek *float64                 `json:"exercise_minutes_per_week,omitempty"`
	ExerciseIntensity      engine.ExerciseIntensity `json:"exercise_intensity,omitempty"`
	StepsPerDay            *int                     `json:"steps_per_day,omitempty"`
	GoalType               engine.GoalType          `json:"goal_type"`
	CoachingMode           engine.CoachingMode      `json:"coaching_mode"`
	CreatedAt              time.Time                `json:"created_at"`
	UpdatedAt              time.Time                `json:"updated_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                     u.ID,
		Timezone:               u.Timezone,
		Sex:                    u.Sex,
		Age:                    u.Age,
		HeightCm:               u.HeightCm,
		WeightKg:               u.WeightKg,
		BodyFatPercent:         u.BodyFatPercent,
		ActivityLevel:          u.ActivityLevel,
		ExerciseMinutesPerWeek: u.ExerciseMinutesPerWeek,
		ExerciseIntensity:      u.ExerciseIntensity,
		StepsPerDay:            u.StepsPerDay,
		GoalType:               u.GoalType,
		CoachingMode:           u.CoachingMode,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}
