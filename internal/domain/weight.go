package domain

import (
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

// WeightEntry is one weigh-in per user per calendar day.
type WeightEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_weight_entries_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_weight_entries_user_date,sort:desc" json:"date"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WeightEntry) TableName() string {
	return "weight_entries"
}

// ToEngine converts the row to the engine's value type.
func (w WeightEntry) ToEngine() engine.WeightEntry {
	return engine.WeightEntry{Date: w.Date, WeightKg: w.WeightKg}
}

// WeightsToEngine converts a slice of rows.
func WeightsToEngine(rows []WeightEntry) []engine.WeightEntry {
	out := make([]engine.WeightEntry, len(rows))
	for i, r := range rows {
		out[i] = r.ToEngine()
	}
	return out
}

// UpsertWeightRequest is the request body for recording a weigh-in.
// @Description A weigh-in for one calendar day. A second weigh-in on the same day replaces the first.
type UpsertWeightRequest struct {
	// Calendar day (YYYY-MM-DD)
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-10"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0,lt=700" example:"80.4"`
}

// WeightEntryResponse is the response body for weight endpoints.
// @Description Stored weigh-in.
type WeightEntryResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date      string    `json:"date" example:"2024-03-10"`
	WeightKg  float64   `json:"weight_kg" example:"80.4"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-03-10T07:05:00Z"`
}

func (w *WeightEntry) ToResponse() WeightEntryResponse {
	return WeightEntryResponse{
		ID:        w.ID,
		Date:      w.Date.Format(DateLayout),
		WeightKg:  w.WeightKg,
		UpdatedAt: w.UpdatedAt,
	}
}

// WeightListResponse is the response body for listing weigh-ins.
// @Description Paginated list of weigh-ins, newest first.
type WeightListResponse struct {
	Data       []WeightEntryResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}
