package domain

import (
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

// NutritionLog is the daily intake total for one user and calendar day.
type NutritionLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_nutrition_logs_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_nutrition_logs_user_date,sort:desc" json:"date"`
	Calories  float64   `gorm:"not null" json:"calories"`
	ProteinG  float64   `gorm:"not null;default:0" json:"protein_g"`
	CarbsG    float64   `gorm:"not null;default:0" json:"carbs_g"`
	FatG      float64   `gorm:"not null;default:0" json:"fat_g"`
	FiberG    float64   `gorm:"not null;default:0" json:"fiber_g"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NutritionLog) TableName() string {
	return "nutrition_logs"
}

func (n NutritionLog) ToEngine() engine.NutritionDay {
	return engine.NutritionDay{
		Date:     n.Date,
		Calories: n.Calories,
		ProteinG: n.ProteinG,
		CarbsG:   n.CarbsG,
		FatG:     n.FatG,
		FiberG:   n.FiberG,
	}
}

// NutritionToEngine converts a slice of rows.
func NutritionToEngine(rows []NutritionLog) []engine.NutritionDay {
	out := make([]engine.NutritionDay, len(rows))
	for i, r := range rows {
		out[i] = r.ToEngine()
	}
	return out
}

// UpsertNutritionRequest is the request body for recording a day's intake.
// @Description Daily intake totals. Zero calories marks the day as not logged.
type UpsertNutritionRequest struct {
	// Calendar day (YYYY-MM-DD)
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-10"`
	// Total kcal for the day
	Calories float64 `json:"calories" validate:"gte=0,lt=30000" example:"2150"`
	ProteinG float64 `json:"protein_g" validate:"gte=0,lt=2000" example:"160"`
	CarbsG   float64 `json:"carbs_g" validate:"gte=0,lt=3000" example:"210"`
	FatG     float64 `json:"fat_g" validate:"gte=0,lt=2000" example:"70"`
	FiberG   float64 `json:"fiber_g" validate:"gte=0,lt=1000" example:"30"`
}

// NutritionLogResponse is the response body for nutrition endpoints.
// @Description Stored daily intake.
type NutritionLogResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date      string    `json:"date" example:"2024-03-10"`
	Calories  float64   `json:"calories" example:"2150"`
	ProteinG  float64   `json:"protein_g" example:"160"`
	CarbsG    float64   `json:"carbs_g" example:"210"`
	FatG      float64   `json:"fat_g" example:"70"`
	FiberG    float64   `json:"fiber_g" example:"30"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-03-10T21:00:00Z"`
}

func (n *NutritionLog) ToResponse() NutritionLogResponse {
	return NutritionLogResponse{
		ID:        n.ID,
		Date:      n.Date.Format(DateLayout),
		Calories:  n.Calories,
		ProteinG:  n.ProteinG,
		CarbsG:    n.CarbsG,
		FatG:      n.FatG,
		FiberG:    n.FiberG,
		UpdatedAt: n.UpdatedAt,
	}
}

// NutritionListResponse is the response body for listing nutrition logs.
// @Description Paginated list of daily intake, newest first.
type NutritionListResponse struct {
	Data       []NutritionLogResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}
