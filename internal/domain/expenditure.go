package domain

import (
	"encoding/json"
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExpenditureData is a persisted daily snapshot of the estimate. Rows are for
// display and are never read back into a computation.
type ExpenditureData struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_expenditure_user_date" json:"user_id"`
	Date              time.Time          `gorm:"type:date;not null;uniqueIndex:idx_expenditure_user_date,sort:desc" json:"date"`
	EstimatedTDEE     int                `gorm:"not null" json:"estimated_tdee"`
	ConfidencePercent float64            `gorm:"not null" json:"confidence_percent"`
	ConfidenceLevel   engine.Level       `gorm:"type:varchar(8);not null" json:"confidence_level"`
	Methodology       engine.Methodology `gorm:"type:varchar(24);not null" json:"methodology"`
	WeightKg          float64            `json:"weight_kg"`
	TrendWeightKg     float64            `json:"trend_weight_kg"`
	CaloriesConsumed  float64            `json:"calories_consumed"`
	WeightChange7d    float64            `gorm:"column:weight_change_7d" json:"weight_change_7d"`
	WeightChange14d   float64            `gorm:"column:weight_change_14d" json:"weight_change_14d"`
	Trend             engine.WeightTrend `gorm:"type:varchar(16)" json:"trend"`
	CalorieAverage7d  float64            `gorm:"column:calorie_average_7d" json:"calorie_average_7d"`
	CalorieAverage14d float64            `gorm:"column:calorie_average_14d" json:"calorie_average_14d"`
	AlgorithmVersion  string             `gorm:"type:varchar(32);not null" json:"algorithm_version"`
	Components        datatypes.JSON     `gorm:"type:jsonb" json:"components,omitempty"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ExpenditureData) TableName() string {
	return "expenditure_data"
}

// NewExpenditureData builds a history row from an estimate and its window summary.
func NewExpenditureData(userID uuid.UUID, est engine.TDEEEstimate, sum engine.WindowSummary) (*ExpenditureData, error) {
	row := &ExpenditureData{
		UserID:            userID,
		Date:              est.AsOf,
		EstimatedTDEE:     est.CurrentTDEE,
		ConfidencePercent: est.ConfidencePercent,
		ConfidenceLevel:   est.ConfidenceLevel,
		Methodology:       est.Methodology,
		WeightKg:          sum.WeightKg,
		TrendWeightKg:     sum.TrendWeight,
		CaloriesConsumed:  sum.CaloriesConsumed,
		WeightChange7d:    sum.WeightChange7d,
		WeightChange14d:   sum.WeightChange14d,
		Trend:             sum.Trend,
		CalorieAverage7d:  sum.CalorieAverage7d,
		CalorieAverage14d: sum.CalorieAverage14d,
		AlgorithmVersion:  engine.AlgorithmVersion,
	}
	if est.EnergyComponents != nil {
		raw, err := json.Marshal(est.EnergyComponents)
		if err != nil {
			return nil, err
		}
		row.Components = datatypes.JSON(raw)
	}
	return row, nil
}

// ExpenditureResponse is the response body for history endpoints.
// @Description Persisted expenditure snapshot for one day.
type ExpenditureResponse struct {
	ID                uuid.UUID                `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date              string                   `json:"date" example:"2024-03-10"`
	EstimatedTDEE     int                      `json:"estimated_tdee" example:"2296"`
	ConfidencePercent float64                  `json:"confidence_percent" example:"72.4"`
	ConfidenceLevel   engine.Level             `json:"confidence_level" example:"medium"`
	Methodology       engine.Methodology       `json:"methodology" example:"adherence_neutral"`
	WeightKg          float64                  `json:"weight_kg" example:"79.8"`
	TrendWeightKg     float64                  `json:"trend_weight_kg" example:"80.05"`
	CaloriesConsumed  float64                  `json:"calories_consumed" example:"2150"`
	WeightChange7d    float64                  `json:"weight_change_7d" example:"-0.09"`
	WeightChange14d   float64                  `json:"weight_change_14d" example:"-0.17"`
	Trend             engine.WeightTrend       `json:"trend" example:"maintaining"`
	CalorieAverage7d  float64                  `json:"calorie_average_7d" example:"2180"`
	CalorieAverage14d float64                  `json:"calorie_average_14d" example:"2200"`
	AlgorithmVersion  string                   `json:"algorithm_version" example:"adaptive-v1"`
	Components        *engine.EnergyComponents `json:"components,omitempty"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func (e *ExpenditureData) ToResponse() ExpenditureResponse {
	resp := ExpenditureResponse{
		ID:                e.ID,
		Date:              e.Date.Format(DateLayout),
		EstimatedTDEE:     e.EstimatedTDEE,
		ConfidencePercent: e.ConfidencePercent,
		ConfidenceLevel:   e.ConfidenceLevel,
		Methodology:       e.Methodology,
		WeightKg:          e.WeightKg,
		TrendWeightKg:     e.TrendWeightKg,
		CaloriesConsumed:  e.CaloriesConsumed,
		WeightChange7d:    e.WeightChange7d,
		WeightChange14d:   e.WeightChange14d,
		Trend:             e.Trend,
		CalorieAverage7d:  e.CalorieAverage7d,
		CalorieAverage14d: e.CalorieAverage14d,
		AlgorithmVersion:  e.AlgorithmVersion,
		UpdatedAt:         e.UpdatedAt,
	}
	if len(e.Components) > 0 {
		var c engine.EnergyComponents
		if err := json.Unmarshal(e.Components, &c); err == nil {
			resp.Components = &c
		}
	}
	return resp
}

// ExpenditureListResponse is the response body for listing history rows.
// @Description Paginated expenditure history, newest first.
type ExpenditureListResponse struct {
	Data       []ExpenditureResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}
