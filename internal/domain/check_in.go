package domain

import (
	"encoding/json"
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdjustmentState tracks what happened to a check-in's adjustment.
type AdjustmentState string

const (
	// AdjustmentNone means no adjustment was computed (manual coaching).
	AdjustmentNone AdjustmentState = "none"
	// AdjustmentPending is a proposal waiting for the user's confirmation.
	AdjustmentPending  AdjustmentState = "pending"
	AdjustmentApplied  AdjustmentState = "applied"
	AdjustmentRejected AdjustmentState = "rejected"
	// AdjustmentUnchanged means the engine kept the current target.
	AdjustmentUnchanged AdjustmentState = "unchanged"
	// AdjustmentInsufficient means the week had too little data.
	AdjustmentInsufficient AdjustmentState = "insufficient_data"
)

// WeeklyCheckIn is one user's weekly review with its aggregated week and the
// adjustment it produced.
type WeeklyCheckIn struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_ins_user_week" json:"user_id"`
	WeekStartDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_check_ins_user_week,sort:desc" json:"week_start_date"`

	// Self-reported
	EnergyLevel         int    `gorm:"type:smallint;not null" json:"energy_level"`
	HungerLevel         int    `gorm:"type:smallint;not null" json:"hunger_level"`
	TrainingPerformance int    `gorm:"type:smallint;not null" json:"training_performance"`
	Notes               string `gorm:"type:text" json:"notes,omitempty"`

	// Week aggregates
	AverageWeightKg  float64 `json:"average_weight_kg"`
	AverageCalories  float64 `json:"average_calories"`
	AverageProteinG  float64 `json:"average_protein_g"`
	AverageCarbsG    float64 `json:"average_carbs_g"`
	AverageFatG      float64 `json:"average_fat_g"`
	AdherencePercent float64 `json:"adherence_percent"`
	DaysWeighed      int     `gorm:"type:smallint" json:"days_weighed"`
	DaysLogged       int     `gorm:"type:smallint" json:"days_logged"`
	// WeightDeltaKg is the week's measured change, TrendDeltaKg the smoothed one.
	WeightDeltaKg float64 `json:"weight_delta_kg"`
	TrendDeltaKg  float64 `json:"trend_delta_kg"`

	CoachingMode    engine.CoachingMode `gorm:"type:varchar(16);not null" json:"coaching_mode"`
	AdjustmentState AdjustmentState     `gorm:"type:varchar(24);not null;default:'none'" json:"adjustment_state"`
	// Adjustment is the full engine result, kept for audit.
	Adjustment datatypes.JSON `gorm:"type:jsonb" json:"adjustment,omitempty"`
	Flags      datatypes.JSON `gorm:"type:jsonb" json:"flags,omitempty"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (WeeklyCheckIn) TableName() string {
	return "weekly_check_ins"
}

// ApplySummary copies the engine's week aggregates onto the row.
func (c *WeeklyCheckIn) ApplySummary(s engine.WeekSummary) {
	c.AverageWeightKg = s.AverageWeightKg
	c.AverageCalories = s.AverageIntake.AverageCalories
	c.AverageProteinG = s.AverageIntake.ProteinG
	c.AverageCarbsG = s.AverageIntake.CarbsG
	c.AverageFatG = s.AverageIntake.FatG
	c.AdherencePercent = s.AdherencePercent
	c.DaysWeighed = s.DaysWeighed
	c.DaysLogged = s.DaysLogged
	c.WeightDeltaKg = s.WeightChangeKg
	c.TrendDeltaKg = s.TrendDeltaKg
}

// SetAdjustment stores the engine result and its flags as JSON.
func (c *WeeklyCheckIn) SetAdjustment(res engine.AdjustmentResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	flags := res.Flags
	if flags == nil {
		flags = []string{}
	}
	rawFlags, err := json.Marshal(flags)
	if err != nil {
		return err
	}
	c.Adjustment = datatypes.JSON(raw)
	c.Flags = datatypes.JSON(rawFlags)
	return nil
}

// DecodeAdjustment returns the stored engine result, or nil when none was computed.
func (c *WeeklyCheckIn) DecodeAdjustment() (*engine.AdjustmentResult, error) {
	if len(c.Adjustment) == 0 {
		return nil, nil
	}
	var res engine.AdjustmentResult
	if err := json.Unmarshal(c.Adjustment, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateCheckInRequest is the request body for a weekly check-in.
// @Description Weekly check-in with self-reported ratings (1 = very low, 5 = very high).
type CreateCheckInRequest struct {
	// First day of the reviewed week (YYYY-MM-DD)
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02" example:"2024-03-04"`
	// Energy level 1-5
	EnergyLevel int `json:"energy_level" validate:"required,min=1,max=5" example:"3" minimum:"1" maximum:"5"`
	// Hunger level 1-5
	HungerLevel int `json:"hunger_level" validate:"required,min=1,max=5" example:"3" minimum:"1" maximum:"5"`
	// Training performance 1-5
	TrainingPerformance int `json:"training_performance" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Free-form notes
	Notes string `json:"notes,omitempty" validate:"omitempty,max=1000" example:"Travelled midweek"`
}

// CheckInResponse is the response body for check-in endpoints.
// @Description Weekly check-in with aggregates and adjustment outcome.
type CheckInResponse struct {
	ID                  uuid.UUID                `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	WeekStart           string                   `json:"week_start" example:"2024-03-04"`
	EnergyLevel         int                      `json:"energy_level" example:"3"`
	HungerLevel         int                      `json:"hunger_level" example:"3"`
	TrainingPerformance int                      `json:"training_performance" example:"4"`
	Notes               string                   `json:"notes,omitempty"`
	AverageWeightKg     float64                  `json:"average_weight_kg" example:"80.1"`
	AverageCalories     float64                  `json:"average_calories" example:"2080"`
	AdherencePercent    float64                  `json:"adherence_percent" example:"85.7"`
	DaysWeighed         int                      `json:"days_weighed" example:"6"`
	DaysLogged          int                      `json:"days_logged" example:"7"`
	WeightDeltaKg       float64                  `json:"weight_delta_kg" example:"-0.42"`
	TrendDeltaKg        float64                  `json:"trend_delta_kg" example:"-0.18"`
	CoachingMode        engine.CoachingMode      `json:"coaching_mode" example:"collaborative"`
	AdjustmentState     AdjustmentState          `json:"adjustment_state" example:"pending"`
	Adjustment          *engine.AdjustmentResult `json:"adjustment,omitempty"`
	ResolvedAt          *time.Time               `json:"resolved_at,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
}

func (c *WeeklyCheckIn) ToResponse() CheckInResponse {
	resp := CheckInResponse{
		ID:                  c.ID,
		WeekStart:           c.WeekStartDate.Format(DateLayout),
		EnergyLevel:         c.EnergyLevel,
		HungerLevel:         c.HungerLevel,
		TrainingPerformance: c.TrainingPerformance,
		Notes:               c.Notes,
		AverageWeightKg:     c.AverageWeightKg,
		AverageCalories:     c.AverageCalories,
		AdherencePercent:    c.AdherencePercent,
		DaysWeighed:         c.DaysWeighed,
		DaysLogged:          c.DaysLogged,
		WeightDeltaKg:       c.WeightDeltaKg,
		TrendDeltaKg:        c.TrendDeltaKg,
		CoachingMode:        c.CoachingMode,
		AdjustmentState:     c.AdjustmentState,
		ResolvedAt:          c.ResolvedAt,
		CreatedAt:           c.CreatedAt,
	}
	// A malformed stored document is shown as absent rather than failing the read.
	if adj, err := c.DecodeAdjustment(); err == nil {
		resp.Adjustment = adj
	}
	return resp
}

// CheckInListResponse is the response body for listing check-ins.
// @Description Paginated list of check-ins, newest week first.
type CheckInListResponse struct {
	Data       []CheckInResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}
