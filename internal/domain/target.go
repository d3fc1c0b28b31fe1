package domain

import (
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

// TargetSource records who set a macro target.
type TargetSource string

const (
	TargetSourceManual        TargetSource = "manual"
	TargetSourceCoached       TargetSource = "coached"
	TargetSourceCollaborative TargetSource = "collaborative"
)

// MacroTarget is a calorie and macro goal effective from a calendar day until
// the next target.
type MacroTarget struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_macro_targets_user_effective" json:"user_id"`
	EffectiveDate time.Time    `gorm:"type:date;not null;index:idx_macro_targets_user_effective,sort:desc" json:"effective_date"`
	Calories      int          `gorm:"not null" json:"calories"`
	ProteinG      float64      `gorm:"not null" json:"protein_g"`
	CarbsG        float64      `gorm:"not null" json:"carbs_g"`
	FatG          float64      `gorm:"not null" json:"fat_g"`
	Source        TargetSource `gorm:"type:varchar(16);not null" json:"source"`
	CheckInID     *uuid.UUID   `gorm:"type:uuid" json:"check_in_id,omitempty"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MacroTarget) TableName() string {
	return "macro_targets"
}

func (t *MacroTarget) Macros() engine.Macros {
	return engine.Macros{
		Calories: t.Calories,
		ProteinG: t.ProteinG,
		CarbsG:   t.CarbsG,
		FatG:     t.FatG,
	}
}

// CreateTargetRequest is the request body for setting a manual target.
// @Description Manual calorie and macro target.
type CreateTargetRequest struct {
	// First day the target applies (YYYY-MM-DD)
	EffectiveDate string  `json:"effective_date" validate:"required,datetime=2006-01-02" example:"2024-03-11"`
	Calories      int     `json:"calories" validate:"required,gt=0,lt=20000" example:"2200"`
	ProteinG      float64 `json:"protein_g" validate:"gte=0,lt=2000" example:"160"`
	CarbsG        float64 `json:"carbs_g" validate:"gte=0,lt=3000" example:"230"`
	FatG          float64 `json:"fat_g" validate:"gte=0,lt=2000" example:"70"`
}

// MacroTargetResponse is the response body for target endpoints.
// @Description Calorie and macro target.
type MacroTargetResponse struct {
	ID            uuid.UUID    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	EffectiveDate string       `json:"effective_date" example:"2024-03-11"`
	Calories      int          `json:"calories" example:"2200"`
	ProteinG      float64      `json:"protein_g" example:"160"`
	CarbsG        float64      `json:"carbs_g" example:"230"`
	FatG          float64      `json:"fat_g" example:"70"`
	Source        TargetSource `json:"source" example:"manual"`
	CheckInID     *uuid.UUID   `json:"check_in_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at" example:"2024-03-10T20:00:00Z"`
}

func (t *MacroTarget) ToResponse() MacroTargetResponse {
	return MacroTargetResponse{
		ID:            t.ID,
		EffectiveDate: t.EffectiveDate.Format(DateLayout),
		Calories:      t.Calories,
		ProteinG:      t.ProteinG,
		CarbsG:        t.CarbsG,
		FatG:          t.FatG,
		Source:        t.Source,
		CheckInID:     t.CheckInID,
		CreatedAt:     t.CreatedAt,
	}
}
