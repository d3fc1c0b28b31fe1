// Package engine implements the adaptive energy expenditure model: weight trend
// smoothing, energy component decomposition, adherence-neutral TDEE estimation,
// data quality scoring and the weekly macro adjustment policy.
//
// Every function in this package is pure. Inputs are fully materialized value
// collections; nothing reads the clock, the database or the network.
package engine

import "time"

// Sex selects the BMR equation branch.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel is the self-reported activity tier, ordered from least to most active.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// ExerciseIntensity selects the MET value used for exercise thermogenesis.
type ExerciseIntensity string

const (
	IntensityLow      ExerciseIntensity = "low"
	IntensityModerate ExerciseIntensity = "moderate"
	IntensityHigh     ExerciseIntensity = "high"
)

// WeightTrend classifies the smoothed weekly rate of change.
type WeightTrend string

const (
	TrendGaining     WeightTrend = "gaining"
	TrendLosing      WeightTrend = "losing"
	TrendMaintaining WeightTrend = "maintaining"
)

// Level is a low/medium/high bucket used for confidence and data quality.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Methodology tags how a TDEE estimate was produced.
type Methodology string

const (
	// MethodologyInitial is a profile-based estimate used until enough paired history exists.
	MethodologyInitial Methodology = "initial"
	// MethodologyAdherenceNeutral inverts energy balance from observed weight change.
	MethodologyAdherenceNeutral Methodology = "adherence_neutral"
)

// WeightEntry is one weigh-in. Only the calendar day of Date is significant.
type WeightEntry struct {
	Date     time.Time `json:"date" validate:"required"`
	WeightKg float64   `json:"weight_kg" validate:"gt=0,lt=700"`
}

// NutritionDay is the aggregated intake for one calendar day. A day with zero
// calories is a gap, not a fasting day.
type NutritionDay struct {
	Date     time.Time `json:"date" validate:"required"`
	Calories float64   `json:"calories" validate:"gte=0,lt=30000"`
	ProteinG float64   `json:"protein_g" validate:"gte=0,lt=2000"`
	CarbsG   float64   `json:"carbs_g" validate:"gte=0,lt=3000"`
	FatG     float64   `json:"fat_g" validate:"gte=0,lt=2000"`
	FiberG   float64   `json:"fiber_g" validate:"gte=0,lt=1000"`
}

// BiologicalProfile holds the fields needed to select and evaluate a BMR equation.
type BiologicalProfile struct {
	Age            int      `json:"age" validate:"min=13,max=120"`
	Sex            Sex      `json:"sex" validate:"required,oneof=male female"`
	WeightKg       float64  `json:"weight_kg" validate:"gt=0,lt=700"`
	HeightCm       float64  `json:"height_cm" validate:"gt=0,lt=300"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" validate:"omitempty,gt=0,lt=75"`
}

// ActivityProfile describes habitual movement.
type ActivityProfile struct {
	Level                  ActivityLevel     `json:"activity_level" validate:"required,oneof=sedentary lightly_active moderately_active very_active extra_active"`
	ExerciseMinutesPerWeek *float64          `json:"exercise_minutes_per_week,omitempty" validate:"omitempty,gte=0,lte=10080"`
	ExerciseIntensity      ExerciseIntensity `json:"exercise_intensity,omitempty" validate:"omitempty,oneof=low moderate high"`
	StepsPerDay            *int              `json:"steps_per_day,omitempty" validate:"omitempty,gte=0,lte=200000"`
}

// Macros is a calorie and macronutrient target.
type Macros struct {
	Calories int     `json:"calories" validate:"gt=0,lt=20000"`
	ProteinG float64 `json:"protein_g" validate:"gte=0,lt=2000"`
	CarbsG   float64 `json:"carbs_g" validate:"gte=0,lt=3000"`
	FatG     float64 `json:"fat_g" validate:"gte=0,lt=2000"`
}

// IntakeSummary is average daily intake over the logged days of a window.
type IntakeSummary struct {
	AverageCalories float64 `json:"average_calories" validate:"gte=0,lt=30000"`
	ProteinG        float64 `json:"protein_g" validate:"gte=0"`
	CarbsG          float64 `json:"carbs_g" validate:"gte=0"`
	FatG            float64 `json:"fat_g" validate:"gte=0"`
	LoggedDays      int     `json:"logged_days" validate:"gte=0"`
}

// HasMacroSplit reports whether per-macronutrient averages are known.
func (s IntakeSummary) HasMacroSplit() bool {
	return s.ProteinG+s.CarbsG+s.FatG > 0
}

// EnergyComponents is the decomposition of daily expenditure in kcal.
// Total always equals BMR+TEF+EAT+NEAT.
type EnergyComponents struct {
	BMR        int     `json:"bmr"`
	TEF        int     `json:"tef"`
	EAT        int     `json:"eat"`
	NEAT       int     `json:"neat"`
	Total      int     `json:"total"`
	Confidence float64 `json:"confidence"`
	// BMRFormula is "katch_mcardle" when body fat was supplied, else "mifflin_st_jeor".
	BMRFormula string `json:"bmr_formula"`
	// Reconciled is true when NEAT absorbed the gap to an observed TDEE.
	Reconciled bool `json:"reconciled"`
	// NEATClamped is true when the observed TDEE was below BMR+TEF+EAT and the
	// shortfall had to be taken from the other components.
	NEATClamped bool `json:"neat_clamped,omitempty"`
}

// TDEEEstimate is the output of EstimateTDEE.
type TDEEEstimate struct {
	AsOf                    time.Time   `json:"as_of"`
	CurrentTDEE             int         `json:"current_tdee"`
	ConfidencePercent       float64     `json:"confidence_percent"`
	ConfidenceLevel         Level       `json:"confidence_level"`
	TrendWeight             float64     `json:"trend_weight"`
	DailyChangeRate         float64     `json:"daily_change_rate"`
	WeeklyChangeRatePercent float64     `json:"weekly_change_rate_percent"`
	WeightTrend             WeightTrend `json:"weight_trend"`
	AdherenceScorePercent   float64     `json:"adherence_score_percent"`
	DataQuality             Level       `json:"data_quality"`
	Methodology             Methodology `json:"methodology"`
	AverageIntake           float64     `json:"average_intake"`
	// Intake is the window the estimate and its components were computed from.
	Intake           IntakeSummary     `json:"intake"`
	PairedDays       int               `json:"paired_days"`
	RateDefined      bool              `json:"rate_defined"`
	Flags            []string          `json:"flags,omitempty"`
	EnergyComponents *EnergyComponents `json:"energy_components,omitempty"`
	Quality          DataQualityReport `json:"quality"`
}

// Impact tags a detected logging pattern.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// Pattern is a qualitative observation about how the user logs.
type Pattern struct {
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
}

// DataQualityReport scores a logging window. All scores are in [0,1].
type DataQualityReport struct {
	WindowDays        int       `json:"window_days"`
	OverallQuality    float64   `json:"overall_quality"`
	LoggingDensity    float64   `json:"logging_density"`
	WeighingFrequency float64   `json:"weighing_frequency"`
	DataStability     float64   `json:"data_stability"`
	StabilityDefined  bool      `json:"stability_defined"`
	Level             Level     `json:"level"`
	Patterns          []Pattern `json:"patterns"`
	Recommendations   []string  `json:"recommendations"`
}
