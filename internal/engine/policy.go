package engine

import (
	"fmt"
	"math"
)

// AlgorithmVersion tags persisted history rows produced by this engine.
const AlgorithmVersion = "adaptive-v1"

// Policy holds every tunable constant of the engine. DefaultPolicy returns the
// values the service ships with; a policy file may override any of them.
type Policy struct {
	// Trend smoothing
	SmoothingAlpha        float64 `mapstructure:"smoothing_alpha" json:"smoothing_alpha"`
	MaxRateLookbackDays   int     `mapstructure:"max_rate_lookback_days" json:"max_rate_lookback_days"`
	TrendThresholdPercent float64 `mapstructure:"trend_threshold_percent" json:"trend_threshold_percent"`

	// Energy balance
	KcalPerKg             float64 `mapstructure:"kcal_per_kg" json:"kcal_per_kg"`
	MinPairedDays         int     `mapstructure:"min_paired_days" json:"min_paired_days"`
	EstimatorLookbackDays int     `mapstructure:"estimator_lookback_days" json:"estimator_lookback_days"`
	SignalCoverageDays    int     `mapstructure:"signal_coverage_days" json:"signal_coverage_days"`
	QualityConfidenceMix  float64 `mapstructure:"quality_confidence_mix" json:"quality_confidence_mix"`
	InitialConfidenceCap  float64 `mapstructure:"initial_confidence_cap" json:"initial_confidence_cap"`
	AdherenceTolerance    float64 `mapstructure:"adherence_tolerance" json:"adherence_tolerance"`

	// Data quality
	DensityWeight              float64 `mapstructure:"density_weight" json:"density_weight"`
	WeighingWeight             float64 `mapstructure:"weighing_weight" json:"weighing_weight"`
	StabilityWeight            float64 `mapstructure:"stability_weight" json:"stability_weight"`
	StabilityReferenceVariance float64 `mapstructure:"stability_reference_variance" json:"stability_reference_variance"`

	// Component decomposition
	METLow                    float64 `mapstructure:"met_low" json:"met_low"`
	METModerate               float64 `mapstructure:"met_moderate" json:"met_moderate"`
	METHigh                   float64 `mapstructure:"met_high" json:"met_high"`
	NEATSedentary             float64 `mapstructure:"neat_sedentary" json:"neat_sedentary"`
	NEATLightlyActive         float64 `mapstructure:"neat_lightly_active" json:"neat_lightly_active"`
	NEATModeratelyActive      float64 `mapstructure:"neat_moderately_active" json:"neat_moderately_active"`
	NEATVeryActive            float64 `mapstructure:"neat_very_active" json:"neat_very_active"`
	NEATExtraActive           float64 `mapstructure:"neat_extra_active" json:"neat_extra_active"`
	KcalPerStep               float64 `mapstructure:"kcal_per_step" json:"kcal_per_step"`
	ComponentBaseConfidence   float64 `mapstructure:"component_base_confidence" json:"component_base_confidence"`
	BodyFatConfidenceBonus    float64 `mapstructure:"body_fat_confidence_bonus" json:"body_fat_confidence_bonus"`
	ExerciseConfidenceBonus   float64 `mapstructure:"exercise_confidence_bonus" json:"exercise_confidence_bonus"`
	StepsConfidenceBonus      float64 `mapstructure:"steps_confidence_bonus" json:"steps_confidence_bonus"`
	ActualTDEEConfidenceBonus float64 `mapstructure:"actual_tdee_confidence_bonus" json:"actual_tdee_confidence_bonus"`

	// Macro adjustment
	CutRatePercent       float64 `mapstructure:"cut_rate_percent" json:"cut_rate_percent"`
	GainRatePercent      float64 `mapstructure:"gain_rate_percent" json:"gain_rate_percent"`
	ToleranceBandPercent float64 `mapstructure:"tolerance_band_percent" json:"tolerance_band_percent"`
	MaxStepPercent       float64 `mapstructure:"max_step_percent" json:"max_step_percent"`
	SubjectiveNudgeKcal  int     `mapstructure:"subjective_nudge_kcal" json:"subjective_nudge_kcal"`
	AmplifyNudgeKcal     int     `mapstructure:"amplify_nudge_kcal" json:"amplify_nudge_kcal"`
	MaxNudgeKcal         int     `mapstructure:"max_nudge_kcal" json:"max_nudge_kcal"`
	MinCalories          int     `mapstructure:"min_calories" json:"min_calories"`
	ProteinFloorGPerKg   float64 `mapstructure:"protein_floor_g_per_kg" json:"protein_floor_g_per_kg"`
	FatFloorGPerKg       float64 `mapstructure:"fat_floor_g_per_kg" json:"fat_floor_g_per_kg"`
	MinWeekWeighIns      int     `mapstructure:"min_week_weigh_ins" json:"min_week_weigh_ins"`
	MinWeekLoggedDays    int     `mapstructure:"min_week_logged_days" json:"min_week_logged_days"`
}

// DefaultPolicy returns the shipped tuning.
//
// SmoothingAlpha of 0.05 per day gives the trend an effective half-life of
// about 13.5 days, longer than a week on purpose: the TDEE estimator wants a
// slow trend that ignores water swings. A week's trend delta is only a
// fraction of the scale change, so weekly check-ins measure their change from
// the week's own weigh-ins (WeekSummary.WeightChangeKg) instead.
// Quality weights sum to 1.
func DefaultPolicy() Policy {
	return Policy{
		SmoothingAlpha:        0.05,
		MaxRateLookbackDays:   14,
		TrendThresholdPercent: 0.15,

		KcalPerKg:             7700,
		MinPairedDays:         7,
		EstimatorLookbackDays: 28,
		SignalCoverageDays:    14,
		QualityConfidenceMix:  0.6,
		InitialConfidenceCap:  50,
		AdherenceTolerance:    0.10,

		DensityWeight:              0.40,
		WeighingWeight:             0.35,
		StabilityWeight:            0.25,
		StabilityReferenceVariance: 0.25,

		METLow:                    3.5,
		METModerate:               5.0,
		METHigh:                   8.0,
		NEATSedentary:             0.15,
		NEATLightlyActive:         0.25,
		NEATModeratelyActive:      0.35,
		NEATVeryActive:            0.45,
		NEATExtraActive:           0.55,
		KcalPerStep:               0.04,
		ComponentBaseConfidence:   0.5,
		BodyFatConfidenceBonus:    0.1,
		ExerciseConfidenceBonus:   0.1,
		StepsConfidenceBonus:      0.1,
		ActualTDEEConfidenceBonus: 0.2,

		CutRatePercent:       -0.5,
		GainRatePercent:      0.25,
		ToleranceBandPercent: 0.2,
		MaxStepPercent:       7.5,
		SubjectiveNudgeKcal:  50,
		AmplifyNudgeKcal:     25,
		MaxNudgeKcal:         100,
		MinCalories:          1200,
		ProteinFloorGPerKg:   1.6,
		FatFloorGPerKg:       0.5,
		MinWeekWeighIns:      3,
		MinWeekLoggedDays:    4,
	}
}

// SmoothingHalfLifeDays is the number of days after which an observation
// carries half of its original weight in the trend.
func (p Policy) SmoothingHalfLifeDays() float64 {
	return math.Log(0.5) / math.Log(1-p.SmoothingAlpha)
}

// Validate checks that the policy is internally consistent.
func (p Policy) Validate() error {
	if p.SmoothingAlpha <= 0 || p.SmoothingAlpha >= 1 {
		return fmt.Errorf("smoothing_alpha must be in (0, 1), got %v", p.SmoothingAlpha)
	}
	if p.MaxRateLookbackDays < 1 {
		return fmt.Errorf("max_rate_lookback_days must be >= 1")
	}
	if p.KcalPerKg <= 0 {
		return fmt.Errorf("kcal_per_kg must be > 0")
	}
	if p.MinPairedDays < 1 || p.EstimatorLookbackDays < p.MinPairedDays {
		return fmt.Errorf("estimator_lookback_days must be >= min_paired_days >= 1")
	}
	if p.SignalCoverageDays < 1 {
		return fmt.Errorf("signal_coverage_days must be >= 1")
	}
	if p.QualityConfidenceMix < 0 || p.QualityConfidenceMix > 1 {
		return fmt.Errorf("quality_confidence_mix must be in [0, 1]")
	}
	if p.DensityWeight < 0 || p.WeighingWeight < 0 || p.StabilityWeight < 0 {
		return fmt.Errorf("quality weights must be >= 0")
	}
	if sum := p.DensityWeight + p.WeighingWeight + p.StabilityWeight; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("quality weights must sum to 1, got %v", sum)
	}
	if p.StabilityReferenceVariance <= 0 {
		return fmt.Errorf("stability_reference_variance must be > 0")
	}
	if p.MaxStepPercent <= 0 || p.MaxStepPercent > 25 {
		return fmt.Errorf("max_step_percent must be in (0, 25]")
	}
	if p.ToleranceBandPercent < 0 {
		return fmt.Errorf("tolerance_band_percent must be >= 0")
	}
	if p.MaxNudgeKcal < 0 || p.SubjectiveNudgeKcal < 0 || p.AmplifyNudgeKcal < 0 {
		return fmt.Errorf("nudge sizes must be >= 0")
	}
	if p.ProteinFloorGPerKg < 0 || p.FatFloorGPerKg < 0 || p.MinCalories < 0 {
		return fmt.Errorf("floors must be >= 0")
	}
	return nil
}

func (p Policy) metFor(intensity ExerciseIntensity) float64 {
	switch intensity {
	case IntensityLow:
		return p.METLow
	case IntensityHigh:
		return p.METHigh
	default:
		return p.METModerate
	}
}

func (p Policy) neatMultiplier(level ActivityLevel) float64 {
	switch level {
	case ActivityLightlyActive:
		return p.NEATLightlyActive
	case ActivityModeratelyActive:
		return p.NEATModeratelyActive
	case ActivityVeryActive:
		return p.NEATVeryActive
	case ActivityExtraActive:
		return p.NEATExtraActive
	default:
		return p.NEATSedentary
	}
}
