package engine

import "math"

// GoalType is the user's body-composition goal.
type GoalType string

const (
	GoalCut         GoalType = "cut"
	GoalGain        GoalType = "gain"
	GoalMaintenance GoalType = "maintenance"
	GoalRecomp      GoalType = "recomp"
)

// AdjustmentStatus tags an AdjustmentResult.
type AdjustmentStatus string

const (
	StatusAdjusted  AdjustmentStatus = "adjusted"
	StatusUnchanged AdjustmentStatus = "unchanged"
	// StatusInsufficientData means no adjustment was computed.
	StatusInsufficientData AdjustmentStatus = "insufficient_data"
)

// Flags attached to an AdjustmentResult.
const (
	FlagInsufficientWeighIns   = "insufficient_weigh_ins"
	FlagInsufficientLoggedDays = "insufficient_logged_days"
	FlagStepCapped             = "step_capped"
	FlagNudgeDampened          = "nudge_dampened"
	FlagCalorieFloor           = "calorie_floor_applied"
	FlagProteinFloor           = "protein_floor_applied"
	FlagFatFloor               = "fat_floor_applied"
	FlagCaloriesRaisedToMacros = "calories_raised_to_macros"
)

const defaultFatShare = 0.30

// AdjustmentInput is one weekly check-in as seen by the adjustment policy.
type AdjustmentInput struct {
	Current             Macros   `json:"current"`
	WeeklyWeightDeltaKg float64  `json:"weekly_weight_delta_kg" validate:"gt=-10,lt=10"`
	Goal                GoalType `json:"goal" validate:"required,oneof=cut gain maintenance recomp"`
	EnergyLevel         int      `json:"energy_level" validate:"min=1,max=5"`
	HungerLevel         int      `json:"hunger_level" validate:"min=1,max=5"`
	TrainingPerformance int      `json:"training_performance" validate:"min=1,max=5"`
	BodyWeightKg        float64  `json:"body_weight_kg" validate:"gt=0,lt=700"`
	EstimatedBMR        int      `json:"estimated_bmr" validate:"gte=0,lt=10000"`
	DaysWeighed         int      `json:"days_weighed" validate:"gte=0,lte=7"`
	DaysLogged          int      `json:"days_logged" validate:"gte=0,lte=7"`
}

// AdjustmentResult is the proposed target. Proposed is nil when Status is
// StatusInsufficientData.
type AdjustmentResult struct {
	Status                 AdjustmentStatus `json:"status"`
	Previous               Macros           `json:"previous"`
	Proposed               *Macros          `json:"proposed,omitempty"`
	CalorieDelta           int              `json:"calorie_delta"`
	PrimaryCorrectionKcal  int              `json:"primary_correction_kcal"`
	SubjectiveNudgeKcal    int              `json:"subjective_nudge_kcal"`
	ExpectedWeeklyChangeKg float64          `json:"expected_weekly_change_kg"`
	ActualWeeklyChangeKg   float64          `json:"actual_weekly_change_kg"`
	Flags                  []string         `json:"flags"`
	Reasons                []string         `json:"reasons"`
}

// ExpectedWeeklyChangePercent is the target rate of change for a goal as a
// percentage of body weight per week.
func (p Policy) ExpectedWeeklyChangePercent(goal GoalType) float64 {
	switch goal {
	case GoalCut:
		return p.CutRatePercent
	case GoalGain:
		return p.GainRatePercent
	default:
		return 0
	}
}

// AdjustMacros proposes next week's target.
//
// The primary correction only fires when the actual weekly change is outside
// ToleranceBandPercent of the expected change; it is the kcal/day implied by
// the deviation, capped at MaxStepPercent of current calories. Subjective
// ratings add bounded nudges that may dampen or slightly amplify the primary
// correction but never reverse it. Protein grams are held and carbs and fat
// absorb the change in their current ratio. Floors are applied last and
// always flagged.
func AdjustMacros(in AdjustmentInput, p Policy) (AdjustmentResult, error) {
	if err := validateStruct(in); err != nil {
		return AdjustmentResult{}, err
	}

	res := AdjustmentResult{
		Previous:             in.Current,
		ActualWeeklyChangeKg: in.WeeklyWeightDeltaKg,
		Flags:                []string{},
		Reasons:              []string{},
	}
	if in.DaysWeighed < p.MinWeekWeighIns {
		res.Flags = append(res.Flags, FlagInsufficientWeighIns)
	}
	if in.DaysLogged < p.MinWeekLoggedDays {
		res.Flags = append(res.Flags, FlagInsufficientLoggedDays)
	}
	if len(res.Flags) > 0 {
		res.Status = StatusInsufficientData
		res.Reasons = append(res.Reasons, "Not enough weigh-ins or food logs this week to adjust targets")
		return res, nil
	}

	expectedPct := p.ExpectedWeeklyChangePercent(in.Goal)
	res.ExpectedWeeklyChangeKg = round4(expectedPct / 100 * in.BodyWeightKg)

	deviationKg := in.WeeklyWeightDeltaKg - expectedPct/100*in.BodyWeightKg
	deviationPct := deviationKg / in.BodyWeightKg * 100
	primary := 0
	if math.Abs(deviationPct) > p.ToleranceBandPercent {
		raw := -deviationKg * p.KcalPerKg / 7
		maxStep := p.MaxStepPercent / 100 * float64(in.Current.Calories)
		if math.Abs(raw) > maxStep {
			raw = math.Copysign(maxStep, raw)
			res.Flags = append(res.Flags, FlagStepCapped)
		}
		primary = int(math.Round(raw))
		if primary > 0 {
			res.Reasons = append(res.Reasons, "Weight is below the goal trajectory, calories increased")
		} else if primary < 0 {
			res.Reasons = append(res.Reasons, "Weight is above the goal trajectory, calories decreased")
		}
	} else {
		res.Reasons = append(res.Reasons, "Weight change is within the tolerance band")
	}

	nudge := subjectiveNudge(in, p)
	if primary != 0 && nudge != 0 && (nudge > 0) != (primary > 0) {
		limit := absInt(primary) / 2
		if absInt(nudge) > limit {
			nudge = sign(nudge) * limit
			res.Flags = append(res.Flags, FlagNudgeDampened)
		}
	}
	switch {
	case nudge > 0:
		res.Reasons = append(res.Reasons, "Low energy, performance or high hunger: smaller deficit")
	case nudge < 0:
		res.Reasons = append(res.Reasons, "Strong energy and performance: slightly larger deficit")
	}
	res.PrimaryCorrectionKcal = primary
	res.SubjectiveNudgeKcal = nudge

	calories := in.Current.Calories + primary + nudge
	if floor := maxInt(in.EstimatedBMR, p.MinCalories); calories < floor {
		calories = floor
		res.Flags = append(res.Flags, FlagCalorieFloor)
	}

	if calories == in.Current.Calories && meetsMacroFloors(in.Current, in.BodyWeightKg, p) {
		unchanged := in.Current
		res.Proposed = &unchanged
		res.Status = StatusUnchanged
		return res, nil
	}

	proposed, macroFlags := splitMacros(in.Current, calories, in.BodyWeightKg, p)
	res.Flags = append(res.Flags, macroFlags...)
	res.Proposed = &proposed
	res.CalorieDelta = proposed.Calories - in.Current.Calories
	res.Status = StatusAdjusted
	return res, nil
}

func meetsMacroFloors(m Macros, bodyWeightKg float64, p Policy) bool {
	return m.ProteinG >= p.ProteinFloorGPerKg*bodyWeightKg && m.FatG >= p.FatFloorGPerKg*bodyWeightKg
}

func subjectiveNudge(in AdjustmentInput, p Policy) int {
	n := 0
	if in.EnergyLevel <= 2 {
		n += p.SubjectiveNudgeKcal
	}
	if in.TrainingPerformance <= 2 {
		n += p.SubjectiveNudgeKcal
	}
	if in.HungerLevel >= 4 {
		n += p.SubjectiveNudgeKcal
	}
	if n == 0 && in.Goal == GoalCut && in.EnergyLevel >= 4 && in.TrainingPerformance >= 4 {
		n -= p.AmplifyNudgeKcal
	}
	if n > p.MaxNudgeKcal {
		n = p.MaxNudgeKcal
	}
	if n < -p.MaxNudgeKcal {
		n = -p.MaxNudgeKcal
	}
	return n
}

// splitMacros holds protein and lets carbs and fat absorb the new calories.
func splitMacros(current Macros, calories int, bodyWeightKg float64, p Policy) (Macros, []string) {
	var flags []string

	protein := current.ProteinG
	if floor := p.ProteinFloorGPerKg * bodyWeightKg; protein < floor {
		protein = floor
		flags = append(flags, FlagProteinFloor)
	}
	protein = math.Round(protein)

	fatShare := defaultFatShare
	if denom := current.CarbsG*4 + current.FatG*9; denom > 0 {
		fatShare = current.FatG * 9 / denom
	}

	remaining := math.Max(float64(calories)-protein*4, 0)
	fat := math.Round(remaining * fatShare / 9)
	if floor := math.Ceil(p.FatFloorGPerKg * bodyWeightKg); fat < floor {
		fat = floor
		flags = append(flags, FlagFatFloor)
	}
	carbs := math.Round((remaining - fat*9) / 4)
	if carbs < 0 {
		carbs = 0
	}

	if minCal := int(math.Ceil(protein*4 + fat*9)); calories < minCal {
		calories = minCal
		flags = append(flags, FlagCaloriesRaisedToMacros)
	}
	return Macros{Calories: calories, ProteinG: protein, CarbsG: carbs, FatG: fat}, flags
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
