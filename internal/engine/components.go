package engine

import "math"

const (
	bmrFormulaMifflin = "mifflin_st_jeor"
	bmrFormulaKatch   = "katch_mcardle"

	tefProtein      = 0.25
	tefCarbs        = 0.075
	tefFat          = 0.02
	tefFlatFraction = 0.10
)

// DecomposeEnergy estimates BMR, TEF, EAT and NEAT from the profile and intake.
// When actualTDEE is given the result is passed through ReconcileComponents.
func DecomposeEnergy(bio BiologicalProfile, act ActivityProfile, intake IntakeSummary, actualTDEE *int, p Policy) (EnergyComponents, error) {
	if err := ValidateBiological(bio); err != nil {
		return EnergyComponents{}, err
	}
	if err := ValidateActivity(act); err != nil {
		return EnergyComponents{}, err
	}
	if err := validateStruct(intake); err != nil {
		return EnergyComponents{}, err
	}
	if actualTDEE != nil && *actualTDEE < 0 {
		return EnergyComponents{}, newValidationError("actual_tdee", "must be at least 0")
	}

	c := decompose(bio, act, intake, p)
	if actualTDEE != nil {
		c = ReconcileComponents(c, *actualTDEE, p)
	}
	return c, nil
}

func decompose(bio BiologicalProfile, act ActivityProfile, intake IntakeSummary, p Policy) EnergyComponents {
	c := EnergyComponents{Confidence: p.ComponentBaseConfidence}

	bmr, formula := basalMetabolicRate(bio)
	c.BMRFormula = formula
	if formula == bmrFormulaKatch {
		c.Confidence += p.BodyFatConfidenceBonus
	}

	var eat float64
	if act.ExerciseMinutesPerWeek != nil {
		eat = p.metFor(act.ExerciseIntensity) * bio.WeightKg * (*act.ExerciseMinutesPerWeek / 7 / 60)
		c.Confidence += p.ExerciseConfidenceBonus
	}

	neat := bmr * p.neatMultiplier(act.Level)
	if act.StepsPerDay != nil {
		neat = math.Max(neat, float64(*act.StepsPerDay)*p.KcalPerStep)
		c.Confidence += p.StepsConfidenceBonus
	}

	var tef float64
	switch {
	case intake.HasMacroSplit():
		tef = intake.ProteinG*4*tefProtein + intake.CarbsG*4*tefCarbs + intake.FatG*9*tefFat
	case intake.AverageCalories > 0:
		tef = intake.AverageCalories * tefFlatFraction
	default:
		// Nothing logged: TEF is the flat share of the estimated total.
		tef = (bmr + eat + neat) * tefFlatFraction / (1 - tefFlatFraction)
	}

	c.BMR = roundKcal(bmr)
	c.TEF = roundKcal(tef)
	c.EAT = roundKcal(eat)
	c.NEAT = roundKcal(neat)
	c.Total = c.BMR + c.TEF + c.EAT + c.NEAT
	c.Confidence = math.Min(c.Confidence, 1)
	return c
}

// basalMetabolicRate prefers the lean-mass equation whenever body fat is known.
func basalMetabolicRate(bio BiologicalProfile) (float64, string) {
	if bio.BodyFatPercent != nil {
		lean := bio.WeightKg * (1 - *bio.BodyFatPercent/100)
		return 370 + 21.6*lean, bmrFormulaKatch
	}
	base := 10*bio.WeightKg + 6.25*bio.HeightCm - 5*float64(bio.Age)
	if bio.Sex == SexMale {
		return base + 5, bmrFormulaMifflin
	}
	return base - 161, bmrFormulaMifflin
}

// ReconcileComponents forces the breakdown to sum to an observed TDEE.
//
// NEAT absorbs the whole difference. If the observed TDEE is below
// BMR+TEF+EAT, NEAT goes to zero and the remaining shortfall is taken from
// EAT, then TEF, then BMR; NEATClamped is set in that case. The input is
// not modified.
func ReconcileComponents(c EnergyComponents, actualTDEE int, p Policy) EnergyComponents {
	if actualTDEE < 0 {
		actualTDEE = 0
	}
	out := c
	out.Reconciled = true
	out.Confidence = math.Min(c.Confidence+p.ActualTDEEConfidenceBonus, 1)

	neat := actualTDEE - (c.BMR + c.TEF + c.EAT)
	if neat >= 0 {
		out.NEAT = neat
		out.Total = actualTDEE
		return out
	}

	out.NEAT = 0
	out.NEATClamped = true
	shortfall := -neat
	for _, comp := range []*int{&out.EAT, &out.TEF, &out.BMR} {
		take := shortfall
		if take > *comp {
			take = *comp
		}
		*comp -= take
		shortfall -= take
	}
	out.Total = out.BMR + out.TEF + out.EAT + out.NEAT
	return out
}

func roundKcal(v float64) int {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
