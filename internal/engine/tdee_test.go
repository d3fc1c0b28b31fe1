package engine

import (
	"errors"
	"reflect"
	"testing"
)

func scenarioInput() EstimateInput {
	start := date(2024, 1, 1)
	return EstimateInput{
		Weights:    dailyWeights(start, 70.0, 70.0, 69.8, 69.9, 69.6, 69.7, 69.4),
		Nutrition:  dailyNutrition(start, 7, 2200),
		Biological: BiologicalProfile{Age: 32, Sex: SexFemale, WeightKg: 70, HeightCm: 170},
		Activity:   ActivityProfile{Level: ActivityLightlyActive},
	}
}

func TestEstimateTDEE_DecliningWeightScenario(t *testing.T) {
	est, err := EstimateTDEE(scenarioInput(), DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.Methodology != MethodologyAdherenceNeutral {
		t.Fatalf("Methodology = %s, want adherence_neutral", est.Methodology)
	}
	if est.CurrentTDEE <= 2200 {
		t.Errorf("CurrentTDEE = %d, want above intake of 2200", est.CurrentTDEE)
	}
	if est.CurrentTDEE < 2295 || est.CurrentTDEE > 2300 {
		t.Errorf("CurrentTDEE = %d, want 2295..2300", est.CurrentTDEE)
	}
	if est.DailyChangeRate >= 0 {
		t.Errorf("DailyChangeRate = %v, want negative", est.DailyChangeRate)
	}
	if est.AverageIntake != 2200 {
		t.Errorf("AverageIntake = %v, want 2200", est.AverageIntake)
	}
	if est.PairedDays != 7 {
		t.Errorf("PairedDays = %d, want 7", est.PairedDays)
	}
	if !est.AsOf.Equal(date(2024, 1, 7)) {
		t.Errorf("AsOf = %v, want 2024-01-07", est.AsOf)
	}
}

func TestEstimateTDEE_ComponentsReconcileToEstimate(t *testing.T) {
	p := DefaultPolicy()
	in := scenarioInput()
	est, err := EstimateTDEE(in, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := est.EnergyComponents
	if c == nil {
		t.Fatal("expected energy components")
	}
	if c.Total != est.CurrentTDEE || c.BMR+c.TEF+c.EAT+c.NEAT != est.CurrentTDEE {
		t.Errorf("components %+v do not sum to %d", c, est.CurrentTDEE)
	}

	if est.Intake.LoggedDays == 0 || round2(est.Intake.AverageCalories) != est.AverageIntake {
		t.Errorf("Intake = %+v, want the window behind AverageIntake %v", est.Intake, est.AverageIntake)
	}

	actual := est.CurrentTDEE
	again, err := DecomposeEnergy(in.Biological, in.Activity, est.Intake, &actual, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Total != est.CurrentTDEE {
		t.Errorf("round trip Total = %d, want %d", again.Total, est.CurrentTDEE)
	}
}

func TestEstimateTDEE_InvariantUnderReordering(t *testing.T) {
	p := DefaultPolicy()
	in := scenarioInput()

	shuffled := in
	shuffled.Weights = make([]WeightEntry, len(in.Weights))
	shuffled.Nutrition = make([]NutritionDay, len(in.Nutrition))
	for i := range in.Weights {
		shuffled.Weights[i] = in.Weights[len(in.Weights)-1-i]
	}
	for i, j := range []int{3, 6, 0, 5, 1, 4, 2} {
		shuffled.Nutrition[i] = in.Nutrition[j]
	}

	a, err := EstimateTDEE(in, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EstimateTDEE(shuffled, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("estimates differ:\n%+v\n%+v", a, b)
	}
}

func TestEstimateTDEE_Idempotent(t *testing.T) {
	p := DefaultPolicy()
	a, _ := EstimateTDEE(scenarioInput(), p)
	b, _ := EstimateTDEE(scenarioInput(), p)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated calls returned different estimates")
	}
}

func TestEstimateTDEE_InitialMethodology(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name      string
		in        EstimateInput
		wantFlags []string
	}{
		{
			name: "no data at all",
			in: EstimateInput{
				Biological: testProfile(),
				Activity:   testActivity(),
				AsOf:       date(2024, 5, 1),
			},
			wantFlags: []string{FlagNoWeights, FlagRateUndefined, FlagNoIntakeLogged, FlagInsufficientPaired, FlagNoTarget},
		},
		{
			name: "single weigh-in",
			in: EstimateInput{
				Weights:    dailyWeights(date(2024, 5, 1), 80),
				Nutrition:  dailyNutrition(date(2024, 5, 1), 1, 2500),
				Biological: testProfile(),
				Activity:   testActivity(),
			},
			wantFlags: []string{FlagRateUndefined, FlagInsufficientPaired},
		},
		{
			name: "three paired days",
			in: EstimateInput{
				Weights:    dailyWeights(date(2024, 5, 1), 80, 79.8, 79.9),
				Nutrition:  dailyNutrition(date(2024, 5, 1), 3, 2500),
				Biological: testProfile(),
				Activity:   testActivity(),
			},
			wantFlags: []string{FlagInsufficientPaired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := EstimateTDEE(tt.in, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if est.Methodology != MethodologyInitial {
				t.Errorf("Methodology = %s, want initial", est.Methodology)
			}
			if est.ConfidencePercent > p.InitialConfidenceCap {
				t.Errorf("ConfidencePercent = %v, want <= %v", est.ConfidencePercent, p.InitialConfidenceCap)
			}
			if est.ConfidenceLevel != LevelLow {
				t.Errorf("ConfidenceLevel = %s, want low", est.ConfidenceLevel)
			}
			if est.CurrentTDEE <= 0 {
				t.Errorf("CurrentTDEE = %d, want profile estimate", est.CurrentTDEE)
			}
			if c := est.EnergyComponents; c == nil || c.Total != est.CurrentTDEE || c.Reconciled {
				t.Errorf("components %+v, want unreconciled profile estimate of %d", c, est.CurrentTDEE)
			}
			for _, f := range tt.wantFlags {
				if !hasFlag(est.Flags, f) {
					t.Errorf("missing flag %s in %v", f, est.Flags)
				}
			}
		})
	}
}

func TestEstimateTDEE_AdherenceDoesNotAffectEstimate(t *testing.T) {
	p := DefaultPolicy()
	in := scenarioInput()

	withoutTarget, _ := EstimateTDEE(in, p)

	in.Targets = &Macros{Calories: 2200, ProteinG: 140, CarbsG: 220, FatG: 70}
	onTarget, _ := EstimateTDEE(in, p)

	in.Targets = &Macros{Calories: 1600, ProteinG: 140, CarbsG: 150, FatG: 50}
	offTarget, _ := EstimateTDEE(in, p)

	if onTarget.AdherenceScorePercent != 100 {
		t.Errorf("AdherenceScorePercent = %v, want 100", onTarget.AdherenceScorePercent)
	}
	if offTarget.AdherenceScorePercent != 0 {
		t.Errorf("AdherenceScorePercent = %v, want 0", offTarget.AdherenceScorePercent)
	}
	if withoutTarget.CurrentTDEE != onTarget.CurrentTDEE || onTarget.CurrentTDEE != offTarget.CurrentTDEE {
		t.Errorf("target changed the estimate: %d %d %d", withoutTarget.CurrentTDEE, onTarget.CurrentTDEE, offTarget.CurrentTDEE)
	}
}

func TestEstimateTDEE_IgnoresEntriesAfterAsOf(t *testing.T) {
	p := DefaultPolicy()
	in := scenarioInput()
	base, _ := EstimateTDEE(in, p)

	in.AsOf = date(2024, 1, 7)
	in.Weights = append(in.Weights, WeightEntry{Date: date(2024, 1, 9), WeightKg: 75})
	in.Nutrition = append(in.Nutrition, NutritionDay{Date: date(2024, 1, 9), Calories: 4000})
	later, _ := EstimateTDEE(in, p)

	if base.CurrentTDEE != later.CurrentTDEE {
		t.Errorf("CurrentTDEE = %d, want %d", later.CurrentTDEE, base.CurrentTDEE)
	}
}

func TestEstimateTDEE_ConfidenceGrowsWithHistory(t *testing.T) {
	p := DefaultPolicy()
	kgs := make([]float64, 28)
	for i := range kgs {
		kgs[i] = 85 - 0.05*float64(i)
	}
	start := date(2024, 2, 1)
	est, err := EstimateTDEE(EstimateInput{
		Weights:    dailyWeights(start, kgs...),
		Nutrition:  dailyNutrition(start, 28, 2300),
		Biological: testProfile(),
		Activity:   testActivity(),
	}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short, _ := EstimateTDEE(scenarioInput(), p)
	if est.ConfidencePercent <= short.ConfidencePercent {
		t.Errorf("28-day confidence %v not above 7-day confidence %v", est.ConfidencePercent, short.ConfidencePercent)
	}
	if est.ConfidenceLevel != LevelHigh {
		t.Errorf("ConfidenceLevel = %s (%v), want high", est.ConfidenceLevel, est.ConfidencePercent)
	}
	if est.WeightTrend != TrendLosing {
		t.Errorf("WeightTrend = %s, want losing", est.WeightTrend)
	}
	if est.CurrentTDEE <= 2300 {
		t.Errorf("CurrentTDEE = %d, want above intake while losing", est.CurrentTDEE)
	}
}

func TestEstimateTDEE_RejectsMalformedSeries(t *testing.T) {
	in := scenarioInput()
	in.Weights[2].WeightKg = -3

	_, err := EstimateTDEE(in, DefaultPolicy())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Errors[0].Field != "weights[2].weight_kg" {
		t.Errorf("Field = %s", verr.Errors[0].Field)
	}
}
