package engine

import (
	"math"
	"time"
)

// Flags attached to a TDEEEstimate.
const (
	FlagNoWeights          = "no_weights"
	FlagRateUndefined      = "rate_undefined"
	FlagNoIntakeLogged     = "no_intake_logged"
	FlagInsufficientPaired = "insufficient_paired_days"
	FlagNoTarget           = "no_target"
	FlagTDEEClamped        = "tdee_clamped"
)

// EstimateInput is everything EstimateTDEE needs. Series may arrive in any
// order and may contain entries after AsOf; those are ignored.
type EstimateInput struct {
	Weights    []WeightEntry
	Nutrition  []NutritionDay
	Targets    *Macros
	Biological BiologicalProfile
	Activity   ActivityProfile
	// AsOf is the evaluation day. Zero means the latest date in either series.
	AsOf time.Time
}

// EstimateTDEE infers expenditure from observed weight change and logged intake.
//
// With at least MinPairedDays days carrying both a weigh-in and a food log in
// the lookback window, and a defined trend rate, the estimate is
//
//	TDEE = average_logged_intake - daily_trend_rate * KcalPerKg
//
// where the intake average covers only logged days inside the rate window.
// Otherwise the profile-based decomposition total is used and the
// methodology is "initial". Adherence to Targets is reported but never
// enters the estimate.
func EstimateTDEE(in EstimateInput, p Policy) (TDEEEstimate, error) {
	if err := ValidateBiological(in.Biological); err != nil {
		return TDEEEstimate{}, err
	}
	if err := ValidateActivity(in.Activity); err != nil {
		return TDEEEstimate{}, err
	}
	if err := ValidateWeights(in.Weights); err != nil {
		return TDEEEstimate{}, err
	}
	if err := ValidateNutrition(in.Nutrition); err != nil {
		return TDEEEstimate{}, err
	}
	if in.Targets != nil {
		if err := ValidateMacros(*in.Targets); err != nil {
			return TDEEEstimate{}, err
		}
	}

	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = latestDate(in.Weights, in.Nutrition)
	}
	asOf = day(asOf)
	lookbackStart := asOf.AddDate(0, 0, -(p.EstimatorLookbackDays - 1))

	var weights []WeightEntry
	for _, w := range in.Weights {
		if !day(w.Date).After(asOf) {
			weights = append(weights, w)
		}
	}
	trend := SmoothWeights(weights, p)
	logged := loggedDays(in.Nutrition)
	quality := scoreWindow(in.Nutrition, weights, p.EstimatorLookbackDays, asOf, p)

	est := TDEEEstimate{
		AsOf:                    asOf,
		TrendWeight:             round2(trend.TrendWeight),
		DailyChangeRate:         round4(trend.DailyChangeRate),
		WeeklyChangeRatePercent: round2(trend.WeeklyChangeRatePercent),
		WeightTrend:             trend.Direction,
		RateDefined:             trend.RateDefined,
		DataQuality:             quality.Level,
		Quality:                 quality,
		Flags:                   []string{},
	}
	if len(trend.Points) == 0 {
		est.Flags = append(est.Flags, FlagNoWeights)
	}
	if !trend.RateDefined {
		est.Flags = append(est.Flags, FlagRateUndefined)
	}

	est.PairedDays = pairedDays(trend.Points, logged, lookbackStart, asOf)
	lookbackIntake := averageIntake(logged, lookbackStart, asOf)
	if lookbackIntake.LoggedDays == 0 {
		est.Flags = append(est.Flags, FlagNoIntakeLogged)
	}

	var rateIntake IntakeSummary
	if trend.RateDefined {
		last := trend.Points[len(trend.Points)-1].Date
		rateIntake = averageIntake(logged, last.AddDate(0, 0, -trend.RateWindowDays), last)
	}

	var tdee float64
	intake := lookbackIntake
	if est.PairedDays >= p.MinPairedDays && trend.RateDefined && rateIntake.LoggedDays > 0 {
		est.Methodology = MethodologyAdherenceNeutral
		intake = rateIntake
		tdee = rateIntake.AverageCalories - trend.DailyChangeRate*p.KcalPerKg
	} else {
		if est.PairedDays < p.MinPairedDays {
			est.Flags = append(est.Flags, FlagInsufficientPaired)
		}
		est.Methodology = MethodologyInitial
		tdee = float64(decompose(in.Biological, in.Activity, lookbackIntake, p).Total)
	}
	est.Intake = intake
	est.AverageIntake = round2(intake.AverageCalories)

	est.CurrentTDEE = roundKcal(tdee)
	if tdee < 0 {
		est.Flags = append(est.Flags, FlagTDEEClamped)
	}

	conf := 100 * (p.QualityConfidenceMix*quality.OverallQuality + (1-p.QualityConfidenceMix)*signalStrength(trend, est.PairedDays, p))
	if est.Methodology == MethodologyInitial {
		conf = math.Min(conf, p.InitialConfidenceCap)
	}
	est.ConfidencePercent = round2(math.Min(math.Max(conf, 0), 100))
	est.ConfidenceLevel = levelFor(est.ConfidencePercent)

	if in.Targets == nil {
		est.Flags = append(est.Flags, FlagNoTarget)
	} else {
		est.AdherenceScorePercent = round2(adherence(logged, *in.Targets, lookbackStart, asOf, p))
	}

	comps := decompose(in.Biological, in.Activity, intake, p)
	if est.Methodology == MethodologyAdherenceNeutral {
		comps = ReconcileComponents(comps, est.CurrentTDEE, p)
	}
	est.EnergyComponents = &comps
	return est, nil
}

// signalStrength is coverage of paired days times the share of trend steps
// inside the rate window that move in the direction of the overall rate.
func signalStrength(trend TrendResult, paired int, p Policy) float64 {
	if !trend.RateDefined {
		return 0
	}
	coverage := math.Min(float64(paired)/float64(p.SignalCoverageDays), 1)
	if trend.Direction == TrendMaintaining {
		return coverage
	}

	last := trend.Points[len(trend.Points)-1].Date
	start := last.AddDate(0, 0, -trend.RateWindowDays)
	var steps, agreeing int
	for i := 1; i < len(trend.Points); i++ {
		if trend.Points[i-1].Date.Before(start) {
			continue
		}
		steps++
		if d := trend.Points[i].TrendKg - trend.Points[i-1].TrendKg; d*trend.DailyChangeRate > 0 {
			agreeing++
		}
	}
	if steps == 0 {
		return 0
	}
	return coverage * float64(agreeing) / float64(steps)
}

func pairedDays(points []TrendPoint, logged map[time.Time]NutritionDay, start, end time.Time) int {
	n := 0
	for _, pt := range points {
		if pt.Date.Before(start) || pt.Date.After(end) {
			continue
		}
		if _, ok := logged[pt.Date]; ok {
			n++
		}
	}
	return n
}

// averageIntake averages logged days in [start, end]. Unlogged days are skipped.
func averageIntake(logged map[time.Time]NutritionDay, start, end time.Time) IntakeSummary {
	var s IntakeSummary
	for d := day(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		n, ok := logged[d]
		if !ok {
			continue
		}
		s.LoggedDays++
		s.AverageCalories += n.Calories
		s.ProteinG += n.ProteinG
		s.CarbsG += n.CarbsG
		s.FatG += n.FatG
	}
	if s.LoggedDays == 0 {
		return IntakeSummary{}
	}
	k := float64(s.LoggedDays)
	s.AverageCalories /= k
	s.ProteinG /= k
	s.CarbsG /= k
	s.FatG /= k
	return s
}

// adherence is the percentage of logged days within AdherenceTolerance of the
// calorie target.
func adherence(logged map[time.Time]NutritionDay, target Macros, start, end time.Time, p Policy) float64 {
	var days, within int
	for d, n := range logged {
		if d.Before(start) || d.After(end) {
			continue
		}
		days++
		if math.Abs(n.Calories-float64(target.Calories)) <= p.AdherenceTolerance*float64(target.Calories) {
			within++
		}
	}
	if days == 0 {
		return 0
	}
	return float64(within) / float64(days) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
