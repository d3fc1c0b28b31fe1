package engine

import (
	"fmt"
	"math"
	"time"
)

// MaxWindowDays bounds any scoring or averaging window.
const MaxWindowDays = 365

const (
	weekendDropThreshold     = 0.30
	consistentLoggingDensity = 0.85
	frequentWeighing         = 0.70
	sparseWeighing           = 0.30
	unstableBelow            = 0.50
	maxGapDays               = 7
	clusterMinWeighIns       = 4

	densityRecommendBelow  = 0.70
	weighingRecommendBelow = 0.50
)

// ScoreDataQuality scores the windowDays calendar days ending at asOf.
// A zero asOf means the latest date present in either series.
//
// Stability is 1/(1+msr/StabilityReferenceVariance) where msr is the mean
// squared residual of the window's weigh-ins around their trend line.
// With fewer than two weigh-ins in the window it is undefined and scored 0.
func ScoreDataQuality(nutrition []NutritionDay, weights []WeightEntry, windowDays int, asOf time.Time, p Policy) (DataQualityReport, error) {
	if windowDays < 1 || windowDays > MaxWindowDays {
		return DataQualityReport{}, newValidationError("window_days", fmt.Sprintf("must be between 1 and %d", MaxWindowDays))
	}
	if err := ValidateNutrition(nutrition); err != nil {
		return DataQualityReport{}, err
	}
	if err := ValidateWeights(weights); err != nil {
		return DataQualityReport{}, err
	}
	if asOf.IsZero() {
		asOf = latestDate(weights, nutrition)
	}
	return scoreWindow(nutrition, weights, windowDays, day(asOf), p), nil
}

func scoreWindow(nutrition []NutritionDay, weights []WeightEntry, windowDays int, asOf time.Time, p Policy) DataQualityReport {
	start := asOf.AddDate(0, 0, -(windowDays - 1))
	inWindow := func(d time.Time) bool {
		d = day(d)
		return !d.Before(start) && !d.After(asOf)
	}

	logged := loggedDays(nutrition)
	var windowLogged []time.Time
	for d := range logged {
		if inWindow(d) {
			windowLogged = append(windowLogged, d)
		}
	}

	var windowWeights []WeightEntry
	for _, w := range normalizeWeights(weights) {
		if inWindow(w.Date) {
			windowWeights = append(windowWeights, w)
		}
	}

	r := DataQualityReport{
		WindowDays:        windowDays,
		LoggingDensity:    float64(len(windowLogged)) / float64(windowDays),
		WeighingFrequency: float64(len(windowWeights)) / float64(windowDays),
		Patterns:          []Pattern{},
		Recommendations:   []string{},
	}
	r.DataStability, r.StabilityDefined = stability(windowWeights, p)
	r.OverallQuality = p.DensityWeight*r.LoggingDensity + p.WeighingWeight*r.WeighingFrequency + p.StabilityWeight*r.DataStability
	r.OverallQuality = math.Min(math.Max(r.OverallQuality, 0), 1)
	r.Level = levelFor(r.OverallQuality * 100)

	weekendDrop := false
	if windowDays >= 7 {
		weekdayRate, weekendRate := weekdayWeekendRates(logged, start, asOf)
		if weekdayRate-weekendRate >= weekendDropThreshold {
			weekendDrop = true
			r.Patterns = append(r.Patterns, Pattern{Description: "Weekend logging drop-off", Impact: ImpactNegative})
		}
	}
	if r.LoggingDensity >= consistentLoggingDensity {
		r.Patterns = append(r.Patterns, Pattern{Description: "Consistent daily food logging", Impact: ImpactPositive})
	}
	if gap := longestGap(logged, start, asOf); gap > maxGapDays {
		r.Patterns = append(r.Patterns, Pattern{Description: fmt.Sprintf("Food logging gap of %d days", gap), Impact: ImpactNegative})
	}
	if r.StabilityDefined && r.DataStability < unstableBelow {
		r.Patterns = append(r.Patterns, Pattern{Description: "High variance on weigh-in days", Impact: ImpactNegative})
	}
	switch {
	case r.WeighingFrequency >= frequentWeighing:
		r.Patterns = append(r.Patterns, Pattern{Description: "Frequent weigh-ins", Impact: ImpactPositive})
	case r.WeighingFrequency < sparseWeighing:
		r.Patterns = append(r.Patterns, Pattern{Description: "Sparse weigh-ins", Impact: ImpactNegative})
	}
	if wd, ok := clusteredWeekday(windowWeights); ok {
		r.Patterns = append(r.Patterns, Pattern{Description: "Weigh-ins cluster on " + wd.String() + "s", Impact: ImpactNeutral})
	}

	if r.LoggingDensity < densityRecommendBelow {
		r.Recommendations = append(r.Recommendations, "Log food every day, including partial days")
	}
	if weekendDrop {
		r.Recommendations = append(r.Recommendations, "Keep logging through the weekend")
	}
	if r.WeighingFrequency < weighingRecommendBelow {
		r.Recommendations = append(r.Recommendations, "Log weight more consistently")
	}
	switch {
	case !r.StabilityDefined:
		r.Recommendations = append(r.Recommendations, "Record at least two weigh-ins to measure stability")
	case r.DataStability < unstableBelow:
		r.Recommendations = append(r.Recommendations, "Weigh in at the same time each morning")
	}
	if len(r.Recommendations) == 0 {
		r.Recommendations = append(r.Recommendations, "Keep up the current logging routine")
	}
	return r
}

func stability(ws []WeightEntry, p Policy) (float64, bool) {
	if len(ws) < 2 {
		return 0, false
	}
	// Detrend with a least-squares line over the window. Residuals against
	// the lagging exponential trend would count steady loss as noise.
	_, residuals, _ := leastSquares(ws)
	var sumSq float64
	for _, r := range residuals {
		sumSq += r * r
	}
	msr := sumSq / float64(len(ws))
	return 1 / (1 + msr/p.StabilityReferenceVariance), true
}

// leastSquares fits weight against day offset. It returns the slope in kg
// per day and each entry's residual; ok is false when ws covers fewer than
// two distinct days, in which case the slope is 0 and residuals are taken
// against the mean.
func leastSquares(ws []WeightEntry) (slope float64, residuals []float64, ok bool) {
	if len(ws) == 0 {
		return 0, nil, false
	}
	n := float64(len(ws))
	var mx, my float64
	xs := make([]float64, len(ws))
	for i, w := range ws {
		xs[i] = float64(daysBetween(ws[0].Date, w.Date))
		mx += xs[i]
		my += w.WeightKg
	}
	mx /= n
	my /= n
	var sxx, sxy float64
	for i, w := range ws {
		sxx += (xs[i] - mx) * (xs[i] - mx)
		sxy += (xs[i] - mx) * (w.WeightKg - my)
	}
	if sxx > 0 {
		slope = sxy / sxx
		ok = true
	}
	residuals = make([]float64, len(ws))
	for i, w := range ws {
		residuals[i] = w.WeightKg - (my + slope*(xs[i]-mx))
	}
	return slope, residuals, ok
}

// loggedDays returns the set of days with a non-zero calorie total.
func loggedDays(ns []NutritionDay) map[time.Time]NutritionDay {
	out := make(map[time.Time]NutritionDay, len(ns))
	for _, n := range ns {
		if n.Calories <= 0 {
			continue
		}
		n.Date = day(n.Date)
		out[n.Date] = n
	}
	return out
}

func weekdayWeekendRates(logged map[time.Time]NutritionDay, start, end time.Time) (float64, float64) {
	var weekdays, weekends, weekdayLogged, weekendLogged int
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, ok := logged[d]
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekends++
			if ok {
				weekendLogged++
			}
			continue
		}
		weekdays++
		if ok {
			weekdayLogged++
		}
	}
	if weekdays == 0 || weekends == 0 {
		return 0, 0
	}
	return float64(weekdayLogged) / float64(weekdays), float64(weekendLogged) / float64(weekends)
}

func longestGap(logged map[time.Time]NutritionDay, start, end time.Time) int {
	longest, run := 0, 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := logged[d]; ok {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func clusteredWeekday(ws []WeightEntry) (time.Weekday, bool) {
	if len(ws) < clusterMinWeighIns {
		return 0, false
	}
	first := ws[0].Date.Weekday()
	for _, w := range ws[1:] {
		if w.Date.Weekday() != first {
			return 0, false
		}
	}
	return first, true
}

func latestDate(ws []WeightEntry, ns []NutritionDay) time.Time {
	var latest time.Time
	for _, w := range ws {
		if d := day(w.Date); d.After(latest) {
			latest = d
		}
	}
	for _, n := range ns {
		if d := day(n.Date); d.After(latest) {
			latest = d
		}
	}
	return latest
}

// levelFor buckets a 0-100 score.
func levelFor(score float64) Level {
	switch {
	case score >= 80:
		return LevelHigh
	case score >= 60:
		return LevelMedium
	default:
		return LevelLow
	}
}
