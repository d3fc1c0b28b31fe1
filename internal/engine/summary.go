package engine

import "time"

// WindowSummary is the display snapshot stored with each history row.
type WindowSummary struct {
	AsOf              time.Time   `json:"as_of"`
	WeightKg          float64     `json:"weight_kg"`
	TrendWeight       float64     `json:"trend_weight"`
	WeightChange7d    float64     `json:"weight_change_7d"`
	WeightChange14d   float64     `json:"weight_change_14d"`
	Trend             WeightTrend `json:"trend"`
	CaloriesConsumed  float64     `json:"calories_consumed"`
	CalorieAverage7d  float64     `json:"calorie_average_7d"`
	CalorieAverage14d float64     `json:"calorie_average_14d"`
}

// Summarize computes trend changes and calorie averages ending at asOf.
// A change is zero when the trend has no point that far back.
func Summarize(weights []WeightEntry, nutrition []NutritionDay, asOf time.Time, p Policy) WindowSummary {
	if asOf.IsZero() {
		asOf = latestDate(weights, nutrition)
	}
	asOf = day(asOf)

	var upTo []WeightEntry
	for _, w := range weights {
		if !day(w.Date).After(asOf) {
			upTo = append(upTo, w)
		}
	}
	trend := SmoothWeights(upTo, p)
	s := WindowSummary{AsOf: asOf, Trend: trend.Direction, TrendWeight: round2(trend.TrendWeight)}
	if n := len(trend.Points); n > 0 {
		s.WeightKg = trend.Points[n-1].WeightKg
	}
	if now, ok := trendAt(trend.Points, asOf); ok {
		if then, ok := trendAt(trend.Points, asOf.AddDate(0, 0, -7)); ok {
			s.WeightChange7d = round2(now - then)
		}
		if then, ok := trendAt(trend.Points, asOf.AddDate(0, 0, -14)); ok {
			s.WeightChange14d = round2(now - then)
		}
	}

	logged := loggedDays(nutrition)
	if n, ok := logged[asOf]; ok {
		s.CaloriesConsumed = n.Calories
	}
	s.CalorieAverage7d = round2(averageIntake(logged, asOf.AddDate(0, 0, -6), asOf).AverageCalories)
	s.CalorieAverage14d = round2(averageIntake(logged, asOf.AddDate(0, 0, -13), asOf).AverageCalories)
	return s
}

// WeekSummary aggregates the seven days starting at WeekStart for a check-in.
type WeekSummary struct {
	WeekStart        time.Time     `json:"week_start"`
	WeekEnd          time.Time     `json:"week_end"`
	AverageWeightKg  float64       `json:"average_weight_kg"`
	AverageIntake    IntakeSummary `json:"average_intake"`
	AdherencePercent float64       `json:"adherence_percent"`
	DaysWeighed      int           `json:"days_weighed"`
	DaysLogged       int           `json:"days_logged"`
	// WeightChangeKg is the least-squares slope of the week's own weigh-ins
	// scaled to seven days. Check-in adjustments are measured against it.
	WeightChangeKg      float64 `json:"weight_change_kg"`
	WeightChangeDefined bool    `json:"weight_change_defined"`
	// TrendDeltaKg is the trend at the end of the week minus the trend at the
	// end of the previous week, or at the first weigh-in of the week when
	// there is no earlier history. It lags the scale and is kept for display.
	TrendDeltaKg      float64 `json:"trend_delta_kg"`
	TrendDeltaDefined bool    `json:"trend_delta_defined"`
}

// SummarizeWeek aggregates one check-in week. target may be nil.
func SummarizeWeek(weights []WeightEntry, nutrition []NutritionDay, weekStart time.Time, target *Macros, p Policy) WeekSummary {
	weekStart = day(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)
	s := WeekSummary{WeekStart: weekStart, WeekEnd: weekEnd}

	trend := SmoothWeights(weights, p)
	var sum float64
	var firstInWeek *TrendPoint
	var inWeek []WeightEntry
	for i, pt := range pointsUntil(trend.Points, weekEnd) {
		if pt.Date.Before(weekStart) {
			continue
		}
		if firstInWeek == nil {
			firstInWeek = &trend.Points[i]
		}
		s.DaysWeighed++
		sum += pt.WeightKg
		inWeek = append(inWeek, WeightEntry{Date: pt.Date, WeightKg: pt.WeightKg})
	}
	if s.DaysWeighed > 0 {
		s.AverageWeightKg = round2(sum / float64(s.DaysWeighed))
	}
	if slope, _, ok := leastSquares(inWeek); ok {
		s.WeightChangeKg = round4(slope * 7)
		s.WeightChangeDefined = true
	}

	if end, ok := trendAt(trend.Points, weekEnd); ok && s.DaysWeighed > 0 {
		if prev, ok := trendAt(trend.Points, weekStart.AddDate(0, 0, -1)); ok {
			s.TrendDeltaKg = round4(end - prev)
			s.TrendDeltaDefined = true
		} else if s.DaysWeighed >= 2 {
			s.TrendDeltaKg = round4(end - firstInWeek.TrendKg)
			s.TrendDeltaDefined = true
		}
	}

	logged := loggedDays(nutrition)
	s.AverageIntake = averageIntake(logged, weekStart, weekEnd)
	s.DaysLogged = s.AverageIntake.LoggedDays
	if target != nil {
		s.AdherencePercent = round2(adherence(logged, *target, weekStart, weekEnd, p))
	}
	return s
}

// SummarizeIntake averages the logged days between from and to inclusive.
// Days with zero calories are gaps and do not count.
func SummarizeIntake(nutrition []NutritionDay, from, to time.Time) IntakeSummary {
	return averageIntake(loggedDays(nutrition), day(from), day(to))
}
