package engine

import (
	"math"
	"sort"
	"time"
)

// TrendPoint is one weigh-in with its smoothed value.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weight_kg"`
	TrendKg  float64   `json:"trend_kg"`
}

// TrendResult is the smoothed weight series and its short-term slope.
type TrendResult struct {
	Points                  []TrendPoint `json:"points"`
	TrendWeight             float64      `json:"trend_weight"`
	DailyChangeRate         float64      `json:"daily_change_rate"`
	RateDefined             bool         `json:"rate_defined"`
	RateWindowDays          int          `json:"rate_window_days"`
	WeeklyChangeRatePercent float64      `json:"weekly_change_rate_percent"`
	Direction               WeightTrend  `json:"direction"`
}

// normalizeWeights sorts by day and keeps one entry per day. For duplicate
// days the entry appearing last in the input wins.
func normalizeWeights(ws []WeightEntry) []WeightEntry {
	out := make([]WeightEntry, len(ws))
	for i, w := range ws {
		out[i] = WeightEntry{Date: day(w.Date), WeightKg: w.WeightKg}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	dedup := out[:0]
	for _, w := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Date.Equal(w.Date) {
			dedup[n-1] = w
			continue
		}
		dedup = append(dedup, w)
	}
	return dedup
}

// SmoothWeights runs time-aware exponential smoothing over the series.
//
// The trend is seeded at the first weigh-in. Each later weigh-in moves the
// trend by a = 1-(1-alpha)^gap of the distance to it, where gap is the number
// of days since the previous weigh-in, so a missing day decays the old trend
// exactly as if the trend had been carried forward unchanged.
//
// The daily rate uses the earliest trend point no more than
// MaxRateLookbackDays before the last one. With fewer than two distinct days
// the rate is reported as zero and RateDefined is false.
func SmoothWeights(weights []WeightEntry, p Policy) TrendResult {
	series := normalizeWeights(weights)
	res := TrendResult{Points: make([]TrendPoint, 0, len(series)), Direction: TrendMaintaining}
	if len(series) == 0 {
		return res
	}

	trend := series[0].WeightKg
	res.Points = append(res.Points, TrendPoint{Date: series[0].Date, WeightKg: trend, TrendKg: trend})
	for i := 1; i < len(series); i++ {
		gap := daysBetween(series[i-1].Date, series[i].Date)
		a := 1 - math.Pow(1-p.SmoothingAlpha, float64(gap))
		trend += a * (series[i].WeightKg - trend)
		res.Points = append(res.Points, TrendPoint{Date: series[i].Date, WeightKg: series[i].WeightKg, TrendKg: trend})
	}

	last := res.Points[len(res.Points)-1]
	res.TrendWeight = last.TrendKg

	for _, pt := range res.Points[:len(res.Points)-1] {
		n := daysBetween(pt.Date, last.Date)
		if n > p.MaxRateLookbackDays {
			continue
		}
		res.DailyChangeRate = (last.TrendKg - pt.TrendKg) / float64(n)
		res.RateWindowDays = n
		res.RateDefined = true
		break
	}

	if res.RateDefined && res.TrendWeight > 0 {
		res.WeeklyChangeRatePercent = res.DailyChangeRate * 7 / res.TrendWeight * 100
	}
	res.Direction = classifyTrend(res.WeeklyChangeRatePercent, p)
	return res
}

func classifyTrend(weeklyPercent float64, p Policy) WeightTrend {
	switch {
	case weeklyPercent > p.TrendThresholdPercent:
		return TrendGaining
	case weeklyPercent < -p.TrendThresholdPercent:
		return TrendLosing
	default:
		return TrendMaintaining
	}
}

// trendAt returns the trend value of the last point on or before d.
func trendAt(points []TrendPoint, d time.Time) (float64, bool) {
	d = day(d)
	idx := sort.Search(len(points), func(i int) bool { return points[i].Date.After(d) })
	if idx == 0 {
		return 0, false
	}
	return points[idx-1].TrendKg, true
}

// pointsUntil returns the prefix of points dated on or before d.
func pointsUntil(points []TrendPoint, d time.Time) []TrendPoint {
	d = day(d)
	idx := sort.Search(len(points), func(i int) bool { return points[i].Date.After(d) })
	return points[:idx]
}
