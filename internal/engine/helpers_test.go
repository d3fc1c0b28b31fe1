package engine

import (
	"math"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyWeights returns one weigh-in per day starting at start.
func dailyWeights(start time.Time, kgs ...float64) []WeightEntry {
	out := make([]WeightEntry, len(kgs))
	for i, kg := range kgs {
		out[i] = WeightEntry{Date: start.AddDate(0, 0, i), WeightKg: kg}
	}
	return out
}

// dailyNutrition returns n consecutive logged days at the same calories.
func dailyNutrition(start time.Time, n int, calories float64) []NutritionDay {
	out := make([]NutritionDay, n)
	for i := range out {
		out[i] = NutritionDay{Date: start.AddDate(0, 0, i), Calories: calories}
	}
	return out
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func testProfile() BiologicalProfile {
	return BiologicalProfile{Age: 30, Sex: SexMale, WeightKg: 80, HeightCm: 180}
}

func testActivity() ActivityProfile {
	return ActivityProfile{Level: ActivitySedentary}
}
