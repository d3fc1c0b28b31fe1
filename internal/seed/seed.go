package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/blaisecz/energy-tracker/internal/config"
	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	seededDays = 60

	kcalPerKg = 7700.0
)

// profile describes a sample user and the energy balance their history follows.
type profile struct {
	user domain.User

	trueTDEE      float64
	meanIntake    float64
	weekendExtra  float64
	skipLogRate   float64
	skipWeighRate float64
	scaleNoiseKg  float64
}

func profiles() []profile {
	return []profile{
		{
			user: domain.User{
				ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam",
				Sex: engine.SexMale, Age: 34, HeightCm: 180, WeightKg: 84,
				ActivityLevel: engine.ActivityModeratelyActive, GoalType: engine.GoalCut, CoachingMode: engine.ModeCoached,
			},
			trueTDEE: 2650, meanIntake: 2150, skipLogRate: 0.05, skipWeighRate: 0.15, scaleNoiseKg: 0.35,
		},
		{
			user: domain.User{
				ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York",
				Sex: engine.SexFemale, Age: 29, HeightCm: 165, WeightKg: 63,
				ActivityLevel: engine.ActivityLightlyActive, GoalType: engine.GoalMaintenance, CoachingMode: engine.ModeCollaborative,
			},
			trueTDEE: 2050, meanIntake: 1900, weekendExtra: 500, skipLogRate: 0.10, skipWeighRate: 0.25, scaleNoiseKg: 0.4,
		},
		{
			user: domain.User{
				ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo",
				Sex: engine.SexMale, Age: 45, HeightCm: 175, WeightKg: 92,
				ActivityLevel: engine.ActivitySedentary, GoalType: engine.GoalCut, CoachingMode: engine.ModeManual,
			},
			trueTDEE: 2400, meanIntake: 2300, skipLogRate: 0.30, skipWeighRate: 0.50, scaleNoiseKg: 0.5,
		},
		{
			user: domain.User{
				ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney",
				Sex: engine.SexFemale, Age: 38, HeightCm: 170, WeightKg: 58,
				ActivityLevel: engine.ActivityVeryActive, GoalType: engine.GoalGain, CoachingMode: engine.ModeCoached,
			},
			trueTDEE: 2500, meanIntake: 2700, skipLogRate: 0.10, skipWeighRate: 0.25, scaleNoiseKg: 0.3,
		},
	}
}

// Run seeds the database with sample users, weigh-ins, nutrition logs and an
// initial manual target. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)

	for i, p := range profiles() {
		user := p.user
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		rng := rand.New(rand.NewSource(int64(i + 1)))
		weights, nutrition := generateSeries(p, end, seededDays, rng)

		if err := seedUser(db, p, end, weights, nutrition); err != nil {
			return err
		}
		log.Printf("[seed] user %s: %d weigh-ins, %d nutrition logs", user.ID, len(weights), len(nutrition))
	}

	log.Println("Seed completed")
	return nil
}

func seedUser(db *gorm.DB, p profile, end time.Time, weights []domain.WeightEntry, nutrition []domain.NutritionLog) error {
	onDay := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}

	if len(weights) > 0 {
		if err := db.Clauses(onDay).Create(&weights).Error; err != nil {
			return fmt.Errorf("failed to seed weights for %s: %w", p.user.ID, err)
		}
	}
	if len(nutrition) > 0 {
		if err := db.Clauses(onDay).Create(&nutrition).Error; err != nil {
			return fmt.Errorf("failed to seed nutrition for %s: %w", p.user.ID, err)
		}
	}

	start := end.AddDate(0, 0, -(seededDays - 1))
	target := initialTarget(p, start)
	err := db.Where("user_id = ? AND effective_date = ?", p.user.ID, start).FirstOrCreate(&target).Error
	if err != nil {
		return fmt.Errorf("failed to seed target for %s: %w", p.user.ID, err)
	}
	return nil
}

// generateSeries simulates days of history ending at end. Body mass moves by
// the daily energy balance; the scale adds noise on top. Skipped weigh-ins and
// unlogged days leave gaps the way real users do.
func generateSeries(p profile, end time.Time, days int, rng *rand.Rand) ([]domain.WeightEntry, []domain.NutritionLog) {
	weights := make([]domain.WeightEntry, 0, days)
	nutrition := make([]domain.NutritionLog, 0, days)

	mass := p.user.WeightKg
	start := end.AddDate(0, 0, -(days - 1))

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		intake := p.meanIntake + rng.NormFloat64()*150
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			intake += p.weekendExtra
		}
		intake = math.Max(800, intake)

		if rng.Float64() >= p.skipWeighRate {
			weights = append(weights, domain.WeightEntry{
				UserID:   p.user.ID,
				Date:     date,
				WeightKg: round1(mass + rng.NormFloat64()*p.scaleNoiseKg),
			})
		}

		if rng.Float64() >= p.skipLogRate {
			nutrition = append(nutrition, nutritionDay(p.user.ID, date, intake, mass))
		}

		mass += (intake - p.trueTDEE) / kcalPerKg
	}

	return weights, nutrition
}

func nutritionDay(userID uuid.UUID, date time.Time, calories, massKg float64) domain.NutritionLog {
	protein := math.Round(1.8 * massKg)
	fat := math.Round(calories * 0.28 / 9)
	carbs := math.Max(0, math.Round((calories-protein*4-fat*9)/4))

	return domain.NutritionLog{
		UserID:   userID,
		Date:     date,
		Calories: math.Round(calories),
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		FiberG:   math.Round(calories / 1000 * 14),
	}
}

func initialTarget(p profile, effective time.Time) domain.MacroTarget {
	day := nutritionDay(p.user.ID, effective, p.meanIntake, p.user.WeightKg)
	return domain.MacroTarget{
		UserID:        p.user.ID,
		EffectiveDate: effective,
		Calories:      int(day.Calories),
		ProteinG:      day.ProteinG,
		CarbsG:        day.CarbsG,
		FatG:          day.FatG,
		Source:        domain.TargetSourceManual,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
