package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/google/uuid"
)

type energyFixture struct {
	users        *MockUserRepository
	weights      *MockWeightRepository
	nutrition    *MockNutritionRepository
	targets      *MockTargetRepository
	expenditures *MockExpenditureRepository
	svc          *energyService
}

func newEnergyFixture() *energyFixture {
	f := &energyFixture{
		users:        NewMockUserRepository(),
		weights:      NewMockWeightRepository(),
		nutrition:    NewMockNutritionRepository(),
		targets:      NewMockTargetRepository(),
		expenditures: NewMockExpenditureRepository(),
	}
	f.svc = NewEnergyService(f.users, f.weights, f.nutrition, f.targets, f.expenditures, engine.DefaultPolicy()).(*energyService)
	return f
}

func TestEnergyService_Estimate(t *testing.T) {
	asOf := date(2024, 3, 28)

	tests := []struct {
		name            string
		days            int
		wantMethodology engine.Methodology
		wantMin         int
		wantMax         int
	}{
		{
			name:            "stable weight and intake",
			days:            28,
			wantMethodology: engine.MethodologyAdherenceNeutral,
			wantMin:         2200,
			wantMax:         2200,
		},
		{
			name:            "too few paired days",
			days:            3,
			wantMethodology: engine.MethodologyInitial,
			wantMin:         1800,
			wantMax:         2400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEnergyFixture()
			user := newTestUser(f.users, engine.ModeManual)
			seedDays(f.weights, f.nutrition, user.ID, asOf, tt.days, 80, 2200)

			est, err := f.svc.Estimate(context.Background(), user.ID, &asOf)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if est.Methodology != tt.wantMethodology {
				t.Errorf("Estimate() methodology = %v, want %v", est.Methodology, tt.wantMethodology)
			}
			if est.CurrentTDEE < tt.wantMin || est.CurrentTDEE > tt.wantMax {
				t.Errorf("Estimate() tdee = %d, want in [%d, %d]", est.CurrentTDEE, tt.wantMin, tt.wantMax)
			}
			if !est.AsOf.Equal(asOf) {
				t.Errorf("Estimate() as_of = %v, want %v", est.AsOf, asOf)
			}
		})
	}
}

func TestEnergyService_SnapshotIgnoresTargetsForEstimate(t *testing.T) {
	asOf := date(2024, 3, 28)
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	seedDays(f.weights, f.nutrition, user.ID, asOf, 28, 80, 2200)

	without, err := f.svc.Snapshot(context.Background(), user.ID, &asOf)
	if err != nil {
		t.Fatal(err)
	}
	if without.Target != nil {
		t.Error("expected no target")
	}

	f.targets.Create(context.Background(), &domain.MacroTarget{
		UserID: user.ID, EffectiveDate: date(2024, 3, 1), Calories: 1800, ProteinG: 150, CarbsG: 170, FatG: 60,
	})
	with, err := f.svc.Snapshot(context.Background(), user.ID, &asOf)
	if err != nil {
		t.Fatal(err)
	}
	if with.Target == nil || with.Target.Calories != 1800 {
		t.Fatalf("expected target of 1800 kcal, got %+v", with.Target)
	}
	if with.Estimate.CurrentTDEE != without.Estimate.CurrentTDEE {
		t.Errorf("target changed the estimate: %d vs %d", with.Estimate.CurrentTDEE, without.Estimate.CurrentTDEE)
	}
	if with.Estimate.AdherenceScorePercent >= 100 {
		t.Errorf("expected reduced adherence when eating 2200 against 1800, got %v", with.Estimate.AdherenceScorePercent)
	}
}

func TestEnergyService_SnapshotDefaultsToUserToday(t *testing.T) {
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	user.Timezone = "Pacific/Auckland"
	// 20:00 UTC on the 10th is already the 11th in Auckland
	f.svc.now = func() time.Time { return time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC) }

	snap, err := f.svc.Snapshot(context.Background(), user.ID, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.AsOf.Equal(date(2024, 3, 11)) {
		t.Errorf("as_of = %v, want 2024-03-11", snap.AsOf)
	}
}

func TestEnergyService_Errors(t *testing.T) {
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)

	if _, err := f.svc.Estimate(context.Background(), uuid.New(), nil); err != domain.ErrNotFound {
		t.Errorf("unknown user error = %v, want ErrNotFound", err)
	}

	// A profile the engine rejects surfaces as a validation error
	user.Age = 5
	_, err := f.svc.Estimate(context.Background(), user.ID, nil)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, engine.ErrInvalidInput) {
		t.Error("expected error to wrap engine.ErrInvalidInput")
	}
}

func TestEnergyService_Components(t *testing.T) {
	asOf := date(2024, 3, 28)
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	seedDays(f.weights, f.nutrition, user.ID, asOf, 28, 80, 2200)

	resp, err := f.svc.Components(context.Background(), user.ID, &asOf)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}
	c := resp.Components
	if c.Total != resp.EstimatedTDEE {
		t.Errorf("components total %d, want estimate %d", c.Total, resp.EstimatedTDEE)
	}
	if c.BMR+c.TEF+c.EAT+c.NEAT != c.Total {
		t.Errorf("components do not sum: %+v", c)
	}
	if !c.Reconciled {
		t.Error("expected components reconciled to the estimate")
	}
	if resp.Intake.LoggedDays == 0 {
		t.Error("expected intake logged days")
	}
}

func TestEnergyService_ComponentsMatchEstimate(t *testing.T) {
	asOf := date(2024, 3, 28)
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	// intake steps up halfway so the rate window and the full lookback disagree
	seedDays(f.weights, f.nutrition, user.ID, asOf.AddDate(0, 0, -14), 14, 80, 1800)
	seedDays(f.weights, f.nutrition, user.ID, asOf, 14, 80, 2600)

	est, err := f.svc.Estimate(context.Background(), user.ID, &asOf)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	resp, err := f.svc.Components(context.Background(), user.ID, &asOf)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	if est.EnergyComponents == nil {
		t.Fatal("expected components on the estimate")
	}
	if resp.Components != *est.EnergyComponents {
		t.Errorf("components = %+v, estimate carries %+v", resp.Components, *est.EnergyComponents)
	}
	if resp.Intake != est.Intake {
		t.Errorf("intake = %+v, estimate used %+v", resp.Intake, est.Intake)
	}
	if est.Methodology == engine.MethodologyAdherenceNeutral && resp.Intake.LoggedDays >= 28 {
		t.Errorf("intake covers %d days, want the rate window", resp.Intake.LoggedDays)
	}
}

func TestEnergyService_DataQuality(t *testing.T) {
	asOf := date(2024, 3, 28)
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	seedDays(f.weights, f.nutrition, user.ID, asOf, 14, 80, 2200)

	tests := []struct {
		name        string
		windowDays  int
		wantWindow  int
		wantDensity float64
		wantErr     bool
	}{
		{name: "default window", windowDays: 0, wantWindow: 28, wantDensity: 0.5},
		{name: "fully logged window", windowDays: 14, wantWindow: 14, wantDensity: 1},
		{name: "window too large", windowDays: engine.MaxWindowDays + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := f.svc.DataQuality(context.Background(), user.ID, tt.windowDays, &asOf)
			if tt.wantErr {
				if !errors.Is(err, engine.ErrInvalidInput) {
					t.Errorf("expected invalid input, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DataQuality() error = %v", err)
			}
			if report.WindowDays != tt.wantWindow {
				t.Errorf("window = %d, want %d", report.WindowDays, tt.wantWindow)
			}
			if report.LoggingDensity != tt.wantDensity {
				t.Errorf("density = %v, want %v", report.LoggingDensity, tt.wantDensity)
			}
		})
	}
}

func TestEnergyService_History(t *testing.T) {
	f := newEnergyFixture()
	user := newTestUser(f.users, engine.ModeManual)
	seedDays(f.weights, f.nutrition, user.ID, date(2024, 3, 28), 28, 80, 2200)

	for _, d := range []time.Time{date(2024, 3, 26), date(2024, 3, 27), date(2024, 3, 28), date(2024, 3, 28)} {
		row, err := f.svc.RecordHistory(context.Background(), user.ID, timePtr(d))
		if err != nil {
			t.Fatalf("RecordHistory() error = %v", err)
		}
		if row.AlgorithmVersion != engine.AlgorithmVersion {
			t.Errorf("algorithm version = %q", row.AlgorithmVersion)
		}
		if len(row.Components) == 0 {
			t.Error("expected components to be stored")
		}
	}
	if len(f.expenditures.rows) != 3 {
		t.Fatalf("expected one row per day, got %d", len(f.expenditures.rows))
	}

	list, err := f.svc.ListHistory(context.Background(), user.ID, domain.ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("ListHistory() error = %v", err)
	}
	if len(list.Data) != 2 || !list.Pagination.HasMore {
		t.Errorf("ListHistory() = %d rows, has_more %v", len(list.Data), list.Pagination.HasMore)
	}
	if list.Data[0].Date != "2024-03-28" {
		t.Errorf("expected newest first, got %s", list.Data[0].Date)
	}
	if list.Data[0].Components == nil {
		t.Error("expected decoded components in response")
	}
}
