package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/spf13/cobra"
)

func newEstimateCmd(opts *options) *cobra.Command {
	var target engine.Macros

	cmd := &cobra.Command{
		Use:   "estimate <data-file>",
		Short: "Estimate current TDEE from weight change and logged intake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, p, err := opts.load(args)
			if err != nil {
				return err
			}
			asOf, err := opts.evaluationDay(ds)
			if err != nil {
				return err
			}
			bio, err := opts.biological(ds)
			if err != nil {
				return err
			}
			act, err := opts.activityProfile()
			if err != nil {
				return err
			}

			in := engine.EstimateInput{
				Weights:    ds.Weights,
				Nutrition:  ds.Nutrition,
				Biological: bio,
				Activity:   act,
				AsOf:       asOf,
			}
			if target.Calories > 0 {
				in.Targets = &target
			}

			est, err := engine.EstimateTDEE(in, p)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			printEstimate(cmd.OutOrStdout(), est)
			return nil
		},
	}

	cmd.Flags().IntVar(&target.Calories, "target-calories", 0, "Calorie target, enables the adherence score")
	cmd.Flags().Float64Var(&target.ProteinG, "target-protein", 0, "Protein target in grams")
	cmd.Flags().Float64Var(&target.CarbsG, "target-carbs", 0, "Carbohydrate target in grams")
	cmd.Flags().Float64Var(&target.FatG, "target-fat", 0, "Fat target in grams")
	return cmd
}

func newQualityCmd(opts *options) *cobra.Command {
	var windowDays int

	cmd := &cobra.Command{
		Use:   "quality <data-file>",
		Short: "Score logging density, weighing frequency and weight stability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, p, err := opts.load(args)
			if err != nil {
				return err
			}
			asOf, err := opts.evaluationDay(ds)
			if err != nil {
				return err
			}

			report, err := engine.ScoreDataQuality(ds.Nutrition, ds.Weights, windowDays, asOf, p)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printQuality(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().IntVar(&windowDays, "window", 28, fmt.Sprintf("Window length in days (1-%d)", engine.MaxWindowDays))
	return cmd
}

func newComponentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components <data-file>",
		Short: "Break expenditure into BMR, TEF, EAT and NEAT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, p, err := opts.load(args)
			if err != nil {
				return err
			}
			asOf, err := opts.evaluationDay(ds)
			if err != nil {
				return err
			}
			bio, err := opts.biological(ds)
			if err != nil {
				return err
			}
			act, err := opts.activityProfile()
			if err != nil {
				return err
			}

			est, err := engine.EstimateTDEE(engine.EstimateInput{
				Weights:    ds.Weights,
				Nutrition:  ds.Nutrition,
				Biological: bio,
				Activity:   act,
				AsOf:       asOf,
			}, p)
			if err != nil {
				return err
			}

			comps := est.EnergyComponents
			if comps == nil {
				return fmt.Errorf("no energy components for %s", est.AsOf.Format("2006-01-02"))
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), comps)
			}
			printComponents(cmd.OutOrStdout(), *comps)
			return nil
		},
	}
	return cmd
}

func newAdjustCmd(opts *options) *cobra.Command {
	var (
		current     engine.Macros
		goal        string
		energy      int
		hunger      int
		performance int
		weekStart   string
	)

	cmd := &cobra.Command{
		Use:   "adjust <data-file>",
		Short: "Propose next week's macro target from the last check-in week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, p, err := opts.load(args)
			if err != nil {
				return err
			}
			if err := engine.ValidateMacros(current); err != nil {
				return fmt.Errorf("current target: %w (set --calories)", err)
			}

			asOf, err := opts.evaluationDay(ds)
			if err != nil {
				return err
			}
			start := asOf.AddDate(0, 0, -6)
			if weekStart != "" {
				if start, err = time.Parse(dateLayout, weekStart); err != nil {
					return fmt.Errorf("invalid --week %q (expected YYYY-MM-DD)", weekStart)
				}
			}

			week := engine.SummarizeWeek(ds.Weights, ds.Nutrition, start, &current, p)

			bio, err := opts.biological(ds)
			if err != nil {
				return err
			}
			if week.AverageWeightKg > 0 {
				bio.WeightKg = week.AverageWeightKg
			}
			var bmr int
			if act, err := opts.activityProfile(); err == nil {
				if comps, err := engine.DecomposeEnergy(bio, act, week.AverageIntake, nil, p); err == nil {
					bmr = comps.BMR
				}
			}

			res, err := engine.AdjustMacros(engine.AdjustmentInput{
				Current:             current,
				WeeklyWeightDeltaKg: week.WeightChangeKg,
				Goal:                engine.GoalType(goal),
				EnergyLevel:         energy,
				HungerLevel:         hunger,
				TrainingPerformance: performance,
				BodyWeightKg:        bio.WeightKg,
				EstimatedBMR:        bmr,
				DaysWeighed:         week.DaysWeighed,
				DaysLogged:          week.DaysLogged,
			}, p)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Week       engine.WeekSummary      `json:"week"`
					Adjustment engine.AdjustmentResult `json:"adjustment"`
				}{week, res})
			}
			printAdjustment(cmd.OutOrStdout(), week, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&current.Calories, "calories", 0, "Current calorie target")
	f.Float64Var(&current.ProteinG, "protein", 0, "Current protein target in grams")
	f.Float64Var(&current.CarbsG, "carbs", 0, "Current carbohydrate target in grams")
	f.Float64Var(&current.FatG, "fat", 0, "Current fat target in grams")
	f.StringVar(&goal, "goal", string(engine.GoalMaintenance), "Goal: cut|gain|maintenance|recomp")
	f.IntVar(&energy, "energy", 3, "Energy level this week (1-5)")
	f.IntVar(&hunger, "hunger", 3, "Hunger level this week (1-5)")
	f.IntVar(&performance, "performance", 3, "Training performance this week (1-5)")
	f.StringVar(&weekStart, "week", "", "First day of the check-in week (default: six days before --as-of)")
	return cmd
}

func printEstimate(w io.Writer, est engine.TDEEEstimate) {
	fmt.Fprintf(w, "As of:         %s\n", est.AsOf.Format(dateLayout))
	fmt.Fprintf(w, "TDEE:          %d kcal/day (%s)\n", est.CurrentTDEE, est.Methodology)
	fmt.Fprintf(w, "Confidence:    %.0f%% (%s)\n", est.ConfidencePercent, est.ConfidenceLevel)
	fmt.Fprintf(w, "Trend weight:  %.2f kg, %s (%+.2f%%/week)\n", est.TrendWeight, est.WeightTrend, est.WeeklyChangeRatePercent)
	fmt.Fprintf(w, "Avg intake:    %.0f kcal over %d paired days\n", est.AverageIntake, est.PairedDays)
	fmt.Fprintf(w, "Data quality:  %s (%.2f)\n", est.DataQuality, est.Quality.OverallQuality)
	if len(est.Flags) > 0 {
		fmt.Fprintf(w, "Flags:         %s\n", strings.Join(est.Flags, ", "))
	}
}

func printQuality(w io.Writer, r engine.DataQualityReport) {
	fmt.Fprintf(w, "Window:             %d days\n", r.WindowDays)
	fmt.Fprintf(w, "Overall:            %.2f (%s)\n", r.OverallQuality, r.Level)
	fmt.Fprintf(w, "Logging density:    %.2f\n", r.LoggingDensity)
	fmt.Fprintf(w, "Weighing frequency: %.2f\n", r.WeighingFrequency)
	if r.StabilityDefined {
		fmt.Fprintf(w, "Data stability:     %.2f\n", r.DataStability)
	} else {
		fmt.Fprintln(w, "Data stability:     n/a")
	}
	for _, p := range r.Patterns {
		fmt.Fprintf(w, "  [%s] %s\n", p.Impact, p.Description)
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

func printComponents(w io.Writer, c engine.EnergyComponents) {
	fmt.Fprintf(w, "BMR:   %5d kcal (%s)\n", c.BMR, c.BMRFormula)
	fmt.Fprintf(w, "TEF:   %5d kcal\n", c.TEF)
	fmt.Fprintf(w, "EAT:   %5d kcal\n", c.EAT)
	fmt.Fprintf(w, "NEAT:  %5d kcal\n", c.NEAT)
	fmt.Fprintf(w, "Total: %5d kcal (confidence %.2f)\n", c.Total, c.Confidence)
	if c.Reconciled {
		fmt.Fprintln(w, "Reconciled against the observed TDEE.")
	}
}

func printAdjustment(w io.Writer, week engine.WeekSummary, res engine.AdjustmentResult) {
	fmt.Fprintf(w, "Week:      %s to %s (%d weigh-ins, %d logged days)\n",
		week.WeekStart.Format(dateLayout), week.WeekEnd.Format(dateLayout), week.DaysWeighed, week.DaysLogged)
	fmt.Fprintf(w, "Change:    %+.2f kg actual, %+.2f kg expected\n", res.ActualWeeklyChangeKg, res.ExpectedWeeklyChangeKg)
	fmt.Fprintf(w, "Status:    %s\n", res.Status)
	if res.Proposed != nil {
		fmt.Fprintf(w, "Calories:  %d -> %d (%+d)\n", res.Previous.Calories, res.Proposed.Calories, res.CalorieDelta)
		fmt.Fprintf(w, "Macros:    P %.0fg  C %.0fg  F %.0fg\n", res.Proposed.ProteinG, res.Proposed.CarbsG, res.Proposed.FatG)
	}
	for _, reason := range res.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	if len(res.Flags) > 0 {
		fmt.Fprintf(w, "Flags:     %s\n", strings.Join(res.Flags, ", "))
	}
}
