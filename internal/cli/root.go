// Package cli is the offline tdee command. It runs the energy engine over a
// plain-text data file without a database or server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blaisecz/energy-tracker/internal/config"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	policyFile string
	asJSON     bool
	asOf       string

	sex             string
	age             int
	heightCm        float64
	weightKg        float64
	bodyFat         float64
	activity        string
	exerciseMinutes float64
	intensity       string
	steps           int
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tdee",
		Short: "tdee estimates energy expenditure from a weight and intake log",
		Long: "tdee runs the adaptive expenditure engine over a data file with one line per day:\n" +
			"  YYYY-MM-DD weight_kg calories [protein_g carbs_g fat_g]\n" +
			"Use '-' for a value that was not recorded and '#' for comments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.policyFile, "policy", "", "Engine policy file (yaml, json or toml)")
	f.BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	f.StringVar(&opts.asOf, "as-of", "", "Evaluation day YYYY-MM-DD (default: last day in the file)")
	f.StringVar(&opts.sex, "sex", "", "Sex: male|female")
	f.IntVar(&opts.age, "age", 0, "Age in years")
	f.Float64Var(&opts.heightCm, "height", 0, "Height in cm")
	f.Float64Var(&opts.weightKg, "weight", 0, "Body weight in kg (default: last weigh-in in the file)")
	f.Float64Var(&opts.bodyFat, "body-fat", 0, "Body fat percent, enables Katch-McArdle")
	f.StringVar(&opts.activity, "activity", string(engine.ActivityModeratelyActive), "Activity: sedentary|lightly_active|moderately_active|very_active|extra_active")
	f.Float64Var(&opts.exerciseMinutes, "exercise-minutes", 0, "Exercise minutes per week")
	f.StringVar(&opts.intensity, "intensity", "", "Exercise intensity: low|moderate|high")
	f.IntVar(&opts.steps, "steps", 0, "Average steps per day")

	root.AddCommand(
		newEstimateCmd(opts),
		newQualityCmd(opts),
		newComponentsCmd(opts),
		newAdjustCmd(opts),
	)
	return root
}

func (o *options) policy() (engine.Policy, error) {
	if o.policyFile == "" {
		return engine.DefaultPolicy(), nil
	}
	return config.LoadPolicy(o.policyFile)
}

func (o *options) evaluationDay(ds dataset) (time.Time, error) {
	if o.asOf == "" {
		return ds.latest(), nil
	}
	t, err := time.Parse(dateLayout, o.asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q (expected YYYY-MM-DD)", o.asOf)
	}
	return t, nil
}

func (o *options) biological(ds dataset) (engine.BiologicalProfile, error) {
	b := engine.BiologicalProfile{
		Age:      o.age,
		Sex:      engine.Sex(o.sex),
		WeightKg: o.weightKg,
		HeightCm: o.heightCm,
	}
	if b.WeightKg == 0 {
		if w, ok := ds.latestWeight(); ok {
			b.WeightKg = w
		}
	}
	if o.bodyFat > 0 {
		bf := o.bodyFat
		b.BodyFatPercent = &bf
	}
	if err := engine.ValidateBiological(b); err != nil {
		return b, fmt.Errorf("profile: %w (set --sex, --age, --height and --weight)", err)
	}
	return b, nil
}

func (o *options) activityProfile() (engine.ActivityProfile, error) {
	a := engine.ActivityProfile{
		Level:             engine.ActivityLevel(o.activity),
		ExerciseIntensity: engine.ExerciseIntensity(o.intensity),
	}
	if o.exerciseMinutes > 0 {
		m := o.exerciseMinutes
		a.ExerciseMinutesPerWeek = &m
	}
	if o.steps > 0 {
		s := o.steps
		a.StepsPerDay = &s
	}
	if err := engine.ValidateActivity(a); err != nil {
		return a, fmt.Errorf("activity: %w", err)
	}
	return a, nil
}

// load reads the data file named by args and resolves the policy.
func (o *options) load(args []string) (dataset, engine.Policy, error) {
	p, err := o.policy()
	if err != nil {
		return dataset{}, p, err
	}
	ds, err := readDataFile(args[0])
	if err != nil {
		return dataset{}, p, err
	}
	return ds, p, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}
