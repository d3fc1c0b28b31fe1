package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/energy-tracker/internal/engine"
)

const dateLayout = "2006-01-02"

// dataset is the parsed contents of a data file, sorted by date.
type dataset struct {
	Weights   []engine.WeightEntry
	Nutrition []engine.NutritionDay
}

// latest returns the last dated row in either series.
func (d dataset) latest() time.Time {
	var last time.Time
	if n := len(d.Weights); n > 0 {
		last = d.Weights[n-1].Date
	}
	if n := len(d.Nutrition); n > 0 && d.Nutrition[n-1].Date.After(last) {
		last = d.Nutrition[n-1].Date
	}
	return last
}

func (d dataset) latestWeight() (float64, bool) {
	if n := len(d.Weights); n > 0 {
		return d.Weights[n-1].WeightKg, true
	}
	return 0, false
}

func readDataFile(path string) (dataset, error) {
	if path == "-" {
		return parseData(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return dataset{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return parseData(f)
}

// parseData reads one day per line:
//
//	YYYY-MM-DD weight_kg calories [protein_g carbs_g fat_g]
//
// A "-" leaves that value unrecorded. Zero calories is an unlogged day.
// Blank lines and text after '#' are ignored. A date seen twice keeps the
// later line.
func parseData(r io.Reader) (dataset, error) {
	var ds dataset
	weightAt := map[time.Time]int{}
	nutritionAt := map[time.Time]int{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 && len(fields) != 6 {
			return dataset{}, fmt.Errorf("line %d: expected 3 or 6 fields, got %d", lineNo, len(fields))
		}

		date, err := time.Parse(dateLayout, fields[0])
		if err != nil {
			return dataset{}, fmt.Errorf("line %d: invalid date %q (expected YYYY-MM-DD)", lineNo, fields[0])
		}

		weight, hasWeight, err := parseValue(fields[1])
		if err != nil {
			return dataset{}, fmt.Errorf("line %d: invalid weight: %w", lineNo, err)
		}
		if hasWeight {
			if weight <= 0 {
				return dataset{}, fmt.Errorf("line %d: weight must be > 0", lineNo)
			}
			entry := engine.WeightEntry{Date: date, WeightKg: weight}
			if i, ok := weightAt[date]; ok {
				ds.Weights[i] = entry
			} else {
				weightAt[date] = len(ds.Weights)
				ds.Weights = append(ds.Weights, entry)
			}
		}

		calories, hasCalories, err := parseValue(fields[2])
		if err != nil {
			return dataset{}, fmt.Errorf("line %d: invalid calories: %w", lineNo, err)
		}
		if !hasCalories {
			continue
		}
		n := engine.NutritionDay{Date: date, Calories: calories}
		if len(fields) == 6 {
			macros := make([]float64, 3)
			for j, f := range fields[3:] {
				v, _, err := parseValue(f)
				if err != nil {
					return dataset{}, fmt.Errorf("line %d: invalid macro %q: %w", lineNo, f, err)
				}
				macros[j] = v
			}
			n.ProteinG, n.CarbsG, n.FatG = macros[0], macros[1], macros[2]
		}
		if i, ok := nutritionAt[date]; ok {
			ds.Nutrition[i] = n
		} else {
			nutritionAt[date] = len(ds.Nutrition)
			ds.Nutrition = append(ds.Nutrition, n)
		}
	}
	if err := sc.Err(); err != nil {
		return dataset{}, fmt.Errorf("read data file: %w", err)
	}

	if err := engine.ValidateWeights(ds.Weights); err != nil {
		return dataset{}, err
	}
	if err := engine.ValidateNutrition(ds.Nutrition); err != nil {
		return dataset{}, err
	}

	sort.Slice(ds.Weights, func(i, j int) bool { return ds.Weights[i].Date.Before(ds.Weights[j].Date) })
	sort.Slice(ds.Nutrition, func(i, j int) bool { return ds.Nutrition[i].Date.Before(ds.Nutrition[j].Date) })
	return ds, nil
}

func parseValue(s string) (float64, bool, error) {
	if s == "-" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, false, fmt.Errorf("%q is negative", s)
	}
	return v, true, nil
}
