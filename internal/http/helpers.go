package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"crescita/internal/core"
)

// parseOptionalDate coerces a form value to a date, nil when absent or not a
// date.
func parseOptionalDate(s string) *core.Date {
	d, err := core.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &d
}

// parseOptionalFloat coerces a form value to a float, nil when absent or not
// numeric.
func parseOptionalFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseTableRows zips the parallel date/age_days/weight_kg form arrays into
// records. The Date column is re-parsed; Age_Days is taken verbatim and never
// re-derived from the date of birth.
func parseTableRows(form url.Values) ([]core.GrowthRecord, error) {
	dates := form["date"]
	ages := form["age_days"]
	weights := form["weight_kg"]
	if len(ages) != len(dates) || len(weights) != len(dates) {
		return nil, fmt.Errorf("mismatched table columns: %d dates, %d ages, %d weights",
			len(dates), len(ages), len(weights))
	}

	var rows []core.GrowthRecord
	for i := range dates {
		date, err := core.ParseDate(strings.TrimSpace(dates[i]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q", i, dates[i])
		}
		ageDays, err := strconv.Atoi(strings.TrimSpace(ages[i]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad age %q", i, ages[i])
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weights[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad weight %q", i, weights[i])
		}
		rows = append(rows, core.GrowthRecord{
			Date:     date,
			AgeDays:  ageDays,
			WeightKg: weight,
		})
	}
	return rows, nil
}
