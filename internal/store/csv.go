package store

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"crescita/internal/core"
)

// Persisted CSV schema. The header row is required and must round-trip
// exactly through load, replace and save.
var csvHeader = []string{"Date", "Age_Days", "Weight_kg"}

// MarshalRecords serializes records to the persisted CSV form: ISO dates,
// integer ages, shortest lossless weight representation.
func MarshalRecords(records []core.GrowthRecord) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(csvHeader)
	for _, rec := range records {
		_ = w.Write([]string{
			rec.Date.String(),
			strconv.Itoa(rec.AgeDays),
			strconv.FormatFloat(rec.WeightKg, 'f', -1, 64),
		})
	}
	w.Flush()
	return b.String()
}

// UnmarshalRecords parses the persisted CSV. Any malformed row or missing
// column is an error; the caller decides whether that is fatal or a fallback
// to an empty dataset.
func UnmarshalRecords(content string) ([]core.GrowthRecord, error) {
	r := csv.NewReader(strings.NewReader(content))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %s", name)
		}
	}

	var records []core.GrowthRecord
	for i, row := range rows[1:] {
		date, err := core.ParseDate(strings.TrimSpace(row[cols["Date"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q", i+1, row[cols["Date"]])
		}
		ageDays, err := strconv.Atoi(strings.TrimSpace(row[cols["Age_Days"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad age %q", i+1, row[cols["Age_Days"]])
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(row[cols["Weight_kg"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad weight %q", i+1, row[cols["Weight_kg"]])
		}
		records = append(records, core.GrowthRecord{
			Date:     date,
			AgeDays:  ageDays,
			WeightKg: weight,
		})
	}
	return records, nil
}
