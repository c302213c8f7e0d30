package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"crescita/internal/engine"
)

func decodeChart(t *testing.T, srv *Server) []map[string]any {
	t.Helper()
	rr := get(t, srv, "/chart.json")
	if rr.Code != http.StatusOK {
		t.Fatalf("/chart.json status=%d", rr.Code)
	}
	var fig struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &fig); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	return fig.Data
}

func TestAddRecordEndToEnd(t *testing.T) {
	srv, blobs, st := newTestServer(t)

	// Empty store renders 7 traces: two bands plus five percentile lines.
	if traces := decodeChart(t, srv); len(traces) != 7 {
		t.Fatalf("expected 7 traces for empty store, got %d", len(traces))
	}

	rr := postForm(t, srv, "/records", "dob=2024-01-01&date=2024-01-15&weight=4.2")
	if rr.Code != http.StatusOK {
		t.Fatalf("add status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), engine.MsgRecordAdded) {
		t.Fatalf("response missing success message")
	}
	if !strings.Contains(rr.Body.String(), `value="2024-01-15"`) {
		t.Fatalf("table must show the new record")
	}

	records := st.Records()
	if len(records) != 1 || records[0].AgeDays != 14 || records[0].WeightKg != 4.2 {
		t.Fatalf("stored record: %+v", records)
	}

	content, err := blobs.ReadText(context.Background(), growthBlob)
	if err != nil {
		t.Fatalf("read persisted blob: %v", err)
	}
	if content != "Date,Age_Days,Weight_kg\n2024-01-15,14,4.2\n" {
		t.Fatalf("persisted csv: %q", content)
	}

	traces := decodeChart(t, srv)
	if len(traces) != 8 {
		t.Fatalf("expected 8 traces after add, got %d", len(traces))
	}
	growth := traces[7]
	if growth["name"] != "Baby's Growth" {
		t.Fatalf("growth trace name: %v", growth["name"])
	}
	x := growth["x"].([]any)
	y := growth["y"].([]any)
	if len(x) != 1 || x[0].(float64) != 14 || y[0].(float64) != 4.2 {
		t.Fatalf("growth trace point: x=%v y=%v", x, y)
	}
}

func TestAddRecordIncompleteIsNoOp(t *testing.T) {
	srv, _, st := newTestServer(t)

	bodies := []string{
		"date=2024-01-15&weight=4.2",
		"dob=2024-01-01&weight=4.2",
		"dob=2024-01-01&date=2024-01-15",
		"dob=2024-01-01&date=2024-01-15&weight=",
		"dob=2024-01-01&date=not-a-date&weight=4.2",
	}
	for _, body := range bodies {
		rr := postForm(t, srv, "/records", body)
		if rr.Code != http.StatusOK {
			t.Fatalf("body %q: status=%d", body, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), engine.MsgNoChanges) {
			t.Fatalf("body %q: expected no-changes message", body)
		}
	}
	if st.Count() != 0 {
		t.Fatalf("incomplete adds must not mutate, got %d records", st.Count())
	}
}

func TestSaveTableDeletesRow(t *testing.T) {
	srv, blobs, st := newTestServer(t)

	for _, body := range []string{
		"dob=2024-01-01&date=2024-01-15&weight=4.2",
		"dob=2024-01-01&date=2024-02-01&weight=5",
	} {
		if rr := postForm(t, srv, "/records", body); rr.Code != http.StatusOK {
			t.Fatalf("add status=%d", rr.Code)
		}
	}

	// The UI deleted the first row; save submits only the second.
	form := url.Values{
		"trigger":   {"save"},
		"date":      {"2024-02-01"},
		"age_days":  {"31"},
		"weight_kg": {"5"},
	}
	rr := postForm(t, srv, "/records/save", form.Encode())
	if rr.Code != http.StatusOK {
		t.Fatalf("save status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), engine.MsgChangesSaved) {
		t.Fatalf("response missing saved message")
	}

	if st.Count() != 1 {
		t.Fatalf("expected store to shrink to 1 record, got %d", st.Count())
	}
	content, _ := blobs.ReadText(context.Background(), growthBlob)
	if content != "Date,Age_Days,Weight_kg\n2024-02-01,31,5\n" {
		t.Fatalf("persisted csv after deletion: %q", content)
	}
}

func TestSaveTableEditDoesNotRecomputeAge(t *testing.T) {
	srv, _, st := newTestServer(t)

	if rr := postForm(t, srv, "/records", "dob=2024-01-01&date=2024-01-15&weight=4.2"); rr.Code != http.StatusOK {
		t.Fatalf("add status=%d", rr.Code)
	}

	// The date cell was edited but Age_Days stays as submitted.
	form := url.Values{
		"trigger":   {"edited"},
		"date":      {"2024-03-01"},
		"age_days":  {"14"},
		"weight_kg": {"4.2"},
	}
	rr := postForm(t, srv, "/records/save", form.Encode())
	if rr.Code != http.StatusOK {
		t.Fatalf("save status=%d", rr.Code)
	}

	records := st.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Date.String() != "2024-03-01" || records[0].AgeDays != 14 {
		t.Fatalf("edited record: %+v", records[0])
	}
}

func TestSaveTableRejectsMalformedRows(t *testing.T) {
	srv, _, _ := newTestServer(t)

	cases := []url.Values{
		{"trigger": {"save"}, "date": {"nope"}, "age_days": {"14"}, "weight_kg": {"4.2"}},
		{"trigger": {"save"}, "date": {"2024-01-15"}, "age_days": {"x"}, "weight_kg": {"4.2"}},
		{"trigger": {"save"}, "date": {"2024-01-15"}, "age_days": {"14"}, "weight_kg": {"heavy"}},
		{"trigger": {"save"}, "date": {"2024-01-15", "2024-02-01"}, "age_days": {"14"}, "weight_kg": {"4.2"}},
	}
	for i, form := range cases {
		rr := postForm(t, srv, "/records/save", form.Encode())
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("case %d: expected 422, got %d", i, rr.Code)
		}
	}
}

func TestSaveTableEmptyClearsStore(t *testing.T) {
	srv, blobs, st := newTestServer(t)

	if rr := postForm(t, srv, "/records", "dob=2024-01-01&date=2024-01-15&weight=4.2"); rr.Code != http.StatusOK {
		t.Fatalf("add status=%d", rr.Code)
	}
	rr := postForm(t, srv, "/records/save", "trigger=save")
	if rr.Code != http.StatusOK {
		t.Fatalf("save status=%d", rr.Code)
	}
	if st.Count() != 0 {
		t.Fatalf("expected empty store, got %d", st.Count())
	}
	content, _ := blobs.ReadText(context.Background(), growthBlob)
	if content != "Date,Age_Days,Weight_kg\n" {
		t.Fatalf("persisted csv: %q", content)
	}
}
