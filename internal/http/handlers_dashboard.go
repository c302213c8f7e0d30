package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"crescita/internal/chart"
	"crescita/internal/core"
)

// tableRow is the display form of one record.
type tableRow struct {
	Date     string
	AgeDays  int
	WeightKg string
}

// dashboardData is the template payload. The table and chart are always
// regenerated from the current store state, so UI and store cannot diverge.
type dashboardData struct {
	Message     string
	Rows        []tableRow
	DefaultDOB  string
	DefaultDate string
}

// handleDashboard renders the main dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.renderDashboard(w, r, "")
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, message string) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	records := s.store.Records()
	rows := make([]tableRow, len(records))
	for i, rec := range records {
		rows[i] = tableRow{
			Date:     rec.Date.String(),
			AgeDays:  rec.AgeDays,
			WeightKg: strconv.FormatFloat(rec.WeightKg, 'f', -1, 64),
		}
	}

	now := time.Now().UTC()
	data := dashboardData{
		Message:     message,
		Rows:        rows,
		DefaultDOB:  now.AddDate(0, 0, -14).Format(core.DateLayout),
		DefaultDate: now.Format(core.DateLayout),
	}
	if err := s.templates.ExecuteTemplate(w, "dashboard_page", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleChartJSON serves the current figure specification. The static app.js
// fetches this and hands it to Plotly.
func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	fig := chart.Build(s.curves, s.store.Records())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fig); err != nil {
		slog.ErrorContext(r.Context(), "Chart encoding failed", "error", err)
	}
}
