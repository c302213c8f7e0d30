// Package metrics exposes Prometheus counters for the dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled requests by path and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crescita_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"path", "status"})

	// RecordsAdded counts growth records appended through the add form.
	RecordsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crescita_records_added_total",
		Help: "Growth records added.",
	})

	// TableSaves counts wholesale table replacements (save button or edit).
	TableSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crescita_table_saves_total",
		Help: "Table save/edit events applied.",
	})

	// PersistFailures counts failed blob writes during add/save.
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crescita_persist_failures_total",
		Help: "Failed growth CSV writes.",
	})

	// LoadFallbacks counts startup loads that fell back to an empty dataset.
	LoadFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crescita_load_fallbacks_total",
		Help: "Record loads that recovered to an empty dataset.",
	})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
