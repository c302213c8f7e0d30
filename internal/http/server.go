// Package http serves the growth dashboard.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"crescita/internal/engine"
	"crescita/internal/metrics"
	"crescita/internal/middleware/ratelimit"
	"crescita/internal/middleware/security"
	"crescita/internal/middleware/trace"
	"crescita/internal/store"
	"crescita/internal/who"
	appweb "crescita/web"
)

type Server struct {
	http.Server

	templates *template.Template
	engine    *engine.Engine
	store     *store.GrowthStore
	curves    *who.ReferenceCurveSet

	limiter      *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
// The curve set is loaded once at startup and shared read-only; the store is
// the single mutable owner of the record data.
func NewServer(addr string, eng *engine.Engine, st *store.GrowthStore, curves *who.ReferenceCurveSet) *Server {
	mux := http.NewServeMux()

	s := &Server{
		engine:  eng,
		store:   st,
		curves:  curves,
		limiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetCache(3600)(static))
	}

	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/records", s.handleAddRecord)
	mux.HandleFunc("/records/save", s.handleSaveTable)
	mux.HandleFunc("/chart.json", s.handleChartJSON)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.Handle("/metrics", metrics.Handler())

	handler := trace.Middleware(mux)
	handler = s.limiter.Middleware(trace.ClientIP)(handler)
	handler = security.Headers(security.DefaultHeadersConfig())(handler)

	s.Server = http.Server{Addr: addr, Handler: handler}
	return s
}

// Shutdown stops the HTTP server and the limiter cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.limiter.Stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
