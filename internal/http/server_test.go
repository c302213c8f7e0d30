package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crescita/internal/blob"
	"crescita/internal/engine"
	"crescita/internal/log"
	"crescita/internal/store"
	"crescita/internal/who"
)

const growthBlob = "baby_growth_data.csv"

const whoTable = "Week;P5;P10;P50;P90;P95\n" +
	"0;2,5;2,7;3,2;3,9;4,0\n" +
	"1;2,6;2,8;3,3;4,0;4,2\n" +
	"2;2,8;3,0;3,6;4,3;4,5\n"

func newTestServer(t *testing.T) (*Server, *blob.Memory, *store.GrowthStore) {
	t.Helper()
	ctx := context.Background()

	blobs := blob.NewMemory()
	if err := blobs.WriteText(ctx, "who.csv", whoTable); err != nil {
		t.Fatalf("seed who blob: %v", err)
	}
	curves, err := who.Load(ctx, blobs, "who.csv")
	if err != nil {
		t.Fatalf("load curves: %v", err)
	}

	st := store.New(blobs, growthBlob, log.New(log.DefaultConfig()))
	st.Load(ctx)

	srv := NewServer(":0", engine.New(st), st, curves)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv, blobs, st
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func postForm(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestDashboardAndHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rr := get(t, srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Baby Growth Tracker") {
		t.Fatalf("index body missing heading")
	}
	if !strings.Contains(rr.Body.String(), "growth-chart") {
		t.Fatalf("index body missing chart container")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := get(t, srv, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}

	rr = get(t, srv, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", rr.Code)
	}
}

func TestDashboardUnknownPath(t *testing.T) {
	srv, _, _ := newTestServer(t)
	if rr := get(t, srv, "/nope"); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t)
	rr := get(t, srv, "/")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing nosniff header")
	}
	csp := rr.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "cdn.plot.ly") {
		t.Fatalf("CSP must allow the plotly CDN, got %q", csp)
	}
}

func TestMethodChecks(t *testing.T) {
	srv, _, _ := newTestServer(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/records"},
		{http.MethodGet, "/records/save"},
		{http.MethodPost, "/chart.json"},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, rr.Code)
		}
	}
}
