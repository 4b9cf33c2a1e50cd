package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics(t *testing.T) {
	t.Run("counts requests by method and status", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(registry))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		counter, err := registry.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}

		found := false
		for _, mf := range counter {
			if mf.GetName() != "hew_requests_total" {
				continue
			}
			found = true
			for _, m := range mf.GetMetric() {
				if m.GetCounter().GetValue() != 2 {
					t.Errorf("requests_total = %v, want 2", m.GetCounter().GetValue())
				}
				labels := map[string]string{}
				for _, l := range m.GetLabel() {
					labels[l.GetName()] = l.GetValue()
				}
				if labels["method"] != "GET" || labels["status"] != "404" {
					t.Errorf("labels = %v, want method=GET status=404", labels)
				}
			}
		}
		if !found {
			t.Error("hew_requests_total not registered")
		}
	})

	t.Run("custom namespace", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(registry), WithNamespace("mysite"))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		names, err := registry.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		for _, mf := range names {
			if mf.GetName() == "mysite_requests_total" {
				return
			}
		}
		t.Error("mysite_requests_total not registered")
	})

	t.Run("in-flight gauge returns to zero", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		mw := Metrics(WithRegistry(registry))

		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		mfs, err := registry.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		for _, mf := range mfs {
			if mf.GetName() == "hew_requests_in_flight" {
				if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 0 {
					t.Errorf("in-flight = %v, want 0", got)
				}
			}
		}
	})
}

func TestReloadCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	inc := ReloadCounter(WithRegistry(registry))

	inc()
	inc()
	inc()

	mfs, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "hew_reload_broadcasts_total" {
			if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 3 {
				t.Errorf("broadcasts = %v, want 3", got)
			}
			return
		}
	}
	t.Error("hew_reload_broadcasts_total not registered")
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusInternalServerError)

	if sw.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d (first write wins)", sw.status, http.StatusTeapot)
	}
}
