package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func scrape(t *testing.T) []byte {
	t.Helper()
	mrr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	return mrr.Body.Bytes()
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/charts/{id}/option", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/charts/traffic/option", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	body := scrape(t)
	if !bytes.Contains(body, []byte("chartd_api_requests_total")) || !bytes.Contains(body, []byte(`route="/charts/{id}/option"`)) {
		t.Fatalf("expected chartd_api_requests_total labelled with the route pattern")
	}
	if bytes.Contains(body, []byte(`route="/charts/traffic/option"`)) {
		t.Fatalf("raw path leaked into labels")
	}
}

func TestMetricsMiddleware_UnroutedRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	before := testutil.ToFloat64(apiRequestsTotal.WithLabelValues(unmatchedRoute, "GET", "418"))
	MetricsMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))
	if got := testutil.ToFloat64(apiRequestsTotal.WithLabelValues(unmatchedRoute, "GET", "418")); got != before+1 {
		t.Fatalf("expected unmatched 418 counter %v, got %v", before+1, got)
	}
	if bytes.Contains(scrape(t), []byte(`route="/plain"`)) {
		t.Fatalf("raw path leaked into labels")
	}
}

func TestIncrementRejected_DefaultsReason(t *testing.T) {
	before := testutil.ToFloat64(rejectedTotal.WithLabelValues("unspecified"))
	IncrementRejected("")
	if got := testutil.ToFloat64(rejectedTotal.WithLabelValues("unspecified")); got != before+1 {
		t.Fatalf("unspecified counter=%v want %v", got, before+1)
	}
}
