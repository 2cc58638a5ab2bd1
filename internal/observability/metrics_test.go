package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	return rec.Body.String()
}

func TestMetrics_ObserveRender(t *testing.T) {
	m := NewMetrics()
	m.ObserveRender("goal", 3*time.Millisecond, nil)
	m.ObserveRender("goal", 2*time.Millisecond, nil)
	m.ObserveRender("pitch", time.Millisecond, errors.New("boom"))

	body := scrape(t, m)
	for _, want := range []string{
		`shotmap_renders_total{result="ok",view="goal"} 2`,
		`shotmap_renders_total{result="error",view="pitch"} 1`,
		`shotmap_render_duration_seconds_count{view="goal"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func TestMetrics_ObserveDatasetLoad(t *testing.T) {
	m := NewMetrics()
	m.ObserveDatasetLoad(1200, nil)
	m.ObserveDatasetLoad(0, errors.New("missing file"))

	body := scrape(t, m)
	if !strings.Contains(body, "shotmap_dataset_rows 1200") {
		t.Fatalf("dataset rows gauge should keep the last successful load")
	}
	if !strings.Contains(body, "shotmap_dataset_load_errors_total 1") {
		t.Fatalf("load error counter not incremented")
	}
}
