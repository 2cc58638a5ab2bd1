package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "shotmap"

// Metrics records dataset loads and chart renders on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	datasetRows    prometheus.Gauge
	loadErrors     prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Chart renders by view and result.",
		}, []string{"view", "result"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent filtering, aggregating and drawing a chart.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"view"}),
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_rows",
			Help:      "Rows in the most recently loaded shot dataset.",
		}),
		loadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_load_errors_total",
			Help:      "Failed shot dataset loads.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.renders,
		m.renderDuration,
		m.datasetRows,
		m.loadErrors,
	)

	return m
}

func (m *Metrics) ObserveDatasetLoad(rows int, err error) {
	if err != nil {
		m.loadErrors.Inc()
		return
	}
	m.datasetRows.Set(float64(rows))
}

func (m *Metrics) ObserveRender(view string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.renders.WithLabelValues(view, result).Inc()
	m.renderDuration.WithLabelValues(view).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
