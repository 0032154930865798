package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeBadRequest   = "bad_request"
	OutcomeUnavailable  = "unavailable"
	OutcomeUnrenderable = "unrenderable"
	OutcomeError        = "error"
)

// Metrics holds the service's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	predictions       *prometheus.CounterVec
	predictionLatency prometheus.Histogram
	charts            *prometheus.CounterVec
	renderLatency     *prometheus.HistogramVec
	telemetryRows     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rul_predictions_total",
			Help: "Prediction requests by outcome.",
		}, []string{"outcome"}),
		predictionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rul_prediction_duration_seconds",
			Help:    "Model invocation latency.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		charts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rul_charts_generated_total",
			Help: "Chart generation requests by intent kind and outcome.",
		}, []string{"kind", "outcome"}),
		renderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rul_chart_render_duration_seconds",
			Help:    "Chart render and persist latency.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"kind"}),
		telemetryRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rul_telemetry_rows",
			Help: "Rows in the loaded telemetry table; 0 when none loaded.",
		}),
	}
	m.registry.MustRegister(m.predictions, m.predictionLatency, m.charts, m.renderLatency, m.telemetryRows)
	return m
}

// ObservePrediction records one prediction call.
func (m *Metrics) ObservePrediction(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.predictionLatency.Observe(took.Seconds())
	}
}

// ObserveChart records one chart generation.
func (m *Metrics) ObserveChart(kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.charts.WithLabelValues(kind, outcome).Inc()
	m.renderLatency.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Metrics) SetTelemetryRows(n int) {
	if m == nil {
		return
	}
	m.telemetryRows.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
