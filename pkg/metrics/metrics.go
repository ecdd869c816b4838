package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

type Metrics struct {
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
	gauges     map[string]*prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}

	m.counters["forecast_requests_total"] = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_requests_total",
			Help: "Total number of Forecast API requests",
		},
		[]string{"endpoint", "status"},
	)

	m.counters["forecast_cache_total"] = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_cache_total",
			Help: "Cache lookups by outcome",
		},
		[]string{"endpoint", "result"},
	)

	m.histograms["forecast_api_duration_seconds"] = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forecast_api_duration_seconds",
			Help:    "Duration of Forecast API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	m.gauges["forecast_api_calls_today"] = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "forecast_api_calls_today",
			Help: "API calls made today as reported by the X-Forecast-API-Calls header",
		},
		[]string{},
	)

	// Register all metrics (gracefully handle already registered metrics)
	for _, counter := range m.counters {
		if err := prometheus.Register(counter); err != nil {
			// Metric already registered, this is OK in tests
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	for _, histogram := range m.histograms {
		if err := prometheus.Register(histogram); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
	for _, gauge := range m.gauges {
		if err := prometheus.Register(gauge); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}

	return m
}

func (m *Metrics) IncrementCounter(name string, labelValues ...string) {
	if counter, exists := m.counters[name]; exists {
		counter.WithLabelValues(labelValues...).Inc()
	}
}

func (m *Metrics) ObserveHistogram(name string, value float64, labelValues ...string) {
	if histogram, exists := m.histograms[name]; exists {
		histogram.WithLabelValues(labelValues...).Observe(value)
	}
}

func (m *Metrics) SetGauge(name string, value float64, labelValues ...string) {
	if gauge, exists := m.gauges[name]; exists {
		gauge.WithLabelValues(labelValues...).Set(value)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// CounterValue reads back the current value of a counter. Intended for
// tests and diagnostics, not hot paths.
func (m *Metrics) CounterValue(name string, labelValues ...string) float64 {
	counter, exists := m.counters[name]
	if !exists {
		return 0
	}

	dtoMetric := &dto.Metric{}
	if err := counter.WithLabelValues(labelValues...).Write(dtoMetric); err != nil {
		return 0
	}

	if dtoMetric.Counter == nil {
		return 0
	}
	return dtoMetric.Counter.GetValue()
}
