package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter vector on the application registry.
// It panics if a metric with the same name is already registered.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
	m.registerer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateHistogram creates a histogram vector on the application registry.
// nil buckets select DefaultDurationBuckets.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	if buckets == nil {
		buckets = DefaultDurationBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
	m.registerer.MustRegister(vec)
	return &histogramVec{vec: vec}
}

// CreateGauge creates a gauge vector on the application registry.
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	m.registerer.MustRegister(vec)
	return &gaugeVec{vec: vec}
}
