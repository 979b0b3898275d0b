package scan

import (
	"time"

	"github.com/gernest/sift/filter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts scan work. All methods are safe on a nil receiver so the
// Scanner can run unmetered.
type Metrics struct {
	cells     prometheus.Counter
	decisions *prometheus.CounterVec
	rows      prometheus.Counter
	duration  prometheus.Histogram
	cacheHits prometheus.Counter
	cacheMiss prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		cells: f.NewCounter(prometheus.CounterOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "cells_total",
			Help:      "Cells pulled from the store cursor.",
		}),
		decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "filter_decisions_total",
			Help:      "Filter verdicts by return code.",
		}, []string{"code"}),
		rows: f.NewCounter(prometheus.CounterOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "rows_returned_total",
			Help:      "Rows that survived filtering.",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Scan latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "cache_hits_total",
			Help:      "Scans served from the result cache.",
		}),
		cacheMiss: f.NewCounter(prometheus.CounterOpts{
			Namespace: "sift",
			Subsystem: "scan",
			Name:      "cache_misses_total",
			Help:      "Scans that had to walk the store.",
		}),
	}
}

func (m *Metrics) cell() {
	if m == nil {
		return
	}
	m.cells.Inc()
}

func (m *Metrics) decision(code filter.ReturnCode) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(code.String()).Inc()
}

func (m *Metrics) scanDone(rows int, took time.Duration) {
	if m == nil {
		return
	}
	m.rows.Add(float64(rows))
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) hit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) miss() {
	if m == nil {
		return
	}
	m.cacheMiss.Inc()
}
