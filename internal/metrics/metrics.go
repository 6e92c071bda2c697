// Package metrics exposes Prometheus counters for tag normalization.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "commontags"

var (
	registerOnce sync.Once

	entriesIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_ingested_total",
		Help:      "Native tag entries stored under a canonical key, by vocabulary",
	}, []string{"vocabulary"})
	entriesDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_not_mapped_total",
		Help:      "Native tag entries with no canonical key, by vocabulary",
	}, []string{"vocabulary"})
	shapeMismatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shape_mismatches_total",
		Help:      "Mapped entries skipped because the value did not fit the key, by key",
	}, []string{"key"})
	filesParsed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_parsed_total",
		Help:      "Files parsed by format and outcome",
	}, []string{"format", "outcome"})
	parseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "parse_duration_seconds",
		Help:      "Histogram of parse durations in seconds by format",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms up to ~4s
	}, []string{"format"})
)

// Register adds the collectors to the default Prometheus registry. It is
// idempotent.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(entriesIngested, entriesDropped, shapeMismatches, filesParsed, parseDuration)
	})
}

func IncIngested(vocabulary string)    { entriesIngested.WithLabelValues(vocabulary).Inc() }
func IncNotMapped(vocabulary string)   { entriesDropped.WithLabelValues(vocabulary).Inc() }
func IncShapeMismatch(key string)      { shapeMismatches.WithLabelValues(key).Inc() }
func IncParsed(format, outcome string) { filesParsed.WithLabelValues(format, outcome).Inc() }

func ObserveParse(format string, d time.Duration) {
	parseDuration.WithLabelValues(format).Observe(d.Seconds())
}
