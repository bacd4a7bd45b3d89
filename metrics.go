// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateformat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records counts of formatting operations. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	formats            *prometheus.CounterVec
	resolutionFailures prometheus.Counter
	unknownPatterns    prometheus.Counter
}

// NewMetrics creates and registers the metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		formats: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dateformat_format_total",
			Help: "Total number of dates formatted with period substitution, by format kind.",
		}, []string{"kind"}),
		resolutionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dateformat_period_resolution_failures_total",
			Help: "Total number of period labels that could not be determined.",
		}),
		unknownPatterns: factory.NewCounter(prometheus.CounterOpts{
			Name: "dateformat_unknown_pattern_total",
			Help: "Total number of requests for unknown named formats.",
		}),
	}
}

func (m *Metrics) format(kind string) {
	if m != nil {
		m.formats.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) resolutionFailure() {
	if m != nil {
		m.resolutionFailures.Inc()
	}
}

func (m *Metrics) unknownPattern() {
	if m != nil {
		m.unknownPatterns.Inc()
	}
}
