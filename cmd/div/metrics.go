// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kraklabs/div/pkg/division"
)

// runMetrics holds Prometheus metrics for a single invocation.
//
// Each run registers into its own registry, never the global default.
type runMetrics struct {
	registry *prometheus.Registry

	operations     prometheus.Counter
	divisionByZero prometheus.Counter
	overflow       prometheus.Counter
	inputErrors    prometheus.Counter

	lastRun  prometheus.Gauge
	duration prometheus.Histogram
}

func newRunMetrics() *runMetrics {
	m := &runMetrics{
		registry:       prometheus.NewRegistry(),
		operations:     prometheus.NewCounter(prometheus.CounterOpts{Name: "div_operations_total", Help: "Divisions attempted"}),
		divisionByZero: prometheus.NewCounter(prometheus.CounterOpts{Name: "div_division_by_zero_total", Help: "Divisions rejected for a zero divisor"}),
		overflow:       prometheus.NewCounter(prometheus.CounterOpts{Name: "div_overflow_total", Help: "Divisions rejected for integer overflow"}),
		inputErrors:    prometheus.NewCounter(prometheus.CounterOpts{Name: "div_input_errors_total", Help: "Runs that failed to read two integers"}),
		lastRun:        prometheus.NewGauge(prometheus.GaugeOpts{Name: "div_last_run_timestamp_seconds", Help: "Unix time of the last run"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "div_run_seconds",
			Help:    "Duration of a run from start to output",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	m.registry.MustRegister(
		m.operations, m.divisionByZero, m.overflow, m.inputErrors,
		m.lastRun, m.duration,
	)
	return m
}

// recordDivision counts one division and its failure kind, if any.
func (m *runMetrics) recordDivision(err error) {
	m.operations.Inc()
	switch {
	case stderrors.Is(err, division.ErrDivisionByZero):
		m.divisionByZero.Inc()
	case stderrors.Is(err, division.ErrOverflow):
		m.overflow.Inc()
	}
}

func (m *runMetrics) recordInputError() { m.inputErrors.Inc() }

// finish stamps the run duration and completion time.
func (m *runMetrics) finish(start time.Time) {
	m.duration.Observe(time.Since(start).Seconds())
	m.lastRun.SetToCurrentTime()
}

// writeTextfile writes all metrics to path in the text exposition format.
//
// The file is replaced atomically, as the node_exporter textfile collector expects.
func (m *runMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
