// This file is part of pcsx2rec.
//
// pcsx2rec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pcsx2rec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pcsx2rec.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics instruments the recording subsystem with Prometheus
// counters and gauges. The metrics are registered on a private registry and
// served by Handler().
//
// All methods are safe to call on a nil *Metrics, in which case nothing is
// recorded. This allows the recording package to run without metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the recording subsystem.
type Metrics struct {
	registry        *prometheus.Registry
	bytesRecorded   prometheus.Counter
	bytesReplayed   prometheus.Counter
	readFailures    prometheus.Counter
	writeFailures   prometheus.Counter
	redoIncrements  prometheus.Counter
	modeSwitches    *prometheus.CounterVec
	reconciliations *prometheus.CounterVec
	frameCounter    prometheus.Gauge
	totalFrames     prometheus.Gauge
	mode            prometheus.Gauge
}

// New creates and registers Prometheus metrics for the recording subsystem.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		bytesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcsx2rec_bytes_recorded_total",
			Help: "Total number of controller bytes written to the movie file",
		}),
		bytesReplayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcsx2rec_bytes_replayed_total",
			Help: "Total number of controller bytes read from the movie file",
		}),
		readFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcsx2rec_read_failures_total",
			Help: "Total number of failed reads from the movie file",
		}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcsx2rec_write_failures_total",
			Help: "Total number of failed writes to the movie file",
		}),
		redoIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcsx2rec_redo_increments_total",
			Help: "Total number of times recorded frames were overwritten",
		}),
		modeSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pcsx2rec_mode_switches_total",
			Help: "Total number of switches into each session mode",
		}, []string{"mode"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pcsx2rec_reconciliations_total",
			Help: "Total number of frame counter reconciliations after a savestate load, by outcome",
		}, []string{"outcome"}),
		frameCounter: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcsx2rec_frame_counter",
			Help: "Current frame of the recording session",
		}),
		totalFrames: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcsx2rec_total_frames",
			Help: "Total number of frames in the movie file",
		}),
		mode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcsx2rec_mode",
			Help: "Session mode (0 inactive, 1 recording, 2 replaying)",
		}),
	}

	registry.MustRegister(
		m.bytesRecorded,
		m.bytesReplayed,
		m.readFailures,
		m.writeFailures,
		m.redoIncrements,
		m.modeSwitches,
		m.reconciliations,
		m.frameCounter,
		m.totalFrames,
		m.mode,
	)

	return m
}

// Registry returns the private registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// IncBytesRecorded increments the bytes recorded counter.
func (m *Metrics) IncBytesRecorded() {
	if m == nil {
		return
	}
	m.bytesRecorded.Inc()
}

// IncBytesReplayed increments the bytes replayed counter.
func (m *Metrics) IncBytesReplayed() {
	if m == nil {
		return
	}
	m.bytesReplayed.Inc()
}

// IncReadFailures increments the read failures counter.
func (m *Metrics) IncReadFailures() {
	if m == nil {
		return
	}
	m.readFailures.Inc()
}

// IncWriteFailures increments the write failures counter.
func (m *Metrics) IncWriteFailures() {
	if m == nil {
		return
	}
	m.writeFailures.Inc()
}

// IncRedo increments the redo counter.
func (m *Metrics) IncRedo() {
	if m == nil {
		return
	}
	m.redoIncrements.Inc()
}

// IncModeSwitch increments the mode switch counter for the named mode.
func (m *Metrics) IncModeSwitch(mode string) {
	if m == nil {
		return
	}
	m.modeSwitches.WithLabelValues(mode).Inc()
}

// IncReconciliation increments the reconciliation counter for the named
// outcome.
func (m *Metrics) IncReconciliation(outcome string) {
	if m == nil {
		return
	}
	m.reconciliations.WithLabelValues(outcome).Inc()
}

// SetSession sets the session gauges.
func (m *Metrics) SetSession(mode int, frameCounter int32, totalFrames int32) {
	if m == nil {
		return
	}
	m.mode.Set(float64(mode))
	m.frameCounter.Set(float64(frameCounter))
	m.totalFrames.Set(float64(totalFrames))
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
