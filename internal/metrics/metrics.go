// Package metrics exposes Prometheus collectors for the BLE link and the
// device sessions. All methods are safe on a nil *Metrics, so components can
// run without instrumentation in tests and one-shot CLI commands.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "melk_led"

// Metrics holds the collectors for every managed strip, labelled by address.
type Metrics struct {
	framesWritten   *prometheus.CounterVec
	writeFailures   *prometheus.CounterVec
	connectAttempts *prometheus.CounterVec
	retries         *prometheus.CounterVec
	connected       *prometheus.GaugeVec
	stateSaveErrors *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		framesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ble",
			Name:      "frames_written_total",
			Help:      "Command frames written to the strip.",
		}, []string{"device"}),
		writeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ble",
			Name:      "write_failures_total",
			Help:      "Writes that failed after all retries.",
		}, []string{"device"}),
		connectAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ble",
			Name:      "connect_attempts_total",
			Help:      "Connection attempts by result.",
		}, []string{"device", "result"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ble",
			Name:      "retries_total",
			Help:      "Delayed retries of transient BLE failures.",
		}, []string{"device"}),
		connected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ble",
			Name:      "connected",
			Help:      "1 while a live connection to the strip is held.",
		}, []string{"device"}),
		stateSaveErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "save_errors_total",
			Help:      "Failed writes of the persisted state file.",
		}, []string{"device"}),
	}
	reg.MustRegister(
		m.framesWritten,
		m.writeFailures,
		m.connectAttempts,
		m.retries,
		m.connected,
		m.stateSaveErrors,
	)
	return m
}

// FrameWritten counts one successful frame write.
func (m *Metrics) FrameWritten(device string) {
	if m == nil {
		return
	}
	m.framesWritten.WithLabelValues(device).Inc()
}

// WriteFailed counts a write that exhausted its retries.
func (m *Metrics) WriteFailed(device string) {
	if m == nil {
		return
	}
	m.writeFailures.WithLabelValues(device).Inc()
}

// ConnectAttempt records a connection attempt outcome.
func (m *Metrics) ConnectAttempt(device string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.connectAttempts.WithLabelValues(device, result).Inc()
}

// Retried counts one delayed retry.
func (m *Metrics) Retried(device string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(device).Inc()
}

// SetConnected flips the connected gauge.
func (m *Metrics) SetConnected(device string, connected bool) {
	if m == nil {
		return
	}
	v := 0.0
	if connected {
		v = 1
	}
	m.connected.WithLabelValues(device).Set(v)
}

// StateSaveFailed counts a failed state file write.
func (m *Metrics) StateSaveFailed(device string) {
	if m == nil {
		return
	}
	m.stateSaveErrors.WithLabelValues(device).Inc()
}
