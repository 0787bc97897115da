package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.FrameWritten("AA")
		m.WriteFailed("AA")
		m.ConnectAttempt("AA", true)
		m.Retried("AA")
		m.SetConnected("AA", true)
		m.StateSaveFailed("AA")
	})
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.FrameWritten("AA")
	m.FrameWritten("AA")
	m.ConnectAttempt("AA", false)
	m.ConnectAttempt("AA", true)
	m.SetConnected("AA", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.framesWritten.WithLabelValues("AA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connectAttempts.WithLabelValues("AA", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connectAttempts.WithLabelValues("AA", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.connected.WithLabelValues("AA")))

	m.SetConnected("AA", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.connected.WithLabelValues("AA")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
