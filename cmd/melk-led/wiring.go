package main

import (
	"github.com/chaz8081/melk-led/internal/ble"
	"github.com/chaz8081/melk-led/internal/config"
	"github.com/chaz8081/melk-led/internal/device"
	"github.com/chaz8081/melk-led/internal/events"
	"github.com/chaz8081/melk-led/internal/metrics"
	"github.com/chaz8081/melk-led/internal/state"
)

// deps are the process-wide collaborators shared by every session. Metrics
// and Events may be nil.
type deps struct {
	adapter ble.Adapter
	store   *state.Store
	metrics *metrics.Metrics
	events  *events.Bus
}

func managerOptions(t config.TimingConfig, dev config.DeviceConfig, d deps) ble.ManagerOptions {
	opts := ble.DefaultManagerOptions()
	opts.Name = dev.DisplayName()
	opts.WriteDelay = t.WriteDelay
	opts.ReconnectDelay = t.ReconnectDelay
	opts.HeartbeatInterval = t.HeartbeatInterval
	opts.LocateTimeout = t.ScanTimeout
	opts.Retry.Attempts = t.RetryAttempts
	opts.Retry.Backoff = t.RetryBackoff
	opts.Metrics = d.metrics
	opts.Events = d.events
	return opts
}

func sessionOptions(t config.TimingConfig, dev config.DeviceConfig, d deps) device.Options {
	opts := device.DefaultOptions()
	opts.Name = dev.DisplayName()
	opts.ConnectDelay = t.ConnectDelay
	opts.MicSettleDelay = t.MicSettleDelay
	opts.Metrics = d.metrics
	opts.Events = d.events
	return opts
}

// newSession builds the BLE manager and session for one configured strip.
func newSession(cfg *config.Config, dev config.DeviceConfig, d deps) *device.Session {
	mgr := ble.NewManager(d.adapter, dev.Address, managerOptions(cfg.Timing, dev, d))
	return device.NewSession(dev.Address, mgr, d.store, sessionOptions(cfg.Timing, dev, d))
}
