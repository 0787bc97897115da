package ble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chaz8081/melk-led/internal/ble/protocol"
	"github.com/chaz8081/melk-led/internal/events"
	"github.com/chaz8081/melk-led/internal/metrics"
)

// ManagerOptions configures connection management for one strip.
type ManagerOptions struct {
	Name              string        // display name used in logs and errors
	WriteDelay        time.Duration // pause after every write; the firmware drops back-to-back frames
	ReconnectDelay    time.Duration // delay before a self-scheduled reconnect after a failed connect
	HeartbeatInterval time.Duration // liveness check period
	LocateTimeout     time.Duration // scan bound when the stack does not know the address; 0 skips the scan
	Retry             RetryPolicy

	Metrics *metrics.Metrics
	Events  *events.Bus
}

// DefaultManagerOptions returns the timings the strip firmware is known to tolerate.
func DefaultManagerOptions() ManagerOptions {
	return ManagerOptions{
		WriteDelay:        150 * time.Millisecond,
		ReconnectDelay:    5 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		LocateTimeout:     10 * time.Second,
		Retry:             DefaultRetryPolicy(),
	}
}

// Manager owns the single BLE connection to one strip. It reconnects on
// drops, on failed connects (after ReconnectDelay) and from the heartbeat.
// Safe for concurrent use.
type Manager struct {
	adapter Adapter
	address string
	opts    ManagerOptions

	// connectMu serialises connection attempts so concurrent callers never
	// open two links.
	connectMu sync.Mutex

	mu     sync.Mutex
	conn   Connection
	txChar Characteristic

	// auto gates automatic reconnection. Disconnect clears it; any explicit
	// EnsureConnected or Write sets it again.
	auto         atomic.Bool
	reconnecting atomic.Bool
}

// NewManager creates a manager for the device at address. Zero-valued
// options fall back to DefaultManagerOptions.
func NewManager(adapter Adapter, address string, opts ManagerOptions) *Manager {
	def := DefaultManagerOptions()
	if opts.Name == "" {
		opts.Name = address
	}
	if opts.WriteDelay < 0 {
		opts.WriteDelay = 0
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = def.ReconnectDelay
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = def.HeartbeatInterval
	}
	if opts.Retry.Attempts <= 0 {
		opts.Retry.Attempts = def.Retry.Attempts
	}
	if opts.Retry.Retryable == nil {
		opts.Retry.Retryable = IsTransient
	}
	if opts.Retry.OnRetry == nil {
		m := opts.Metrics
		opts.Retry.OnRetry = func(error, int) { m.Retried(address) }
	}

	mgr := &Manager{
		adapter: adapter,
		address: address,
		opts:    opts,
	}
	mgr.auto.Store(true)
	return mgr
}

// Address returns the device address this manager is bound to.
func (m *Manager) Address() string { return m.address }

// Name returns the display name of the device.
func (m *Manager) Name() string { return m.opts.Name }

// Connected reports whether a live connection with a resolved write
// characteristic is cached.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.txChar != nil
}

// EnsureConnected connects if needed, retrying transient failures. When every
// attempt fails it also schedules a reconnect after ReconnectDelay, so the
// link heals without the caller doing anything.
func (m *Manager) EnsureConnected(ctx context.Context) error {
	m.auto.Store(true)
	return m.opts.Retry.Do(ctx, "connect", func() error {
		return m.ensureConnected(ctx)
	})
}

// ensureConnected makes a single connection attempt under the connect lock.
func (m *Manager) ensureConnected(ctx context.Context) error {
	if m.Connected() {
		return nil
	}

	m.connectMu.Lock()
	defer m.connectMu.Unlock()

	// Another caller may have connected while we waited for the lock.
	if m.Connected() {
		return nil
	}

	err := m.dial(ctx)
	m.opts.Metrics.ConnectAttempt(m.address, err == nil)
	if err != nil {
		slog.Error("[BLE] connection failed", "device", m.opts.Name, "error", err)
		m.scheduleReconnect(m.opts.ReconnectDelay)
		return fmt.Errorf("ble: connect %s: %w", m.opts.Name, err)
	}
	return nil
}

func (m *Manager) dial(ctx context.Context) error {
	if err := m.adapter.Enable(); err != nil {
		return err
	}

	conn, err := m.adapter.Connect(ctx, m.address)
	if errors.Is(err, ErrDeviceNotFound) && m.opts.LocateTimeout > 0 {
		// BlueZ only connects to devices it has seen advertise.
		slog.Info("[BLE] device unknown to the stack, scanning", "device", m.opts.Name, "timeout", m.opts.LocateTimeout)
		if _, lerr := Locate(ctx, m.adapter, m.address, m.opts.LocateTimeout); lerr != nil {
			return lerr
		}
		conn, err = m.adapter.Connect(ctx, m.address)
	}
	if err != nil {
		return err
	}

	txChar, err := conn.DiscoverCharacteristic(WriteCharUUID)
	if err != nil {
		_ = conn.Disconnect()
		return err
	}

	conn.OnDisconnect(func() { m.handleDrop(conn) })

	m.mu.Lock()
	m.conn = conn
	m.txChar = txChar
	m.mu.Unlock()

	slog.Info("[BLE] connected", "device", m.opts.Name, "address", m.address)
	m.setLinkState(true)
	return nil
}

// handleDrop reacts to a transport-level disconnect of conn. Drops of
// connections that are no longer current are ignored.
func (m *Manager) handleDrop(conn Connection) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	m.txChar = nil
	m.mu.Unlock()

	m.setLinkState(false)

	if !m.auto.Load() {
		return
	}
	slog.Warn("[BLE] disconnected, reconnecting...", "device", m.opts.Name)
	go func() {
		_ = m.ensureConnected(context.Background())
	}()
}

// dropLink forgets conn after a failed write. Some stacks never report a
// link that died silently, and without this every retry and heartbeat would
// keep using the dead characteristic.
func (m *Manager) dropLink(conn Connection, cause error) {
	m.mu.Lock()
	if m.conn != conn {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	m.txChar = nil
	m.mu.Unlock()

	m.setLinkState(false)
	slog.Warn("[BLE] write failed, dropping link", "device", m.opts.Name, "error", cause)
	// The handle is no longer current, so a disconnect callback it fires is ignored.
	if err := conn.Disconnect(); err != nil {
		slog.Debug("[BLE] disconnect after failed write", "device", m.opts.Name, "error", err)
	}
}

// scheduleReconnect arms one delayed reconnect. Calls while one is already
// pending are dropped.
func (m *Manager) scheduleReconnect(delay time.Duration) {
	if !m.auto.Load() {
		return
	}
	if !m.reconnecting.CompareAndSwap(false, true) {
		return
	}
	slog.Info("[BLE] reconnect scheduled", "device", m.opts.Name, "delay", delay)
	time.AfterFunc(delay, func() {
		m.reconnecting.Store(false)
		if !m.auto.Load() || m.Connected() {
			return
		}
		_ = m.ensureConnected(context.Background())
	})
}

// Heartbeat checks the link every HeartbeatInterval and reconnects when it
// is down. It catches drops the transport never reported. Blocks until ctx
// is done.
func (m *Manager) Heartbeat(ctx context.Context) {
	ticker := time.NewTicker(m.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.Connected() || !m.auto.Load() {
				continue
			}
			slog.Debug("[BLE] heartbeat found link down", "device", m.opts.Name)
			if err := m.ensureConnected(ctx); err != nil {
				slog.Warn("[BLE] heartbeat reconnect failed", "device", m.opts.Name, "error", err)
			}
		}
	}
}

// Write sends one frame without requesting a response, connecting first if
// needed, then waits WriteDelay so the next frame is not dropped.
func (m *Manager) Write(ctx context.Context, frame protocol.Frame) error {
	m.auto.Store(true)

	err := m.opts.Retry.Do(ctx, "write", func() error {
		if err := m.ensureConnected(ctx); err != nil {
			return err
		}
		m.mu.Lock()
		conn, txChar := m.conn, m.txChar
		m.mu.Unlock()
		if txChar == nil {
			return ErrNotConnected
		}
		err := txChar.Write(frame.Bytes())
		if err != nil && IsTransient(err) {
			m.dropLink(conn, err)
		}
		return err
	})
	if err != nil {
		m.opts.Metrics.WriteFailed(m.address)
		return fmt.Errorf("ble: write %s to %s: %w", frame, m.opts.Name, err)
	}

	m.opts.Metrics.FrameWritten(m.address)
	slog.Debug("[BLE] wrote frame", "device", m.opts.Name, "frame", frame.String())

	pause(ctx, m.opts.WriteDelay)
	return nil
}

// Disconnect drops the cached handle and closes the link. Automatic
// reconnection stays off until the next EnsureConnected or Write. Safe to
// call repeatedly.
func (m *Manager) Disconnect() error {
	m.auto.Store(false)

	m.connectMu.Lock()
	defer m.connectMu.Unlock()

	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.txChar = nil
	m.mu.Unlock()

	if conn == nil {
		return nil
	}
	m.setLinkState(false)
	slog.Info("[BLE] disconnecting", "device", m.opts.Name)
	if err := conn.Disconnect(); err != nil {
		return fmt.Errorf("ble: disconnect %s: %w", m.opts.Name, err)
	}
	return nil
}

func (m *Manager) setLinkState(connected bool) {
	m.opts.Metrics.SetConnected(m.address, connected)
	m.opts.Events.Publish(events.ConnectionChanged{Address: m.address, Connected: connected})
}

// pause sleeps for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
