package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tinygo.org/x/bluetooth"
)

// TinyGoAdapter wraps tinygo-org/bluetooth. On Linux it talks to BlueZ and
// addresses are MACs; on macOS it uses CoreBluetooth and addresses are
// CoreBluetooth UUIDs. Both are carried as plain strings.
type TinyGoAdapter struct {
	adapter *bluetooth.Adapter

	enableOnce sync.Once
	enableErr  error

	// mu protects the connections map.
	mu          sync.Mutex
	connections map[string]*tinyGoConnection // keyed by upper-case address
}

// NewTinyGoAdapter creates a BLE adapter on the system default controller.
func NewTinyGoAdapter() *TinyGoAdapter {
	return &TinyGoAdapter{
		adapter:     bluetooth.DefaultAdapter,
		connections: make(map[string]*tinyGoConnection),
	}
}

// Compile-time check that TinyGoAdapter implements Adapter.
var _ Adapter = (*TinyGoAdapter)(nil)

func (a *TinyGoAdapter) Enable() error {
	a.enableOnce.Do(func() {
		if err := a.adapter.Enable(); err != nil {
			a.enableErr = fmt.Errorf("ble: enable adapter: %w", err)
			return
		}

		// One adapter-level handler fans disconnects out to the connection
		// that owns the address.
		a.adapter.SetConnectHandler(func(device bluetooth.Device, connected bool) {
			if connected {
				return
			}
			key := normalizeAddress(device.Address.String())
			a.mu.Lock()
			conn, ok := a.connections[key]
			if ok {
				delete(a.connections, key)
			}
			a.mu.Unlock()
			if ok {
				conn.fireDisconnect()
			}
		})
	})
	return a.enableErr
}

func (a *TinyGoAdapter) Scan(ctx context.Context) ([]Device, error) {
	var mu sync.Mutex
	var devices []Device
	seen := make(map[string]bool)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = a.adapter.StopScan()
		case <-done:
		}
	}()

	err := a.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		addr := result.Address.String()
		mu.Lock()
		defer mu.Unlock()
		if seen[addr] {
			return
		}
		seen[addr] = true
		devices = append(devices, Device{
			Name:    result.LocalName(),
			Address: addr,
			RSSI:    int(result.RSSI),
		})
	})
	close(done)

	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("ble: scan: %w", err)
	}
	return devices, nil
}

func (a *TinyGoAdapter) Connect(ctx context.Context, address string) (Connection, error) {
	var addr bluetooth.Address
	addr.Set(address)

	// tinygo/bluetooth's Connect blocks with its own timeout; ctx only
	// shortens how long we wait for it.
	type connectResult struct {
		device bluetooth.Device
		err    error
	}
	ch := make(chan connectResult, 1)
	go func() {
		device, err := a.adapter.Connect(addr, bluetooth.ConnectionParams{})
		ch <- connectResult{device, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("ble: connect to %s: %w", address, ctx.Err())
	case result := <-ch:
		if result.err != nil {
			return nil, fmt.Errorf("ble: connect to %s: %w", address, classify(result.err))
		}
		conn := &tinyGoConnection{device: result.device}

		a.mu.Lock()
		a.connections[normalizeAddress(address)] = conn
		a.mu.Unlock()

		return conn, nil
	}
}

type tinyGoConnection struct {
	device bluetooth.Device

	mu           sync.Mutex
	disconnectCb func()
}

func (c *tinyGoConnection) DiscoverCharacteristic(charUUID string) (Characteristic, error) {
	want, err := bluetooth.ParseUUID(charUUID)
	if err != nil {
		return nil, fmt.Errorf("ble: parse characteristic UUID: %w", err)
	}

	svcs, err := c.device.DiscoverServices(nil)
	if err != nil {
		return nil, fmt.Errorf("ble: discover services: %w", classify(err))
	}
	for _, svc := range svcs {
		chars, err := svc.DiscoverCharacteristics([]bluetooth.UUID{want})
		if err != nil || len(chars) == 0 {
			continue
		}
		return &tinyGoCharacteristic{char: chars[0]}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCharacteristicNotFound, charUUID)
}

func (c *tinyGoConnection) Disconnect() error {
	if err := c.device.Disconnect(); err != nil {
		return fmt.Errorf("ble: disconnect: %w", err)
	}
	return nil
}

func (c *tinyGoConnection) OnDisconnect(cb func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectCb = cb
}

func (c *tinyGoConnection) fireDisconnect() {
	c.mu.Lock()
	cb := c.disconnectCb
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

type tinyGoCharacteristic struct {
	char bluetooth.DeviceCharacteristic
}

func (c *tinyGoCharacteristic) Write(data []byte) error {
	if _, err := c.char.WriteWithoutResponse(data); err != nil {
		return fmt.Errorf("ble: write: %w", classify(err))
	}
	return nil
}

// classify tags stack errors as either ErrDeviceNotFound or ErrTransport so
// the retry policy can tell them apart. BlueZ and CoreBluetooth only expose
// these conditions as message text.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrDeviceNotFound) || errors.Is(err, ErrTransport) {
		return err
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unknownobject") ||
		strings.Contains(msg, "device not found") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "no such device") {
		return fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}

func normalizeAddress(addr string) string {
	return strings.ToUpper(strings.TrimSpace(addr))
}
