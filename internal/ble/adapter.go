// Package ble maintains the Bluetooth Low Energy link to a MELK / ELK-BLEDOM
// LED strip controller. It handles discovery, connection management with
// automatic reconnection, and paced command writes.
package ble

import (
	"context"
	"errors"
)

// WriteCharUUID is the GATT characteristic that accepts command frames.
const WriteCharUUID = "0000fff3-0000-1000-8000-00805f9b34fb"

var (
	// ErrDeviceNotFound means the address cannot be resolved to a reachable
	// peripheral. It is never retried.
	ErrDeviceNotFound = errors.New("ble: device not found")
	// ErrTransport marks transient link failures that are worth retrying.
	ErrTransport = errors.New("ble: transport error")
	// ErrNotConnected is returned when a write finds no cached characteristic.
	ErrNotConnected = errors.New("ble: not connected")
	// ErrCharacteristicNotFound means the device lacks the write characteristic.
	ErrCharacteristicNotFound = errors.New("ble: write characteristic not found")
)

// Characteristic represents a writable BLE GATT characteristic.
type Characteristic interface {
	// Write sends data without requesting a response.
	Write(data []byte) error
}

// Device represents a discovered BLE peripheral.
type Device struct {
	Name    string
	Address string
	RSSI    int
}

// Connection represents an active BLE connection to a peripheral.
type Connection interface {
	// DiscoverCharacteristic finds a characteristic by UUID in any service.
	DiscoverCharacteristic(charUUID string) (Characteristic, error)
	// Disconnect terminates the connection.
	Disconnect() error
	// OnDisconnect registers a callback invoked when the connection drops.
	OnDisconnect(callback func())
}

// Adapter abstracts the BLE hardware adapter for testing.
type Adapter interface {
	// Enable powers on the BLE adapter. Safe to call more than once.
	Enable() error
	// Scan reports every advertising peripheral until ctx is done.
	Scan(ctx context.Context) ([]Device, error)
	// Connect establishes a connection to the device with the given address.
	Connect(ctx context.Context, address string) (Connection, error)
}
