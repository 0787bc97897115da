package ble

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// stripNameHints are the advertised-name fragments MELK and ELK-BLEDOM
// controllers use.
var stripNameHints = []string{"ELK", "LED", "MELK"}

// IsStrip reports whether an advertised name looks like a supported strip.
func IsStrip(name string) bool {
	upper := strings.ToUpper(name)
	for _, hint := range stripNameHints {
		if strings.Contains(upper, hint) {
			return true
		}
	}
	return false
}

// ScanForStrips scans for timeout and returns strips sorted by signal strength.
func ScanForStrips(ctx context.Context, adapter Adapter, timeout time.Duration) ([]Device, error) {
	if err := adapter.Enable(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	devices, err := adapter.Scan(ctx)
	if err != nil {
		return nil, err
	}

	var strips []Device
	for _, d := range devices {
		if d.Name != "" && IsStrip(d.Name) {
			strips = append(strips, d)
		}
	}
	sort.Slice(strips, func(i, j int) bool { return strips[i].RSSI > strips[j].RSSI })
	return strips, nil
}

// Locate scans until the device with address shows up or timeout expires.
// It returns ErrDeviceNotFound when the device never advertises, which the
// caller should treat as "retry initialization later".
func Locate(ctx context.Context, adapter Adapter, address string, timeout time.Duration) (Device, error) {
	if err := adapter.Enable(); err != nil {
		return Device{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	devices, err := adapter.Scan(ctx)
	if err != nil {
		return Device{}, err
	}

	want := normalizeAddress(address)
	for _, d := range devices {
		if normalizeAddress(d.Address) == want {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, address)
}
