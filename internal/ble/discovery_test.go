package ble

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIsStrip(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ELK-BLEDOM", true},
		{"MELK-OA10", true},
		{"LEDnetWF", true},
		{"elk-bledom0c", true},
		{"Pixel 8", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStrip(tt.name); got != tt.want {
			t.Errorf("IsStrip(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScanForStripsFiltersAndSorts(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "MELK-OA10", Address: "AA:AA:AA:AA:AA:01", RSSI: -80},
		{Name: "Headphones", Address: "AA:AA:AA:AA:AA:02", RSSI: -30},
		{Name: "ELK-BLEDOM", Address: "AA:AA:AA:AA:AA:03", RSSI: -50},
		{Name: "", Address: "AA:AA:AA:AA:AA:04", RSSI: -20},
	})

	strips, err := ScanForStrips(context.Background(), adapter, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("ScanForStrips() error = %v", err)
	}
	if len(strips) != 2 {
		t.Fatalf("got %d strips, want 2", len(strips))
	}
	if strips[0].Name != "ELK-BLEDOM" || strips[1].Name != "MELK-OA10" {
		t.Errorf("strips not sorted by RSSI: %+v", strips)
	}
}

func TestLocate(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "ELK-BLEDOM", Address: "be:ff:20:00:0a:1c", RSSI: -50},
	})

	d, err := Locate(context.Background(), adapter, testAddr, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if d.Name != "ELK-BLEDOM" {
		t.Errorf("Locate() = %+v", d)
	}

	_, err = Locate(context.Background(), adapter, "00:00:00:00:00:00", 10*time.Millisecond)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Locate() missing device error = %v, want ErrDeviceNotFound", err)
	}
}
