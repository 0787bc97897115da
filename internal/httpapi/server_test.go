package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/device"
	"github.com/chaz8081/melk-led/internal/metrics"
)

type stubDevice struct {
	snap device.Snapshot
}

func (d stubDevice) Address() string           { return d.snap.Address }
func (d stubDevice) Snapshot() device.Snapshot { return d.snap }

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.FrameWritten("BE:FF:20:00:0A:1C")

	devices := []Snapshotter{
		stubDevice{device.Snapshot{
			Address:    "BE:FF:20:00:0A:1C",
			Name:       "Desk",
			Connected:  true,
			IsOn:       true,
			RGB:        [3]uint8{255, 0, 0},
			Brightness: 128,
			Lighting:   device.EffectLighting(194),
		}},
		stubDevice{device.Snapshot{
			Address:    "BE:FF:20:00:0B:2D",
			Name:       "Shelf",
			Lighting:   device.Static(),
			Mode:       device.ModeMicrophone,
			Microphone: true,
		}},
	}
	return NewServer(devices, catalog.New(), reg), reg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := get(t, srv.Handler(), "/healthz")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestDevices(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := get(t, srv.Handler(), "/api/devices")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected device count: got %d want 2", len(got))
	}

	desk := got[0]
	if desk["address"] != "BE:FF:20:00:0A:1C" || desk["connected"] != true {
		t.Fatalf("unexpected desk status: %+v", desk)
	}
	if desk["lighting_label"] != "Jump: RGB" {
		t.Fatalf("lighting_label = %v, want %q", desk["lighting_label"], "Jump: RGB")
	}
	lighting, ok := desk["lighting"].(map[string]any)
	if !ok || lighting["kind"] != "effect" || lighting["id"] != float64(194) {
		t.Fatalf("unexpected lighting: %+v", desk["lighting"])
	}
	if desk["mode"] != "normal" {
		t.Fatalf("mode = %v, want normal", desk["mode"])
	}

	shelf := got[1]
	if shelf["mode"] != "microphone" || shelf["microphone"] != true {
		t.Fatalf("unexpected shelf status: %+v", shelf)
	}
	if shelf["lighting_label"] != "Static Color" {
		t.Fatalf("lighting_label = %v, want %q", shelf["lighting_label"], "Static Color")
	}
}

func TestDeviceByAddress(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	for _, path := range []string{
		"/api/devices/BE:FF:20:00:0B:2D",
		"/api/devices/beff20000b2d",
		"/api/devices/be-ff-20-00-0b-2d",
	} {
		rr := get(t, h, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", path, rr.Code)
		}
		var got DeviceStatus
		if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: response is not valid json: %v", path, err)
		}
		if got.Name != "Shelf" {
			t.Fatalf("%s: got device %q", path, got.Name)
		}
		if got.Mode != device.ModeMicrophone || got.Lighting != device.Static() {
			t.Fatalf("%s: mode %v lighting %v did not decode", path, got.Mode, got.Lighting)
		}
	}

	rr := get(t, h, "/api/devices/AA:AA:AA:AA:AA:AA")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown device: got %d want %d", rr.Code, http.StatusNotFound)
	}
}

func TestEffects(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()
	cat := catalog.New()

	var all []EffectInfo
	rr := get(t, h, "/api/effects")
	if err := json.Unmarshal(rr.Body.Bytes(), &all); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if len(all) != len(cat.Entries()) {
		t.Fatalf("unexpected entry count: got %d want %d", len(all), len(cat.Entries()))
	}

	var scenes []EffectInfo
	rr = get(t, h, "/api/effects?kind=scene")
	if err := json.Unmarshal(rr.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("response is not valid json: %v", err)
	}
	if len(scenes) != len(cat.Scenes()) {
		t.Fatalf("unexpected scene count: got %d want %d", len(scenes), len(cat.Scenes()))
	}
	for _, s := range scenes {
		if s.Kind != "scene" {
			t.Fatalf("non-scene in filtered list: %+v", s)
		}
	}
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := get(t, srv.Handler(), "/metrics")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "melk_led_ble_frames_written_total") {
		t.Fatalf("metrics output missing frame counter:\n%s", rr.Body.String())
	}
}

func TestMetricsDisabledWithoutGatherer(t *testing.T) {
	srv := NewServer(nil, catalog.New(), nil)
	rr := get(t, srv.Handler(), "/metrics")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNotFound)
	}

	rr = get(t, srv.Handler(), "/api/devices")
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}
