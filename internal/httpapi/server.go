// Package httpapi serves the daemon's read-only status endpoints.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/device"
)

// Snapshotter is anything that can report a device snapshot.
type Snapshotter interface {
	Address() string
	Snapshot() device.Snapshot
}

// DeviceStatus is a snapshot plus the human label of what it is showing.
type DeviceStatus struct {
	device.Snapshot
	LightingLabel string `json:"lighting_label"`
}

// EffectInfo describes one catalog entry.
type EffectInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	ID    byte   `json:"id"`
}

type Server struct {
	devices  []Snapshotter
	catalog  *catalog.Catalog
	gatherer prometheus.Gatherer
}

// NewServer creates a server. A nil gatherer disables /metrics.
func NewServer(devices []Snapshotter, cat *catalog.Catalog, gatherer prometheus.Gatherer) *Server {
	return &Server{devices: devices, catalog: cat, gatherer: gatherer}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/api", func(r chi.Router) {
		s.RegisterRoutes(r)
	})
	return r
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/devices", s.handleDevices)
	r.Get("/devices/{address}", s.handleDevice)
	r.Get("/effects", s.handleEffects)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) status(d Snapshotter) DeviceStatus {
	snap := d.Snapshot()
	return DeviceStatus{
		Snapshot:      snap,
		LightingLabel: snap.Lighting.Entry(s.catalog).Label,
	}
}

func (s *Server) handleDevices(w http.ResponseWriter, _ *http.Request) {
	out := make([]DeviceStatus, 0, len(s.devices))
	for _, d := range s.devices {
		out = append(out, s.status(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleDevice accepts the address with or without colons, in any case.
func (s *Server) handleDevice(w http.ResponseWriter, r *http.Request) {
	want := normalize(chi.URLParam(r, "address"))
	for _, d := range s.devices {
		if normalize(d.Address()) == want {
			writeJSON(w, http.StatusOK, s.status(d))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown device"})
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	kind := strings.ToLower(r.URL.Query().Get("kind"))
	entries := s.catalog.Entries()
	out := make([]EffectInfo, 0, len(entries))
	for _, e := range entries {
		if kind != "" && e.Kind.String() != kind {
			continue
		}
		out = append(out, EffectInfo{Key: e.Key, Label: e.Label, Kind: e.Kind.String(), ID: e.ID})
	}
	writeJSON(w, http.StatusOK, out)
}

func normalize(address string) string {
	return strings.ToLower(strings.NewReplacer(":", "", "-", "").Replace(address))
}
