// Package device implements the per-strip session: the public operation set
// on top of the BLE connection manager, the multi-frame sequences the
// firmware needs, and the microphone mode state machine.
package device

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chaz8081/melk-led/internal/ble/protocol"
	"github.com/chaz8081/melk-led/internal/events"
	"github.com/chaz8081/melk-led/internal/metrics"
	"github.com/chaz8081/melk-led/internal/state"
)

// Transport is the connection manager a session writes through.
// *ble.Manager satisfies it.
type Transport interface {
	EnsureConnected(ctx context.Context) error
	Write(ctx context.Context, frame protocol.Frame) error
	Heartbeat(ctx context.Context)
	Disconnect() error
	Connected() bool
}

// Store persists power, color and brightness across restarts.
// *state.Store satisfies it.
type Store interface {
	Load(address string) (state.Record, bool)
	Save(address string, rec state.Record) error
}

// Starting values for settings the strip cannot report. The microphone ones
// are pushed on entering microphone mode until the user picks others.
const (
	DefaultMicSensitivity = 60
	DefaultMicEQ          = 0x80
	DefaultEffectSpeed    = 50
)

// Options configures the timings of a session.
type Options struct {
	Name string

	ConnectDelay    time.Duration // grace period before the first connect
	CommitDelay     time.Duration // between the brightness frame and the color frame that commits it
	MicSettleDelay  time.Duration // after the static color frame, before microphone enable
	MicApplyDelay   time.Duration // after microphone enable, between sensitivity and EQ frames
	MicRestoreDelay time.Duration // after microphone disable, before restoring the saved lighting

	Metrics *metrics.Metrics
	Events  *events.Bus
}

// DefaultOptions returns the timings the strips are known to need.
func DefaultOptions() Options {
	return Options{
		ConnectDelay:    3 * time.Second,
		CommitDelay:     100 * time.Millisecond,
		MicSettleDelay:  200 * time.Millisecond,
		MicApplyDelay:   100 * time.Millisecond,
		MicRestoreDelay: 150 * time.Millisecond,
	}
}

// Session is the long-lived object bound to one strip address.
//
// Mutating operations are serialised by opMu and update fields only after
// the frames they send were written. mu guards the fields themselves and is
// never held across I/O, so getters stay responsive during slow writes.
type Session struct {
	address   string
	transport Transport
	store     Store
	opts      Options

	opMu sync.Mutex

	mu               sync.Mutex
	isOn             bool
	rgb              [3]uint8
	brightness       int
	effectSpeed      int
	effectBrightness int
	lighting         Lighting
	mode             Mode
	saved            Lighting // lighting to restore when leaving microphone mode
	micOn            bool
	micSensitivity   int
	micEQ            byte
	loaded           bool // persisted state adopted or deliberately skipped
	dirty            bool // at least one mutation applied
	tasks            *Tasks
}

// NewSession creates a session for address. Fields start at the store
// defaults until Start restores the persisted record.
func NewSession(address string, transport Transport, store Store, opts Options) *Session {
	if opts.Name == "" {
		opts.Name = address
	}
	def := state.DefaultRecord()
	s := &Session{
		address:          address,
		transport:        transport,
		store:            store,
		opts:             opts,
		isOn:             def.IsOn,
		rgb:              toRGB(def.RGB),
		brightness:       def.Brightness,
		effectSpeed:      DefaultEffectSpeed,
		effectBrightness: 100,
		lighting:         Static(),
		micSensitivity:   DefaultMicSensitivity,
		micEQ:            DefaultMicEQ,
	}
	return s
}

// Address returns the strip address.
func (s *Session) Address() string { return s.address }

// Name returns the display name.
func (s *Session) Name() string { return s.opts.Name }

// IsOn reports the assumed power state.
func (s *Session) IsOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOn
}

// Brightness returns the assumed global brightness, 0..255.
func (s *Session) Brightness() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightness
}

// RGB returns the assumed static color.
func (s *Session) RGB() [3]uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rgb
}

// Lighting returns what the strip is assumed to be showing.
func (s *Session) Lighting() Lighting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lighting
}

// Mode returns the current microphone state machine mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// EffectSpeed returns the last effect speed sent, 0..100.
func (s *Session) EffectSpeed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectSpeed
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Address          string   `json:"address"`
	Name             string   `json:"name"`
	Connected        bool     `json:"connected"`
	IsOn             bool     `json:"is_on"`
	RGB              [3]uint8 `json:"rgb"`
	Brightness       int      `json:"brightness"`
	EffectSpeed      int      `json:"effect_speed"`
	EffectBrightness int      `json:"effect_brightness"`
	Lighting         Lighting `json:"lighting"`
	Mode             Mode     `json:"mode"`
	Microphone       bool     `json:"microphone"`
	MicSensitivity   int      `json:"mic_sensitivity"`
	MicEQ            byte     `json:"mic_eq"`
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	connected := s.transport.Connected()
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Address:          s.address,
		Name:             s.opts.Name,
		Connected:        connected,
		IsOn:             s.isOn,
		RGB:              s.rgb,
		Brightness:       s.brightness,
		EffectSpeed:      s.effectSpeed,
		EffectBrightness: s.effectBrightness,
		Lighting:         s.lighting,
		Mode:             s.mode,
		Microphone:       s.micOn,
		MicSensitivity:   s.micSensitivity,
		MicEQ:            s.micEQ,
	}
}

// update applies fn to the fields under mu and marks the session dirty.
func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	s.dirty = true
	s.mu.Unlock()
}

// persist saves power, color and brightness. Failures are logged and
// counted, never returned.
func (s *Session) persist() {
	s.mu.Lock()
	rec := state.Record{
		IsOn:       s.isOn,
		RGB:        [3]int{int(s.rgb[0]), int(s.rgb[1]), int(s.rgb[2])},
		Brightness: s.brightness,
	}
	s.mu.Unlock()

	if err := s.store.Save(s.address, rec); err != nil {
		slog.Error("[device] failed to save state", "device", s.opts.Name, "error", err)
		s.opts.Metrics.StateSaveFailed(s.address)
	}
}

// publish announces the current state on the event bus.
func (s *Session) publish() {
	if s.opts.Events == nil {
		return
	}
	s.mu.Lock()
	ev := events.StateChanged{
		Address:    s.address,
		IsOn:       s.isOn,
		RGB:        s.rgb,
		Brightness: s.brightness,
		Lighting:   s.lighting.Kind.String(),
		ID:         s.lighting.ID,
		Microphone: s.micOn,
	}
	s.mu.Unlock()
	s.opts.Events.Publish(ev)
}

// restore adopts the persisted record unless an operation already changed
// the fields.
func (s *Session) restore() {
	rec, found := s.store.Load(s.address)

	s.mu.Lock()
	if s.dirty {
		s.loaded = true
		s.mu.Unlock()
		slog.Info("[device] state changed before restore, keeping live values", "device", s.opts.Name)
		return
	}
	s.isOn = rec.IsOn
	s.rgb = toRGB(rec.RGB)
	s.brightness = clampInt(rec.Brightness, 0, 255)
	s.loaded = true
	s.mu.Unlock()

	slog.Info("[device] loaded state",
		"device", s.opts.Name,
		"found", found,
		"is_on", rec.IsOn,
		"rgb", rec.RGB,
		"brightness", rec.Brightness,
	)
	s.publish()
}

func toRGB(c [3]int) [3]uint8 {
	return [3]uint8{
		uint8(clampInt(c[0], 0, 255)),
		uint8(clampInt(c[1], 0, 255)),
		uint8(clampInt(c[2], 0, 255)),
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// pause sleeps for d or until ctx is done, reporting whether the full delay
// elapsed.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
