package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/device"
	"github.com/chaz8081/melk-led/internal/events"
)

// Availability payloads.
const (
	PayloadOnline  = "online"
	PayloadOffline = "offline"
)

// Session is the subset of *device.Session the bridge drives.
type Session interface {
	Address() string
	Name() string
	Snapshot() device.Snapshot
	Resume(ctx context.Context) error
	TurnOn(ctx context.Context) error
	TurnOff(ctx context.Context) error
	SetBrightness(ctx context.Context, value int) error
	SetColor(ctx context.Context, r, g, b int) error
	ApplyLighting(ctx context.Context, l device.Lighting) error
	EnterMicrophoneMode(ctx context.Context) error
	ExitMicrophoneMode(ctx context.Context) error
	CancelMicrophoneMode(ctx context.Context) error
	SetEffectSpeed(ctx context.Context, speed int) error
	SetEffectBrightness(ctx context.Context, brightness int) error
	SetMicrophoneSensitivity(ctx context.Context, sensitivity int) error
	SetMicrophoneEQMode(ctx context.Context, mode int) error
}

var _ Session = (*device.Session)(nil)

// BridgeOptions configures topic layout.
type BridgeOptions struct {
	DiscoveryPrefix string // e.g. "homeassistant"
	BaseTopic       string // e.g. "melk-led"
}

// Bridge exposes sessions as Home Assistant entities.
type Bridge struct {
	client   ClientAPI
	catalog  *catalog.Catalog
	opts     BridgeOptions
	sessions map[string]Session // by node id

	mu     sync.Mutex
	ctx    context.Context
	unsubs []func()
}

// NewBridge creates a bridge for sessions.
func NewBridge(client ClientAPI, cat *catalog.Catalog, sessions []Session, opts BridgeOptions) *Bridge {
	b := &Bridge{
		client:   client,
		catalog:  cat,
		opts:     opts,
		sessions: make(map[string]Session, len(sessions)),
		ctx:      context.Background(),
	}
	for _, s := range sessions {
		b.sessions[NodeID(s.Address())] = s
	}
	return b
}

// NodeID turns a MAC address into a topic-safe id: "BE:FF:20:00:0A:1C"
// becomes "beff20000a1c".
func NodeID(address string) string {
	return strings.ToLower(strings.ReplaceAll(address, ":", ""))
}

// StatusTopic is the bridge-wide availability topic. Use it as the will.
func StatusTopic(base string) string { return base + "/status" }

// Start wires the bridge to bus and to the client's connect hook. Command
// handlers run with ctx. Call before the client connects.
func (b *Bridge) Start(ctx context.Context, bus *events.Bus) {
	b.mu.Lock()
	b.ctx = ctx
	b.unsubs = append(b.unsubs, bus.OnStateChanged(func(ev events.StateChanged) {
		if s, ok := b.sessions[NodeID(ev.Address)]; ok {
			b.publishState(s)
		}
	}))
	b.mu.Unlock()
	b.client.OnConnect(b.announce)
}

// Stop detaches the bridge from the event bus and marks it offline.
func (b *Bridge) Stop() {
	b.mu.Lock()
	unsubs := b.unsubs
	b.unsubs = nil
	b.mu.Unlock()
	for _, fn := range unsubs {
		fn()
	}
	if err := b.client.Publish(StatusTopic(b.opts.BaseTopic), []byte(PayloadOffline), true); err != nil {
		slog.Warn("[MQTT] publish offline failed", "error", err)
	}
}

func (b *Bridge) context() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}

// announce runs after every (re)connect: subscribe to command topics,
// publish discovery, mark online, then push current state.
func (b *Bridge) announce() {
	for node, s := range b.sessions {
		if err := b.subscribe(node, s); err != nil {
			slog.Error("[MQTT] subscribe failed", "device", s.Address(), "error", err)
		}
		for _, d := range b.discovery(node, s) {
			if err := b.publishJSON(d.topic, d.payload); err != nil {
				slog.Error("[MQTT] discovery publish failed", "topic", d.topic, "error", err)
			}
		}
	}
	if err := b.client.Publish(StatusTopic(b.opts.BaseTopic), []byte(PayloadOnline), true); err != nil {
		slog.Error("[MQTT] publish online failed", "error", err)
	}
	for _, s := range b.sessions {
		b.publishState(s)
	}
	slog.Info("[MQTT] announced", "devices", len(b.sessions))
}

func (b *Bridge) topic(node, entity, leaf string) string {
	return fmt.Sprintf("%s/%s/%s/%s", b.opts.BaseTopic, node, entity, leaf)
}

func (b *Bridge) subscribe(node string, s Session) error {
	handlers := map[string]func(Session, []byte) error{
		entityLight:            b.handleLight,
		entityMicrophone:       b.handleMicrophone,
		entityEffectSpeed:      b.numberHandler(Session.SetEffectSpeed),
		entityEffectBrightness: b.numberHandler(Session.SetEffectBrightness),
		entityMicSensitivity:   b.numberHandler(Session.SetMicrophoneSensitivity),
		entityMicEQ:            b.handleMicEQ,
	}
	for entity, h := range handlers {
		t := b.topic(node, entity, "set")
		err := b.client.Subscribe(t, func(m Message) {
			if err := h(s, m.Payload()); err != nil {
				slog.Warn("[MQTT] command failed", "topic", m.Topic(), "device", s.Address(), "error", err)
			}
			b.publishState(s)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type rgbJSON struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// lightCommand is the Home Assistant JSON-schema light command.
type lightCommand struct {
	State      string   `json:"state"`
	Brightness *int     `json:"brightness,omitempty"`
	Color      *rgbJSON `json:"color,omitempty"`
	Effect     *string  `json:"effect,omitempty"`
}

func (b *Bridge) handleLight(s Session, payload []byte) error {
	var cmd lightCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("decode light command: %w", err)
	}
	ctx := b.context()

	if strings.EqualFold(cmd.State, "OFF") {
		if s.Snapshot().Microphone {
			if err := s.ExitMicrophoneMode(ctx); err != nil {
				slog.Warn("[MQTT] leaving microphone mode failed", "device", s.Address(), "error", err)
			}
		}
		return s.TurnOff(ctx)
	}

	if cmd.Brightness == nil && cmd.Color == nil && cmd.Effect == nil {
		return s.Resume(ctx)
	}

	// A new color or effect replaces the microphone pattern outright.
	if (cmd.Color != nil || cmd.Effect != nil) && s.Snapshot().Microphone {
		if err := s.CancelMicrophoneMode(ctx); err != nil {
			return err
		}
	}
	// The stored power state is optimistic, so power-on is always re-sent.
	if err := s.TurnOn(ctx); err != nil {
		return err
	}
	if cmd.Brightness != nil {
		if err := s.SetBrightness(ctx, *cmd.Brightness); err != nil {
			return err
		}
	}
	if cmd.Color != nil {
		if err := s.SetColor(ctx, cmd.Color.R, cmd.Color.G, cmd.Color.B); err != nil {
			return err
		}
	}
	if cmd.Effect != nil {
		entry, ok := b.catalog.ByLabel(*cmd.Effect)
		if !ok {
			return fmt.Errorf("unknown effect %q", *cmd.Effect)
		}
		return s.ApplyLighting(ctx, device.LightingOf(entry))
	}
	return nil
}

func (b *Bridge) handleMicrophone(s Session, payload []byte) error {
	ctx := b.context()
	switch strings.ToUpper(strings.TrimSpace(string(payload))) {
	case "ON":
		return s.EnterMicrophoneMode(ctx)
	case "OFF":
		return s.ExitMicrophoneMode(ctx)
	default:
		return fmt.Errorf("invalid switch payload %q", payload)
	}
}

func (b *Bridge) handleMicEQ(s Session, payload []byte) error {
	mode, ok := b.catalog.MicModeByLabel(strings.TrimSpace(string(payload)))
	if !ok {
		return fmt.Errorf("unknown microphone mode %q", payload)
	}
	return s.SetMicrophoneEQMode(b.context(), int(mode.Value))
}

// numberHandler adapts a passthrough setter to a number entity payload.
// Home Assistant may send "50" or "50.0".
func (b *Bridge) numberHandler(set func(Session, context.Context, int) error) func(Session, []byte) error {
	return func(s Session, payload []byte) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(string(payload)), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", payload, err)
		}
		return set(s, b.context(), int(math.Round(v)))
	}
}

// lightState is the retained JSON-schema light state.
type lightState struct {
	State      string  `json:"state"`
	Brightness int     `json:"brightness"`
	ColorMode  string  `json:"color_mode"`
	Color      rgbJSON `json:"color"`
	Effect     string  `json:"effect"`
}

func (b *Bridge) publishState(s Session) {
	snap := s.Snapshot()
	node := NodeID(snap.Address)

	ls := lightState{
		State:      onOff(snap.IsOn),
		Brightness: snap.Brightness,
		ColorMode:  "rgb",
		Color:      rgbJSON{R: int(snap.RGB[0]), G: int(snap.RGB[1]), B: int(snap.RGB[2])},
		Effect:     snap.Lighting.Entry(b.catalog).Label,
	}
	eq := ""
	if m, ok := b.catalog.MicModeByValue(snap.MicEQ); ok {
		eq = m.Label
	}

	var errs []error
	if err := b.publishJSON(b.topic(node, entityLight, "state"), ls); err != nil {
		errs = append(errs, err)
	}
	plain := map[string]string{
		entityMicrophone:       onOff(snap.Microphone),
		entityEffectSpeed:      strconv.Itoa(snap.EffectSpeed),
		entityEffectBrightness: strconv.Itoa(snap.EffectBrightness),
		entityMicSensitivity:   strconv.Itoa(snap.MicSensitivity),
		entityMicEQ:            eq,
	}
	for entity, v := range plain {
		if err := b.client.Publish(b.topic(node, entity, "state"), []byte(v), true); err != nil {
			errs = append(errs, err)
		}
	}
	for _, err := range errs {
		slog.Warn("[MQTT] state publish failed", "device", snap.Address, "error", err)
	}
}

func (b *Bridge) publishJSON(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", topic, err)
	}
	return b.client.Publish(topic, payload, true)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
