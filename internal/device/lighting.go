package device

import (
	"fmt"

	"github.com/chaz8081/melk-led/internal/catalog"
)

// Lighting is what the strip is showing: a static color, an effect or a
// scene. ID is unused for static color. It encodes as
// {"kind":"effect","id":5}.
type Lighting struct {
	Kind catalog.Kind `json:"kind"`
	ID   byte         `json:"id"`
}

// Static returns the static color lighting.
func Static() Lighting { return Lighting{Kind: catalog.KindStatic} }

// EffectLighting returns the lighting for an ordinary effect.
func EffectLighting(id byte) Lighting {
	if id == 0 {
		return Static()
	}
	return Lighting{Kind: catalog.KindEffect, ID: id}
}

// SceneLighting returns the lighting for a scene.
func SceneLighting(id byte) Lighting { return Lighting{Kind: catalog.KindScene, ID: id} }

// LightingOf converts a catalog entry.
func LightingOf(e catalog.Entry) Lighting {
	switch e.Kind {
	case catalog.KindEffect:
		return EffectLighting(e.ID)
	case catalog.KindScene:
		return SceneLighting(e.ID)
	default:
		return Static()
	}
}

// Entry looks the lighting up in cat. Unknown IDs fall back to the static entry.
func (l Lighting) Entry(cat *catalog.Catalog) catalog.Entry {
	if e, ok := cat.Find(l.Kind, l.ID); ok {
		return e
	}
	return cat.Static()
}

func (l Lighting) String() string {
	if l.Kind == catalog.KindStatic {
		return "static"
	}
	return fmt.Sprintf("%s %d", l.Kind, l.ID)
}

// Mode is the microphone state machine state.
type Mode int

const (
	// ModeNormal shows a static color, effect or scene.
	ModeNormal Mode = iota
	// ModeMicrophone reacts to sound; the previous lighting is saved.
	ModeMicrophone
)

func (m Mode) String() string {
	if m == ModeMicrophone {
		return "microphone"
	}
	return "normal"
}

// MarshalText renders the mode by name.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*m = ModeNormal
	case "microphone":
		*m = ModeMicrophone
	default:
		return fmt.Errorf("device: unknown mode %q", text)
	}
	return nil
}
