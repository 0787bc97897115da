// Package catalog holds the built-in effect, scene and microphone EQ tables
// for MELK / ELK-BLEDOM strips.
//
// Effects and scenes live in disjoint command classes on the wire (0x03 and
// 0x31), so every Entry carries its Kind and callers must dispatch on it.
package catalog

import (
	"fmt"
	"strings"
)

// Kind tells which command class an entry is sent with.
type Kind int

const (
	KindStatic Kind = iota // no effect, plain RGB color
	KindEffect             // class 0x03
	KindScene              // class 0x31
)

func (k Kind) String() string {
	switch k {
	case KindEffect:
		return "effect"
	case KindScene:
		return "scene"
	default:
		return "static"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "static":
		*k = KindStatic
	case "effect":
		*k = KindEffect
	case "scene":
		*k = KindScene
	default:
		return fmt.Errorf("catalog: unknown kind %q", text)
	}
	return nil
}

// ScenePrefix prefixes every scene key so scenes and effects share one key space.
const ScenePrefix = "scene_"

// Entry is one selectable lighting pattern.
type Entry struct {
	Key   string
	Label string
	ID    byte
	Kind  Kind
}

// MicMode is one of the eight microphone equalizer modes (0x80-0x87).
type MicMode struct {
	Key   string
	Label string
	Value byte
}

// Catalog is an immutable lookup table. Build it once with New and share it.
type Catalog struct {
	entries  []Entry
	byKey    map[string]Entry
	byLabel  map[string]Entry
	micModes []MicMode
}

// New builds the catalog from the static tables.
func New() *Catalog {
	c := &Catalog{
		entries:  make([]Entry, 0, len(effectTable)+len(sceneTable)),
		byKey:    make(map[string]Entry, len(effectTable)+len(sceneTable)),
		byLabel:  make(map[string]Entry, len(effectTable)+len(sceneTable)),
		micModes: append([]MicMode(nil), micModeTable...),
	}
	for _, tbl := range [][]Entry{effectTable, sceneTable} {
		for _, e := range tbl {
			c.entries = append(c.entries, e)
			c.byKey[e.Key] = e
			c.byLabel[e.Label] = e
		}
	}
	return c
}

// Static returns the "no effect" entry.
func (c *Catalog) Static() Entry {
	return c.byKey["none"]
}

// ByKey looks up an entry by its symbolic key (e.g. "jump_rgb", "scene_party").
func (c *Catalog) ByKey(key string) (Entry, bool) {
	e, ok := c.byKey[key]
	return e, ok
}

// ByLabel looks up an entry by display label. Keys are accepted as a fallback
// so callers can pass either form.
func (c *Catalog) ByLabel(label string) (Entry, bool) {
	if e, ok := c.byLabel[label]; ok {
		return e, true
	}
	return c.ByKey(label)
}

// Find looks up an ordinary effect or scene by numeric ID.
func (c *Catalog) Find(kind Kind, id byte) (Entry, bool) {
	if kind == KindStatic {
		return c.Static(), true
	}
	for _, e := range c.entries {
		if e.Kind == kind && e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns all entries in display order, static first.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Effects returns the ordinary effects, excluding the static entry.
func (c *Catalog) Effects() []Entry {
	return c.filter(KindEffect)
}

// Scenes returns the 28 scenes.
func (c *Catalog) Scenes() []Entry {
	return c.filter(KindScene)
}

// Labels returns every display label in display order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

// MicModes returns the microphone EQ modes in protocol order.
func (c *Catalog) MicModes() []MicMode {
	return append([]MicMode(nil), c.micModes...)
}

// MicModeByLabel resolves an EQ mode from its label or key, case-insensitively.
func (c *Catalog) MicModeByLabel(label string) (MicMode, bool) {
	for _, m := range c.micModes {
		if strings.EqualFold(m.Label, label) || strings.EqualFold(m.Key, label) {
			return m, true
		}
	}
	return MicMode{}, false
}

// MicModeByValue resolves an EQ mode from its protocol byte.
func (c *Catalog) MicModeByValue(v byte) (MicMode, bool) {
	for _, m := range c.micModes {
		if m.Value == v {
			return m, true
		}
	}
	return MicMode{}, false
}

func (c *Catalog) filter(kind Kind) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
