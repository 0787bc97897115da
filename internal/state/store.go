// Package state persists the last known power, color and brightness of each
// strip. The strips are write-only, so this file is the only way to survive
// a restart.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Record is the persisted state of one strip.
type Record struct {
	IsOn       bool   `json:"is_on"`
	RGB        [3]int `json:"rgb"`
	Brightness int    `json:"brightness"`
}

// DefaultRecord is what a strip with no saved state starts from: off, white,
// full brightness.
func DefaultRecord() Record {
	return Record{
		IsOn:       false,
		RGB:        [3]int{255, 255, 255},
		Brightness: 255,
	}
}

// DefaultPath returns the default state file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "melk-led-state.json"
	}
	return filepath.Join(home, ".local", "share", "melk-led", "state.json")
}

// Store is a JSON document mapping device address to Record. Every Save
// rewrites the whole file; entries for other addresses are carried over
// untouched. Safe for concurrent use by several sessions.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the file at path. The file and its
// directory are created on the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved record for address. A missing file, a corrupt file
// or an unknown address all yield DefaultRecord and false; Load never fails.
// Fields absent from a saved entry keep their defaults.
func (s *Store) Load(address string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := DefaultRecord()

	doc, err := s.read()
	if err != nil {
		slog.Warn("[state] failed to read state file, using defaults", "path", s.path, "error", err)
		return rec, false
	}

	raw, ok := doc[address]
	if !ok {
		return rec, false
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.Warn("[state] corrupt entry, using defaults", "address", address, "error", err)
		return DefaultRecord(), false
	}
	return rec, true
}

// Save merges rec for address into the document and writes it atomically.
// A corrupt existing document is replaced.
func (s *Store) Save(address string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		slog.Warn("[state] discarding unreadable state file", "path", s.path, "error", err)
		doc = nil
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}

	entry, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding state for %s: %w", address, err)
	}
	doc[address] = entry

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state file: %w", err)
	}
	return s.writeAtomic(append(data, '\n'))
}

// read returns the raw document. A missing file is an empty document.
func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return doc, nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
