// Package events carries in-process notifications between device sessions,
// the BLE connection managers and the outward-facing bridges.
package events

import (
	"github.com/kelindar/event"
)

// Event type constants for kelindar/event.
const (
	TypeStateChanged uint32 = iota + 1
	TypeConnectionChanged
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// StateChanged is published after a session applies a mutation.
type StateChanged struct {
	Address    string
	IsOn       bool
	RGB        [3]uint8
	Brightness int
	// Lighting is "static", "effect" or "scene"; ID is the effect or scene id.
	Lighting   string
	ID         byte
	Microphone bool
}

// Type returns the event type identifier for StateChanged.
func (e StateChanged) Type() uint32 { return TypeStateChanged }

// ConnectionChanged is published when a BLE link comes up or drops.
type ConnectionChanged struct {
	Address   string
	Connected bool
}

// Type returns the event type identifier for ConnectionChanged.
func (e ConnectionChanged) Type() uint32 { return TypeConnectionChanged }

// Bus wraps a kelindar/event dispatcher. A nil *Bus drops every event.
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus.
func New() *Bus {
	return &Bus{dispatcher: event.NewDispatcher()}
}

// Publish publishes an event to all subscribers of its type.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	switch e := ev.(type) {
	case StateChanged:
		event.Publish(b.dispatcher, e)
	case ConnectionChanged:
		event.Publish(b.dispatcher, e)
	}
}

// OnStateChanged registers a handler and returns its unsubscribe function.
func (b *Bus) OnStateChanged(handler func(StateChanged)) func() {
	if b == nil {
		return func() {}
	}
	return event.Subscribe(b.dispatcher, handler)
}

// OnConnectionChanged registers a handler and returns its unsubscribe function.
func (b *Bus) OnConnectionChanged(handler func(ConnectionChanged)) func() {
	if b == nil {
		return func() {}
	}
	return event.Subscribe(b.dispatcher, handler)
}
