package device

import (
	"context"
	"log/slog"
	"sync"
)

// Tasks is the handle for a session's background work: state restore, the
// delayed first connect and the heartbeat.
type Tasks struct {
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	restored chan struct{}
	once     sync.Once
}

// Restored is closed once the persisted state has been loaded.
func (t *Tasks) Restored() <-chan struct{} { return t.restored }

// Stop cancels the background tasks and waits for them to return. Safe to
// call more than once.
func (t *Tasks) Stop() {
	t.once.Do(t.cancel)
	t.wg.Wait()
}

// Start launches the three independent background tasks. None blocks the
// others, and Start returns immediately.
func (s *Session) Start(ctx context.Context) *Tasks {
	ctx, cancel := context.WithCancel(ctx)
	t := &Tasks{
		cancel:   cancel,
		restored: make(chan struct{}),
	}

	t.wg.Add(3)
	go func() {
		defer t.wg.Done()
		defer close(t.restored)
		s.restore()
	}()
	go func() {
		defer t.wg.Done()
		if !pause(ctx, s.opts.ConnectDelay) {
			return
		}
		if err := s.transport.EnsureConnected(ctx); err != nil {
			slog.Warn("[device] initial connect failed, will retry", "device", s.opts.Name, "error", err)
		}
	}()
	go func() {
		defer t.wg.Done()
		s.transport.Heartbeat(ctx)
	}()

	s.mu.Lock()
	s.tasks = t
	s.mu.Unlock()
	return t
}

// Stop stops the background tasks, saves the final state and disconnects.
// Safe to call repeatedly and from a shutdown handler. A later write
// reconnects.
func (s *Session) Stop() error {
	s.mu.Lock()
	t := s.tasks
	s.mu.Unlock()
	if t != nil {
		t.Stop()
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	// Persisting before the saved record was ever read would clobber it
	// with defaults.
	s.mu.Lock()
	save := s.loaded || s.dirty
	s.mu.Unlock()
	if save {
		s.persist()
	}

	slog.Info("[device] stopping", "device", s.opts.Name)
	return s.transport.Disconnect()
}
