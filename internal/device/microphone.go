package device

import (
	"context"
	"log/slog"
)

// EnterMicrophoneMode saves the current lighting, enables the microphone and
// pushes the stored sensitivity and EQ mode. Entering while already in
// microphone mode is a no-op.
func (s *Session) EnterMicrophoneMode(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if s.mode == ModeMicrophone {
		s.mu.Unlock()
		return nil
	}
	saved := s.lighting
	sensitivity, eq := s.micSensitivity, int(s.micEQ)
	s.mu.Unlock()

	if err := s.setMicrophone(ctx, true); err != nil {
		return err
	}
	s.update(func() {
		s.mode = ModeMicrophone
		s.saved = saved
	})
	slog.Info("[device] microphone mode on", "device", s.opts.Name, "saved", saved.String())
	s.publish()

	pause(ctx, s.opts.MicApplyDelay)
	if err := s.setMicSensitivity(ctx, sensitivity); err != nil {
		return err
	}
	pause(ctx, s.opts.MicApplyDelay)
	return s.setMicEQ(ctx, eq)
}

// ExitMicrophoneMode disables the microphone and, after MicRestoreDelay,
// re-applies the lighting saved on entry. Outside microphone mode the strip
// may still be sound-reactive from an earlier process, so the disable frame
// is sent anyway and only the restore is skipped.
func (s *Session) ExitMicrophoneMode(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	saved, left, err := s.leaveMicrophone(ctx)
	if err != nil {
		return err
	}
	if !left {
		return s.setMicrophone(ctx, false)
	}

	pause(ctx, s.opts.MicRestoreDelay)
	slog.Info("[device] restoring lighting after microphone", "device", s.opts.Name, "lighting", saved.String())
	return s.applyLighting(ctx, saved)
}

// CancelMicrophoneMode disables the microphone without restoring the saved
// lighting. Used when a new color or effect is about to replace it anyway.
func (s *Session) CancelMicrophoneMode(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	_, _, err := s.leaveMicrophone(ctx)
	return err
}

// leaveMicrophone sends the disable frame and returns to ModeNormal. left
// reports whether the session was in microphone mode and has now left it.
func (s *Session) leaveMicrophone(ctx context.Context) (saved Lighting, left bool, err error) {
	s.mu.Lock()
	if s.mode != ModeMicrophone {
		s.mu.Unlock()
		return Lighting{}, false, nil
	}
	saved = s.saved
	s.mu.Unlock()

	if err := s.setMicrophone(ctx, false); err != nil {
		return saved, false, err
	}
	s.update(func() {
		s.mode = ModeNormal
		s.saved = Static()
	})
	slog.Info("[device] microphone mode off", "device", s.opts.Name)
	s.publish()
	return saved, true, nil
}
