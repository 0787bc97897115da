package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chaz8081/melk-led/internal/ble/protocol"
	"github.com/chaz8081/melk-led/internal/catalog"
)

// TurnOn sends the power-on frame.
func (s *Session) TurnOn(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setPower(ctx, true)
}

// TurnOff sends the power-off frame.
func (s *Session) TurnOff(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setPower(ctx, false)
}

func (s *Session) setPower(ctx context.Context, on bool) error {
	if err := s.transport.Write(ctx, protocol.Power(on)); err != nil {
		return fmt.Errorf("power %s: %w", onOff(on), err)
	}
	s.update(func() { s.isOn = on })
	s.persist()
	s.publish()
	return nil
}

// SetColor sends a static color. Color commands turn the strip on.
func (s *Session) SetColor(ctx context.Context, r, g, b int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setColor(ctx, [3]int{r, g, b}, nil)
}

// SetColorBrightness sends a static color and records brightness (0..255)
// as the stored global brightness. No brightness frame is sent.
func (s *Session) SetColorBrightness(ctx context.Context, r, g, b, brightness int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setColor(ctx, [3]int{r, g, b}, &brightness)
}

func (s *Session) setColor(ctx context.Context, c [3]int, brightness *int) error {
	rgb := toRGB(c)
	if err := s.transport.Write(ctx, protocol.Color(int(rgb[0]), int(rgb[1]), int(rgb[2]))); err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	s.update(func() {
		s.rgb = rgb
		if brightness != nil {
			s.brightness = clampInt(*brightness, 0, 255)
		}
		s.isOn = true
		s.lighting = Static()
	})
	s.persist()
	s.publish()
	return nil
}

// currentColor re-sends the stored color and brightness.
func (s *Session) currentColor(ctx context.Context) error {
	s.mu.Lock()
	c := [3]int{int(s.rgb[0]), int(s.rgb[1]), int(s.rgb[2])}
	b := s.brightness
	s.mu.Unlock()
	return s.setColor(ctx, c, &b)
}

// SetBrightness sets the global brightness (0..255). The firmware only
// applies a brightness frame once a color frame follows, so the stored color
// is re-sent after CommitDelay.
func (s *Session) SetBrightness(ctx context.Context, value int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	value = clampInt(value, 0, 255)
	if err := s.transport.Write(ctx, protocol.Brightness(value)); err != nil {
		return fmt.Errorf("set brightness: %w", err)
	}
	s.update(func() { s.brightness = value })

	pause(ctx, s.opts.CommitDelay)

	s.mu.Lock()
	rgb := s.rgb
	s.mu.Unlock()
	err := s.transport.Write(ctx, protocol.Color(int(rgb[0]), int(rgb[1]), int(rgb[2])))
	if err == nil {
		s.update(func() { s.lighting = Static() })
	}
	s.persist()
	s.publish()
	if err != nil {
		return fmt.Errorf("commit brightness: %w", err)
	}
	return nil
}

// SetEffect starts a built-in effect. ID 0 cancels the effect by re-sending
// the stored color; it is never sent as an effect frame. Failures are logged
// and swallowed.
func (s *Session) SetEffect(ctx context.Context, id byte) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.setEffect(ctx, id)
}

func (s *Session) setEffect(ctx context.Context, id byte) {
	frame, ok := protocol.Effect(id)
	if !ok {
		if err := s.currentColor(ctx); err != nil {
			slog.Error("[device] cancel effect failed", "device", s.opts.Name, "error", err)
		}
		return
	}
	if err := s.transport.Write(ctx, frame); err != nil {
		slog.Error("[device] set effect failed", "device", s.opts.Name, "effect", id, "error", err)
		return
	}
	s.update(func() { s.lighting = EffectLighting(id) })
	slog.Debug("[device] set effect", "device", s.opts.Name, "effect", fmt.Sprintf("0x%02X", id))
	s.publish()
}

// SetScene starts a scene (1..28, clamped). Scenes use their own command
// class and are never sent as effects. Failures are logged and swallowed.
func (s *Session) SetScene(ctx context.Context, id int) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.setScene(ctx, id)
}

func (s *Session) setScene(ctx context.Context, id int) {
	id = clampInt(id, protocol.MinScene, protocol.MaxScene)
	if err := s.transport.Write(ctx, protocol.Scene(id)); err != nil {
		slog.Error("[device] set scene failed", "device", s.opts.Name, "scene", id, "error", err)
		return
	}
	s.update(func() { s.lighting = SceneLighting(byte(id)) })
	slog.Debug("[device] set scene", "device", s.opts.Name, "scene", id)
	s.publish()
}

// SetEffectSpeed sets the animation speed, 0..100.
func (s *Session) SetEffectSpeed(ctx context.Context, speed int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	speed = clampInt(speed, 0, 100)
	if err := s.transport.Write(ctx, protocol.Speed(speed)); err != nil {
		return fmt.Errorf("set effect speed: %w", err)
	}
	s.update(func() { s.effectSpeed = speed })
	return nil
}

// SetEffectBrightness dims the running effect, 0..100, without leaving
// effect mode. The stored global brightness is not touched.
func (s *Session) SetEffectBrightness(ctx context.Context, brightness int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	brightness = clampInt(brightness, 0, 100)
	if err := s.transport.Write(ctx, protocol.EffectBrightness(brightness)); err != nil {
		return fmt.Errorf("set effect brightness: %w", err)
	}
	s.update(func() { s.effectBrightness = brightness })
	return nil
}

// SetMicrophone toggles the sound-reactive mode. Enabling first sends the
// stored static color to knock the strip out of any effect, then waits
// MicSettleDelay. Disabling only sends the disable frame.
func (s *Session) SetMicrophone(ctx context.Context, enabled bool) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setMicrophone(ctx, enabled)
}

func (s *Session) setMicrophone(ctx context.Context, enabled bool) error {
	if enabled {
		if err := s.currentColor(ctx); err != nil {
			return fmt.Errorf("microphone on: %w", err)
		}
		pause(ctx, s.opts.MicSettleDelay)
	}
	if err := s.transport.Write(ctx, protocol.Microphone(enabled)); err != nil {
		return fmt.Errorf("microphone %s: %w", onOff(enabled), err)
	}
	s.update(func() { s.micOn = enabled })
	slog.Debug("[device] microphone", "device", s.opts.Name, "enabled", enabled)
	s.publish()
	return nil
}

// SetMicrophoneSensitivity sets the microphone gain, 0..100.
func (s *Session) SetMicrophoneSensitivity(ctx context.Context, sensitivity int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setMicSensitivity(ctx, sensitivity)
}

func (s *Session) setMicSensitivity(ctx context.Context, sensitivity int) error {
	sensitivity = clampInt(sensitivity, 0, 100)
	if err := s.transport.Write(ctx, protocol.MicSensitivity(sensitivity)); err != nil {
		return fmt.Errorf("set microphone sensitivity: %w", err)
	}
	s.update(func() { s.micSensitivity = sensitivity })
	return nil
}

// SetMicrophoneEQMode selects one of the eight equalizer modes, 0x80..0x87.
func (s *Session) SetMicrophoneEQMode(ctx context.Context, mode int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.setMicEQ(ctx, mode)
}

func (s *Session) setMicEQ(ctx context.Context, mode int) error {
	mode = clampInt(mode, protocol.MinMicEQ, protocol.MaxMicEQ)
	if err := s.transport.Write(ctx, protocol.MicEQ(mode)); err != nil {
		return fmt.Errorf("set microphone EQ: %w", err)
	}
	s.update(func() { s.micEQ = byte(mode) })
	return nil
}

// ApplyLighting shows l: the stored color for static lighting, otherwise the
// effect or scene. Only the static path can return an error.
func (s *Session) ApplyLighting(ctx context.Context, l Lighting) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.applyLighting(ctx, l)
}

func (s *Session) applyLighting(ctx context.Context, l Lighting) error {
	switch l.Kind {
	case catalog.KindEffect:
		s.setEffect(ctx, l.ID)
	case catalog.KindScene:
		s.setScene(ctx, int(l.ID))
	default:
		return s.currentColor(ctx)
	}
	return nil
}

// Resume turns the strip on and re-applies the last lighting, which is what
// a bare "on" means to a user. In microphone mode the microphone is
// re-enabled instead.
func (s *Session) Resume(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.setPower(ctx, true); err != nil {
		return err
	}
	if s.Mode() == ModeMicrophone {
		return s.setMicrophone(ctx, true)
	}
	return s.applyLighting(ctx, s.Lighting())
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
