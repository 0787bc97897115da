package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaz8081/melk-led/internal/ble"
	"github.com/chaz8081/melk-led/internal/ble/protocol"
	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/config"
	"github.com/chaz8081/melk-led/internal/device"
	"github.com/chaz8081/melk-led/internal/state"
)

// controller is the part of *device.Session a one-shot command drives.
type controller interface {
	Resume(ctx context.Context) error
	TurnOn(ctx context.Context) error
	TurnOff(ctx context.Context) error
	SetColor(ctx context.Context, r, g, b int) error
	SetColorBrightness(ctx context.Context, r, g, b, brightness int) error
	SetBrightness(ctx context.Context, value int) error
	SetEffect(ctx context.Context, id byte)
	SetScene(ctx context.Context, id int)
	ApplyLighting(ctx context.Context, l device.Lighting) error
	SetEffectSpeed(ctx context.Context, speed int) error
	SetEffectBrightness(ctx context.Context, brightness int) error
	EnterMicrophoneMode(ctx context.Context) error
	ExitMicrophoneMode(ctx context.Context) error
	SetMicrophoneSensitivity(ctx context.Context, sensitivity int) error
	SetMicrophoneEQMode(ctx context.Context, mode int) error
	Snapshot() device.Snapshot
}

var _ controller = (*device.Session)(nil)

type action func(ctx context.Context, c controller) error

const sendUsage = `Commands:
  on | off | resume
  color R G B [BRIGHTNESS]
  brightness 0-255
  effect KEY|LABEL|ID
  scene KEY|LABEL|1-28
  speed 0-100
  effect-brightness 0-100
  mic on|off
  mic-sensitivity 0-100
  mic-eq KEY|LABEL|0x80-0x87`

func newSendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send ADDRESS COMMAND [ARGS...]",
		Short: "Send one command to a strip",
		Long:  "Connect to a strip, apply one command and disconnect.\n\n" + sendUsage,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.setup()
			if err != nil {
				return err
			}
			act, err := parseAction(catalog.New(), args[1], args[2:])
			if err != nil {
				return err
			}
			return sendOnce(cmd.Context(), cfg, deviceConfig(cfg, args[0]), act)
		},
	}
}

// deviceConfig returns the configured entry for address, so the strip keeps
// its name, or a bare one.
func deviceConfig(cfg *config.Config, address string) config.DeviceConfig {
	for _, d := range cfg.Devices {
		if strings.EqualFold(d.Address, address) {
			return d
		}
	}
	return config.DeviceConfig{Address: strings.TrimSpace(address)}
}

func sendOnce(ctx context.Context, cfg *config.Config, dev config.DeviceConfig, act action) error {
	s := newSession(cfg, dev, deps{
		adapter: ble.NewTinyGoAdapter(),
		store:   state.NewStore(cfg.StateFile),
	})
	tasks := s.Start(ctx)
	select {
	case <-tasks.Restored():
	case <-ctx.Done():
		return ctx.Err()
	}

	err := act(ctx, s)
	if stopErr := s.Stop(); err == nil {
		err = stopErr
	}
	return err
}

// parseAction turns a command line into the session call it stands for.
func parseAction(cat *catalog.Catalog, command string, args []string) (action, error) {
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: expected %d argument(s), got %d", command, n, len(args))
		}
		return nil
	}

	switch strings.ToLower(command) {
	case "on":
		return func(ctx context.Context, c controller) error { return c.TurnOn(ctx) }, want(0)
	case "off":
		return func(ctx context.Context, c controller) error { return c.TurnOff(ctx) }, want(0)
	case "resume":
		return func(ctx context.Context, c controller) error { return c.Resume(ctx) }, want(0)

	case "color":
		if len(args) != 3 && len(args) != 4 {
			return nil, fmt.Errorf("color: expected R G B [BRIGHTNESS]")
		}
		v, err := parseInts(args)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		if len(v) == 4 {
			return func(ctx context.Context, c controller) error {
				return c.SetColorBrightness(ctx, v[0], v[1], v[2], v[3])
			}, nil
		}
		return func(ctx context.Context, c controller) error {
			return c.SetColor(ctx, v[0], v[1], v[2])
		}, nil

	case "brightness", "speed", "effect-brightness", "mic-sensitivity":
		if err := want(1); err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", command, args[0])
		}
		return intAction(strings.ToLower(command), n), nil

	case "effect":
		if err := want(1); err != nil {
			return nil, err
		}
		if id, err := strconv.ParseUint(args[0], 0, 8); err == nil {
			return func(ctx context.Context, c controller) error {
				c.SetEffect(ctx, byte(id))
				return expectLighting(c, device.EffectLighting(byte(id)))
			}, nil
		}
		return lightingAction(cat, catalog.KindEffect, args[0])

	case "scene":
		if err := want(1); err != nil {
			return nil, err
		}
		if id, err := strconv.Atoi(args[0]); err == nil {
			want := device.SceneLighting(byte(min(max(id, protocol.MinScene), protocol.MaxScene)))
			return func(ctx context.Context, c controller) error {
				c.SetScene(ctx, id)
				return expectLighting(c, want)
			}, nil
		}
		return lightingAction(cat, catalog.KindScene, args[0])

	case "mic":
		if err := want(1); err != nil {
			return nil, err
		}
		switch strings.ToLower(args[0]) {
		case "on":
			return func(ctx context.Context, c controller) error { return c.EnterMicrophoneMode(ctx) }, nil
		case "off":
			return func(ctx context.Context, c controller) error { return c.ExitMicrophoneMode(ctx) }, nil
		}
		return nil, fmt.Errorf("mic: expected on or off, got %q", args[0])

	case "mic-eq":
		if err := want(1); err != nil {
			return nil, err
		}
		mode, ok := cat.MicModeByLabel(args[0])
		if !ok {
			v, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return nil, fmt.Errorf("mic-eq: unknown mode %q", args[0])
			}
			if mode, ok = cat.MicModeByValue(byte(v)); !ok {
				return nil, fmt.Errorf("mic-eq: %s is outside 0x80-0x87", args[0])
			}
		}
		return func(ctx context.Context, c controller) error {
			return c.SetMicrophoneEQMode(ctx, int(mode.Value))
		}, nil
	}
	return nil, fmt.Errorf("unknown command %q\n\n%s", command, sendUsage)
}

func intAction(command string, n int) action {
	return func(ctx context.Context, c controller) error {
		switch command {
		case "brightness":
			return c.SetBrightness(ctx, n)
		case "speed":
			return c.SetEffectSpeed(ctx, n)
		case "effect-brightness":
			return c.SetEffectBrightness(ctx, n)
		default:
			return c.SetMicrophoneSensitivity(ctx, n)
		}
	}
}

// lightingAction resolves a key or label, insisting on the expected kind so
// "effect scene_party" is rejected.
func lightingAction(cat *catalog.Catalog, kind catalog.Kind, name string) (action, error) {
	e, ok := cat.ByLabel(name)
	if !ok {
		return nil, fmt.Errorf("unknown %s %q (see 'melk-led effects')", kind, name)
	}
	if e.Kind != kind && !(kind == catalog.KindEffect && e.Kind == catalog.KindStatic) {
		return nil, fmt.Errorf("%q is a %s, not a %s", name, e.Kind, kind)
	}
	l := device.LightingOf(e)
	return func(ctx context.Context, c controller) error {
		if err := c.ApplyLighting(ctx, l); err != nil {
			return err
		}
		return expectLighting(c, l)
	}, nil
}

// expectLighting reports an effect or scene write the session swallowed, so
// the exit status shows the strip did not change.
func expectLighting(c controller, want device.Lighting) error {
	if got := c.Snapshot().Lighting; got != want {
		return fmt.Errorf("strip did not switch to %s, showing %s (see log for the write error)", want, got)
	}
	return nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = n
	}
	return out, nil
}
