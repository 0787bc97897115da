package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaz8081/melk-led/internal/catalog"
	"github.com/chaz8081/melk-led/internal/config"
	"github.com/chaz8081/melk-led/internal/device"
)

type recorder struct {
	calls    []string
	lighting device.Lighting
	// stuck makes effect and scene writes fail silently, as the session does.
	stuck bool
}

func (r *recorder) show(l device.Lighting) {
	if !r.stuck {
		r.lighting = l
	}
}

func (r *recorder) Snapshot() device.Snapshot { return device.Snapshot{Lighting: r.lighting} }

func (r *recorder) add(format string, args ...any) error {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
	return nil
}

func (r *recorder) Resume(context.Context) error  { return r.add("resume") }
func (r *recorder) TurnOn(context.Context) error  { return r.add("on") }
func (r *recorder) TurnOff(context.Context) error { return r.add("off") }
func (r *recorder) SetColor(_ context.Context, cr, cg, cb int) error {
	return r.add("color %d %d %d", cr, cg, cb)
}
func (r *recorder) SetColorBrightness(_ context.Context, cr, cg, cb, br int) error {
	return r.add("color %d %d %d @%d", cr, cg, cb, br)
}
func (r *recorder) SetBrightness(_ context.Context, v int) error { return r.add("brightness %d", v) }
func (r *recorder) SetEffect(_ context.Context, id byte) {
	r.show(device.EffectLighting(id))
	_ = r.add("effect %d", id)
}
func (r *recorder) SetScene(_ context.Context, id int) {
	r.show(device.SceneLighting(byte(min(max(id, 1), 28))))
	_ = r.add("scene %d", id)
}
func (r *recorder) ApplyLighting(_ context.Context, l device.Lighting) error {
	if l.Kind != catalog.KindStatic {
		r.show(l)
	}
	return r.add("lighting %s", l)
}
func (r *recorder) SetEffectSpeed(_ context.Context, v int) error { return r.add("speed %d", v) }
func (r *recorder) SetEffectBrightness(_ context.Context, v int) error {
	return r.add("effect brightness %d", v)
}
func (r *recorder) EnterMicrophoneMode(context.Context) error { return r.add("mic on") }
func (r *recorder) ExitMicrophoneMode(context.Context) error  { return r.add("mic off") }
func (r *recorder) SetMicrophoneSensitivity(_ context.Context, v int) error {
	return r.add("mic sensitivity %d", v)
}
func (r *recorder) SetMicrophoneEQMode(_ context.Context, v int) error {
	return r.add("mic eq 0x%02X", v)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		want    string
	}{
		{"on", nil, "on"},
		{"OFF", nil, "off"},
		{"resume", nil, "resume"},
		{"color", []string{"255", "0", "10"}, "color 255 0 10"},
		{"color", []string{"1", "2", "3", "128"}, "color 1 2 3 @128"},
		{"brightness", []string{"40"}, "brightness 40"},
		{"speed", []string{"80"}, "speed 80"},
		{"effect-brightness", []string{"25"}, "effect brightness 25"},
		{"mic-sensitivity", []string{"70"}, "mic sensitivity 70"},
		{"effect", []string{"194"}, "effect 194"},
		{"effect", []string{"0xC1"}, "effect 193"},
		{"effect", []string{"jump_rgb"}, "lighting effect 194"},
		{"effect", []string{"Jump: RGB"}, "lighting effect 194"},
		{"effect", []string{"none"}, "lighting static"},
		{"scene", []string{"5"}, "scene 5"},
		{"scene", []string{"scene_sunset"}, "lighting scene 2"},
		{"mic", []string{"on"}, "mic on"},
		{"mic", []string{"OFF"}, "mic off"},
		{"mic-eq", []string{"Spectrum"}, "mic eq 0x82"},
		{"mic-eq", []string{"0x87"}, "mic eq 0x87"},
	}
	cat := catalog.New()
	for _, tt := range tests {
		t.Run(tt.command+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			act, err := parseAction(cat, tt.command, tt.args)
			require.NoError(t, err)
			rec := &recorder{}
			require.NoError(t, act(context.Background(), rec))
			assert.Equal(t, []string{tt.want}, rec.calls)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	tests := []struct {
		command string
		args    []string
	}{
		{"on", []string{"now"}},
		{"color", []string{"1", "2"}},
		{"color", []string{"red", "0", "0"}},
		{"brightness", nil},
		{"brightness", []string{"bright"}},
		{"effect", []string{"Disco"}},
		{"effect", []string{"scene_party"}},
		{"scene", []string{"jump_rgb"}},
		{"mic", []string{"maybe"}},
		{"mic-eq", []string{"0x90"}},
		{"mic-eq", []string{"polka"}},
		{"dance", nil},
	}
	cat := catalog.New()
	for _, tt := range tests {
		t.Run(tt.command+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := parseAction(cat, tt.command, tt.args)
			assert.Error(t, err)
		})
	}
}

func TestSwallowedLightingFailureIsReported(t *testing.T) {
	cat := catalog.New()
	for _, args := range [][]string{
		{"effect", "194"},
		{"effect", "jump_rgb"},
		{"scene", "5"},
		{"scene", "99"},
		{"scene", "scene_sunset"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			act, err := parseAction(cat, args[0], args[1:])
			require.NoError(t, err)

			require.NoError(t, act(context.Background(), &recorder{}))

			err = act(context.Background(), &recorder{stuck: true})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "did not switch")
		})
	}
}

func TestDeviceConfigKeepsConfiguredName(t *testing.T) {
	cfg := config.Default()
	cfg.Devices = []config.DeviceConfig{{Address: "BE:FF:20:00:0A:1C", Name: "Desk"}}

	assert.Equal(t, "Desk", deviceConfig(cfg, "be:ff:20:00:0a:1c").DisplayName())
	assert.Equal(t, "MELK AA:BB", deviceConfig(cfg, " AA:BB ").DisplayName())
}

func TestPrintCatalog(t *testing.T) {
	cat := catalog.New()

	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, cat, "scene"))
	out := buf.String()
	assert.Contains(t, out, "scene_sunrise")
	assert.NotContains(t, out, "jump_rgb")
	assert.NotContains(t, out, "MIC MODE")

	buf.Reset()
	require.NoError(t, printCatalog(&buf, cat, "mic"))
	assert.Contains(t, buf.String(), "0x80")
	assert.NotContains(t, buf.String(), "scene_sunrise")

	buf.Reset()
	require.NoError(t, printCatalog(&buf, cat, ""))
	assert.Contains(t, buf.String(), "jump_rgb")
	assert.Contains(t, buf.String(), "Energic")

	assert.Error(t, printCatalog(&buf, cat, "disco"))
}

func TestRunRequiresDevices(t *testing.T) {
	err := runDaemon(context.Background(), config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no devices configured")
}
