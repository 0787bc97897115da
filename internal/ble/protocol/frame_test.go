package protocol

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameLiterals(t *testing.T) {
	effect5, ok := Effect(5)
	if !ok {
		t.Fatal("Effect(5) reported no frame")
	}

	tests := []struct {
		name string
		got  Frame
		want Frame
	}{
		{"power on", Power(true), Frame{0x7E, 0x04, 0x04, 0x01, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"power off", Power(false), Frame{0x7E, 0x04, 0x04, 0x00, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"scene 5", Scene(5), Frame{0x7E, 0x05, 0x31, 0x05, 0x07, 0xFF, 0xFF, 0x01, 0xEF}},
		{"effect 5", effect5, Frame{0x7E, 0x05, 0x03, 0x05, 0x06, 0xFF, 0xFF, 0x00, 0xEF}},
		{"color", Color(1, 2, 3), Frame{0x7E, 0x07, 0x05, 0x03, 0x01, 0x02, 0x03, 0x10, 0xEF}},
		{"brightness full", Brightness(255), Frame{0x7E, 0x04, 0x01, 100, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"speed", Speed(42), Frame{0x7E, 0x04, 0x02, 42, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"effect brightness", EffectBrightness(70), Frame{0x7E, 0x04, 0x01, 70, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"mic on", Microphone(true), Frame{0x7E, 0x04, 0x07, 0x01, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"mic off", Microphone(false), Frame{0x7E, 0x04, 0x07, 0x00, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"mic sensitivity", MicSensitivity(60), Frame{0x7E, 0x04, 0x06, 60, 0xFF, 0xFF, 0xFF, 0x00, 0xEF}},
		{"mic eq", MicEQ(0x83), Frame{0x7E, 0x07, 0x03, 0x83, 0x04, 0xFF, 0xFF, 0x00, 0xEF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFramesShareMarkers(t *testing.T) {
	effect, _ := Effect(1)
	for _, f := range []Frame{
		Power(true), Brightness(10), Color(9, 9, 9), effect, Scene(1),
		Speed(1), EffectBrightness(1), Microphone(true), MicSensitivity(1), MicEQ(0x80),
	} {
		if f[0] != 0x7E || f[FrameLen-1] != 0xEF {
			t.Errorf("frame %s lacks start/end markers", f)
		}
	}
}

func TestBrightnessPercentAllInputs(t *testing.T) {
	for v := 0; v <= 255; v++ {
		want := byte(math.Round(float64(v) * 100 / 255))
		got := Brightness(v)[3]
		if got != want {
			t.Errorf("Brightness(%d) percent = %d, want %d", v, got, want)
		}
		if got > 100 {
			t.Errorf("Brightness(%d) percent = %d exceeds 100", v, got)
		}
	}
}

func TestBrightnessClampsOutOfRange(t *testing.T) {
	if got := Brightness(-20)[3]; got != 0 {
		t.Errorf("Brightness(-20) percent = %d, want 0", got)
	}
	if got := Brightness(1000)[3]; got != 100 {
		t.Errorf("Brightness(1000) percent = %d, want 100", got)
	}
	if got := Brightness(128)[3]; got != 50 {
		t.Errorf("Brightness(128) percent = %d, want 50", got)
	}
}

func TestColorClampsChannels(t *testing.T) {
	f := Color(-5, 300, 128)
	want := []byte{0x00, 0xFF, 0x80}
	if diff := cmp.Diff(want, f[4:7]); diff != "" {
		t.Errorf("clamped channels mismatch (-want +got):\n%s", diff)
	}
}

func TestEffectZeroHasNoFrame(t *testing.T) {
	if _, ok := Effect(0); ok {
		t.Error("Effect(0) must not produce a frame")
	}
}

func TestSceneAndEffectClassesNeverMix(t *testing.T) {
	for id := 1; id <= MaxScene; id++ {
		scene := Scene(id)
		effect, _ := Effect(byte(id))
		if scene.Sub() != 0x31 {
			t.Errorf("Scene(%d) sub = 0x%02X, want 0x31", id, scene.Sub())
		}
		if effect.Sub() != 0x03 {
			t.Errorf("Effect(%d) sub = 0x%02X, want 0x03", id, effect.Sub())
		}
	}
}

func TestClampedRanges(t *testing.T) {
	tests := []struct {
		name string
		f    Frame
		want byte
	}{
		{"scene low", Scene(0), MinScene},
		{"scene high", Scene(99), MaxScene},
		{"speed low", Speed(-1), 0},
		{"speed high", Speed(101), 100},
		{"effect brightness high", EffectBrightness(255), 100},
		{"sensitivity high", MicSensitivity(500), 100},
		{"eq low", MicEQ(0), MinMicEQ},
		{"eq high", MicEQ(0xFF), MaxMicEQ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f[3]; got != tt.want {
				t.Errorf("param byte = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestFrameBytesIsCopy(t *testing.T) {
	f := Power(true)
	b := f.Bytes()
	b[3] = 0x55
	if f[3] != 0x01 {
		t.Error("Bytes() aliased the frame")
	}
}

func TestFrameString(t *testing.T) {
	if got, want := Power(true).String(), "7E 04 04 01 FF FF FF 00 EF"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
