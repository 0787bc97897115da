// Package protocol encodes commands for MELK / ELK-BLEDOM LED strip
// controllers.
//
// Every command is a fixed 9-byte frame:
//
//	[0x7E, class, sub, p1, p2, p3, p4, p5, 0xEF]
//
// The device never answers, so nothing here decodes. Inputs are clamped
// before encoding; no encoder can fail.
package protocol

import (
	"fmt"
	"math"
)

// FrameLen is the size of every command frame.
const FrameLen = 9

const (
	startMarker byte = 0x7E
	endMarker   byte = 0xEF
)

// Scene and microphone EQ bounds.
const (
	MinScene = 1
	MaxScene = 28

	MinMicEQ = 0x80
	MaxMicEQ = 0x87
)

// Frame is one encoded command.
type Frame [FrameLen]byte

// Bytes returns the frame as a slice for transport writes.
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameLen)
	copy(b, f[:])
	return b
}

// Class returns the command class byte.
func (f Frame) Class() byte { return f[1] }

// Sub returns the subcommand byte.
func (f Frame) Sub() byte { return f[2] }

func (f Frame) String() string {
	return fmt.Sprintf("% X", f[:])
}

// Power turns the strip on or off.
func Power(on bool) Frame {
	return Frame{startMarker, 0x04, 0x04, flag(on), 0xFF, 0xFF, 0xFF, 0x00, endMarker}
}

// Brightness sets the global brightness. v is on the 0-255 scale and is sent
// as a rounded percentage.
func Brightness(v int) Frame {
	return Frame{startMarker, 0x04, 0x01, BrightnessPercent(v), 0xFF, 0xFF, 0xFF, 0x00, endMarker}
}

// BrightnessPercent rescales a 0-255 brightness to 0-100.
func BrightnessPercent(v int) byte {
	v = clamp(v, 0, 255)
	return byte(math.Round(float64(v) * 100 / 255))
}

// Color sets a static RGB color. This also takes the strip out of effect mode.
func Color(r, g, b int) Frame {
	return Frame{startMarker, 0x07, 0x05, 0x03, channel(r), channel(g), channel(b), 0x10, endMarker}
}

// Effect starts a built-in effect. Effect 0 is reserved for "no effect" and
// has no frame; ok is false in that case.
func Effect(id byte) (f Frame, ok bool) {
	if id == 0 {
		return Frame{}, false
	}
	return Frame{startMarker, 0x05, 0x03, id, 0x06, 0xFF, 0xFF, 0x00, endMarker}, true
}

// Scene starts one of the 28 scenes. Scenes use class 0x31, never the effect
// class.
func Scene(id int) Frame {
	return Frame{startMarker, 0x05, 0x31, byte(clamp(id, MinScene, MaxScene)), 0x07, 0xFF, 0xFF, 0x01, endMarker}
}

// Speed sets the effect speed, 0-100.
func Speed(v int) Frame {
	return percentFrame(0x04, 0x02, v)
}

// EffectBrightness sets brightness as a 0-100 percentage without leaving
// effect mode.
func EffectBrightness(v int) Frame {
	return percentFrame(0x04, 0x01, v)
}

// Microphone enables or disables sound-reactive mode.
func Microphone(on bool) Frame {
	return Frame{startMarker, 0x04, 0x07, flag(on), 0xFF, 0xFF, 0xFF, 0x00, endMarker}
}

// MicSensitivity sets microphone sensitivity, 0-100.
func MicSensitivity(v int) Frame {
	return percentFrame(0x04, 0x06, v)
}

// MicEQ selects the microphone equalizer mode, 0x80-0x87.
func MicEQ(mode int) Frame {
	return Frame{startMarker, 0x07, 0x03, byte(clamp(mode, MinMicEQ, MaxMicEQ)), 0x04, 0xFF, 0xFF, 0x00, endMarker}
}

func percentFrame(class, sub byte, v int) Frame {
	return Frame{startMarker, class, sub, byte(clamp(v, 0, 100)), 0xFF, 0xFF, 0xFF, 0x00, endMarker}
}

func flag(on bool) byte {
	if on {
		return 0x01
	}
	return 0x00
}

func channel(v int) byte {
	return byte(clamp(v, 0, 255))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
