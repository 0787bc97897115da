package device

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaz8081/melk-led/internal/ble/protocol"
)

func TestEnterMicrophoneModeSequence(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.SetColor(ctx, 10, 0, 0))
	s.SetEffect(ctx, 33)
	tr.reset()

	require.NoError(t, s.EnterMicrophoneMode(ctx))

	assertFrames(t, tr,
		color(10, 0, 0),
		protocol.Microphone(true),
		protocol.MicSensitivity(DefaultMicSensitivity),
		protocol.MicEQ(DefaultMicEQ),
	)
	assert.Equal(t, ModeMicrophone, s.Mode())
	assert.True(t, s.Snapshot().Microphone)
}

func TestEnterMicrophoneModeUsesStoredSettings(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.SetMicrophoneSensitivity(ctx, 25))
	require.NoError(t, s.SetMicrophoneEQMode(ctx, 0x84))
	tr.reset()

	require.NoError(t, s.EnterMicrophoneMode(ctx))

	frames := tr.sent()
	require.Len(t, frames, 4)
	assert.Equal(t, protocol.MicSensitivity(25), frames[2])
	assert.Equal(t, protocol.MicEQ(0x84), frames[3])
}

func TestEnterMicrophoneModeIsIdempotent(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()

	require.NoError(t, s.EnterMicrophoneMode(ctx))
	assert.Empty(t, tr.sent())
}

func TestExitMicrophoneModeRestoresEffect(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	s.SetEffect(ctx, 33)
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()

	require.NoError(t, s.ExitMicrophoneMode(ctx))

	effect, _ := protocol.Effect(33)
	assertFrames(t, tr, protocol.Microphone(false), effect)
	assert.Equal(t, ModeNormal, s.Mode())
	assert.Equal(t, EffectLighting(33), s.Lighting())
	assert.False(t, s.Snapshot().Microphone)
}

func TestExitMicrophoneModeRestoresScene(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	s.SetScene(ctx, 7)
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()

	require.NoError(t, s.ExitMicrophoneMode(ctx))

	assertFrames(t, tr, protocol.Microphone(false), protocol.Scene(7))
	assert.Equal(t, SceneLighting(7), s.Lighting())
}

func TestExitMicrophoneModeRestoresStaticColor(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.SetColor(ctx, 0, 0, 200))
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()

	require.NoError(t, s.ExitMicrophoneMode(ctx))

	assertFrames(t, tr, protocol.Microphone(false), color(0, 0, 200))
}

func TestExitMicrophoneModeWhenNormalStillDisables(t *testing.T) {
	s, tr, _ := newTestSession(t)
	s.SetEffect(context.Background(), 33)
	tr.reset()

	// A fresh session does not know the strip was left sound-reactive.
	require.NoError(t, s.ExitMicrophoneMode(context.Background()))

	assertFrames(t, tr, protocol.Microphone(false))
	assert.Equal(t, ModeNormal, s.Mode())
	assert.False(t, s.Snapshot().Microphone)
	assert.Equal(t, EffectLighting(33), s.Lighting())
}

func TestExitMicrophoneModeFailureStaysInMicrophoneMode(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()
	tr.failNext(errLink)

	require.ErrorIs(t, s.ExitMicrophoneMode(ctx), errLink)
	assert.Equal(t, ModeMicrophone, s.Mode())
}

func TestCancelMicrophoneModeDoesNotRestore(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	s.SetEffect(ctx, 12)
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	tr.reset()

	require.NoError(t, s.CancelMicrophoneMode(ctx))

	assertFrames(t, tr, protocol.Microphone(false))
	assert.Equal(t, ModeNormal, s.Mode())
}

func TestResumeInMicrophoneModeReenablesMicrophone(t *testing.T) {
	s, tr, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.EnterMicrophoneMode(ctx))
	require.NoError(t, s.TurnOff(ctx))
	tr.reset()

	require.NoError(t, s.Resume(ctx))

	assertFrames(t, tr, protocol.Power(true), color(255, 255, 255), protocol.Microphone(true))
}
