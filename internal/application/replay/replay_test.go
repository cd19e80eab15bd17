package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/voiceplatform/internal/application/system"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// idleReplayData creates replay data with no input on any frame
func idleReplayData(frames, level int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Level:   1,
		Frames: []FrameInput{
			{F: 0, LD: true},
			{F: 1, JD: true, V: "left"},
			{F: 2, LU: true, JU: true, V: "left"},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.KeyEvents{LeftDown: true}, input.Keys)
	assert.False(t, input.HasVoice)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Keys.JumpDown)
	assert.True(t, input.HasVoice)
	assert.Equal(t, voice.CommandLeft, input.Voice)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.KeyEvents{LeftUp: true, JumpUp: true}, input.Keys)

	// End of frames
	assert.True(t, replayer.Done())
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_ReturnsEveryKeyField(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, JD: true, JU: true, LD: true, LU: true, RD: true, RU: true, V: "stop"},
		},
	}

	input, ok := NewReplayer(data).GetInput()

	require.True(t, ok)
	assert.Equal(t, system.KeyEvents{
		JumpDown: true, JumpUp: true,
		LeftDown: true, LeftUp: true,
		RightDown: true, RightUp: true,
	}, input.Keys)
	assert.Equal(t, voice.CommandStop, input.Voice)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(idleReplayData(5, 1))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Level(t *testing.T) {
	assert.Equal(t, 2, NewReplayer(idleReplayData(1, 2)).Level())
}

func TestReplayer_Done(t *testing.T) {
	replayer := NewReplayer(idleReplayData(2, 1))

	assert.False(t, replayer.Done())
	replayer.GetInput()
	assert.False(t, replayer.Done())
	replayer.GetInput()
	assert.True(t, replayer.Done())

	_, ok := replayer.GetInput()
	assert.False(t, ok)
}

func TestDecodeReplay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		src := `{"version":"2.0","level":1,"startTime":"2024-01-01T00:00:00Z",
			"frames":[{"f":0,"rd":true},{"f":1,"v":"up"}]}`

		data, err := DecodeReplay(strings.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, 1, data.Level)
		require.Len(t, data.Frames, 2)
		assert.True(t, data.Frames[0].RD)
		assert.Equal(t, "up", data.Frames[1].V)
	})

	t.Run("unknown voice command", func(t *testing.T) {
		src := `{"frames":[{"f":0},{"f":1,"v":"jump"}]}`

		_, err := DecodeReplay(strings.NewReader(src))

		require.Error(t, err)
		assert.ErrorIs(t, err, voice.ErrUnknownCommand)
		assert.Contains(t, err.Error(), "frame 1")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeReplay(strings.NewReader("{"))
		assert.Error(t, err)
	})
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"2.0","level":3,"frames":[{"f":0,"ld":true}]}`), 0o644))

	data, err := LoadReplay(path)

	require.NoError(t, err)
	assert.Equal(t, 3, data.Level)
	assert.Len(t, data.Frames, 1)
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
