package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/voiceplatform/internal/application/replay"
	"github.com/younwookim/voiceplatform/internal/application/system"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for the given level
func NewRecorder(level int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's key transitions and voice command
func (r *Recorder) RecordFrame(keys system.KeyEvents, cmd voice.Command, hasCmd bool) {
	if !r.recording {
		return
	}

	frameInput := replay.FrameInput{
		F:  r.frame,
		JD: keys.JumpDown,
		JU: keys.JumpUp,
		LD: keys.LeftDown,
		LU: keys.LeftUp,
		RD: keys.RightDown,
		RU: keys.RightUp,
	}
	if hasCmd {
		frameInput.V = string(cmd)
	}

	r.data.Frames = append(r.data.Frames, frameInput)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
