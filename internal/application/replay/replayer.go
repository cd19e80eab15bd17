package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/voiceplatform/internal/application/system"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// ReplayInput is one frame of input ready to feed the input system
type ReplayInput struct {
	Keys     system.KeyEvents
	Voice    voice.Command
	HasVoice bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads replay data and checks its voice commands
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	for _, fi := range data.Frames {
		if fi.V == "" {
			continue
		}
		if _, err := voice.ParseCommand(fi.V); err != nil {
			return nil, fmt.Errorf("frame %d: %w", fi.F, err)
		}
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	in := ReplayInput{
		Keys: system.KeyEvents{
			JumpDown:  fi.JD,
			JumpUp:    fi.JU,
			LeftDown:  fi.LD,
			LeftUp:    fi.LU,
			RightDown: fi.RD,
			RightUp:   fi.RU,
		},
	}
	if fi.V != "" {
		in.Voice = voice.Command(fi.V)
		in.HasVoice = true
	}
	return in, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() int {
	return r.data.Level
}
