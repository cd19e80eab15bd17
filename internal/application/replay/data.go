package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the input of a single frame: the key transitions
// and the voice command visible on the bridge that frame.
type FrameInput struct {
	F  int    `json:"f"`            // Frame number
	JD bool   `json:"jd,omitempty"` // Jump key down
	JU bool   `json:"ju,omitempty"` // Jump key up
	LD bool   `json:"ld,omitempty"` // Left key down
	LU bool   `json:"lu,omitempty"` // Left key up
	RD bool   `json:"rd,omitempty"` // Right key down
	RU bool   `json:"ru,omitempty"` // Right key up
	V  string `json:"v,omitempty"`  // Voice command, empty when none was posted yet
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
