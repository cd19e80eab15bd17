package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Recognizer produces one classified command per call.
// Implementations may block for as long as a capture takes.
type Recognizer interface {
	Recognize(ctx context.Context) (Command, error)
}

// Capturer records one audio clip
type Capturer interface {
	Capture(ctx context.Context) ([]float32, error)
}

// Classifier turns an audio clip into one score per Vocabulary entry
type Classifier interface {
	Classify(ctx context.Context, clip []float32) ([]float32, error)
}

// Pipeline recognizes commands by capturing a clip and picking the
// highest scoring label.
type Pipeline struct {
	Capturer   Capturer
	Classifier Classifier
}

// Recognize implements Recognizer
func (p *Pipeline) Recognize(ctx context.Context) (Command, error) {
	clip, err := p.Capturer.Capture(ctx)
	if err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}

	scores, err := p.Classifier.Classify(ctx, clip)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}
	if len(scores) != len(Vocabulary) {
		return "", fmt.Errorf("classify: got %d scores for %d labels", len(scores), len(Vocabulary))
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return Vocabulary[best], nil
}

// LineRecognizer reads whitespace separated command tokens from a reader.
// It stands in for the microphone when commands are typed or piped in.
type LineRecognizer struct {
	scanner *bufio.Scanner
}

// NewLineRecognizer creates a recognizer over r
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &LineRecognizer{scanner: scanner}
}

// Recognize returns the next token. It returns io.EOF when the reader is
// exhausted. The read itself cannot be interrupted by ctx.
func (l *LineRecognizer) Recognize(ctx context.Context) (Command, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", fmt.Errorf("read command: %w", err)
		}
		return "", io.EOF
	}
	return ParseCommand(l.scanner.Text())
}
