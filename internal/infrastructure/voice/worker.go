package voice

import (
	"context"
	"errors"
	"io"
	"log"
	"time"
)

// Worker runs recognition cycles and posts forwarded commands to a Bridge
type Worker struct {
	recognizer Recognizer
	bridge     *Bridge
	retryDelay time.Duration
}

// NewWorker creates a worker feeding bridge from recognizer
func NewWorker(recognizer Recognizer, bridge *Bridge, retryDelay time.Duration) *Worker {
	return &Worker{
		recognizer: recognizer,
		bridge:     bridge,
		retryDelay: retryDelay,
	}
}

// Run loops until ctx is cancelled or the recognizer reports io.EOF.
// Cancellation is checked between cycles; a cycle that is blocked in
// capture finishes before Run can return.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := w.recognizer.Recognize(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Printf("Voice input closed")
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.Printf("Voice recognition failed: %v", err)
			if errors.Is(err, ErrUnknownCommand) {
				continue
			}
			if !w.wait(ctx) {
				return ctx.Err()
			}
			continue
		}

		if !cmd.Forwarded() {
			continue
		}
		w.bridge.Post(cmd)
		log.Printf("Predicted label: %s", cmd)
	}
}

// wait sleeps for the retry delay, returning false if ctx ends first
func (w *Worker) wait(ctx context.Context) bool {
	if w.retryDelay <= 0 {
		return true
	}
	timer := time.NewTimer(w.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
