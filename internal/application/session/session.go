// Package session owns the state of one play session: the world, the
// player, the voice command bridge and the background recognition worker.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/voiceplatform/internal/domain/entity"
	"github.com/younwookim/voiceplatform/internal/infrastructure/config"
	"github.com/younwookim/voiceplatform/internal/infrastructure/voice"
)

// ErrStopTimeout is returned by Close when the worker does not stop in time
var ErrStopTimeout = errors.New("voice worker did not stop in time")

// Session groups the game state shared by the loop and the worker
type Session struct {
	World  *entity.World
	Player *entity.Player
	Bridge *voice.Bridge

	worker *voice.Worker
	group  *errgroup.Group
	cancel context.CancelFunc
}

// New creates a session with the player at the configured spawn.
// A nil recognizer disables voice input; the bridge then stays empty.
func New(cfg *config.GameConfig, world *entity.World, bridge *voice.Bridge, recognizer voice.Recognizer) *Session {
	if bridge == nil {
		bridge = voice.NewBridge()
	}
	x, y := cfg.SpawnPoint()

	s := &Session{
		World:  world,
		Player: entity.NewPlayer(x, y, cfg.Player.Sprite.Width, cfg.Player.Sprite.Height),
		Bridge: bridge,
	}
	if recognizer != nil {
		s.worker = voice.NewWorker(recognizer, bridge, cfg.Voice.RetryDelay())
	}
	return s
}

// Start launches the recognition worker. It is a no-op without a
// recognizer or when the worker is already running.
func (s *Session) Start(ctx context.Context) {
	if s.worker == nil || s.Running() {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.worker.Run(gctx)
	})

	s.group = g
	s.cancel = cancel
	log.Printf("Voice worker started")
}

// Running reports whether Start launched a worker that has not been closed
func (s *Session) Running() bool {
	return s.group != nil
}

// Close cancels the worker and waits up to timeout for the group to finish.
// A worker blocked inside a recognition cycle may outlive the timeout,
// in which case ErrStopTimeout is returned and the worker is abandoned.
func (s *Session) Close(timeout time.Duration) error {
	if !s.Running() {
		return nil
	}
	g := s.group
	s.cancel()
	s.group, s.cancel = nil, nil

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("voice worker: %w", err)
		}
		log.Printf("Voice worker stopped")
		return nil
	case <-timer.C:
		log.Printf("Voice worker still busy after %v, abandoning it", timeout)
		return ErrStopTimeout
	}
}
