package voice

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRecognizer replays a fixed list of results, then blocks until ctx ends
type scriptedRecognizer struct {
	mu      sync.Mutex
	results []result
	calls   int
}

type result struct {
	cmd Command
	err error
}

func (s *scriptedRecognizer) Recognize(ctx context.Context) (Command, error) {
	s.mu.Lock()
	if s.calls < len(s.results) {
		r := s.results[s.calls]
		s.calls++
		s.mu.Unlock()
		return r.cmd, r.err
	}
	s.mu.Unlock()
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWorker_PostsForwardedCommandsOnly(t *testing.T) {
	bridge := NewBridge()
	rec := NewLineRecognizer(strings.NewReader("yes left go no"))
	w := NewWorker(rec, bridge, 0)

	err := w.Run(context.Background())
	require.NoError(t, err, "EOF ends the worker cleanly")

	cmd, ok := bridge.Peek()
	assert.True(t, ok)
	assert.Equal(t, CommandLeft, cmd, "unforwarded commands must not overwrite the slot")
}

func TestWorker_KeepsLatestCommand(t *testing.T) {
	bridge := NewBridge()
	w := NewWorker(NewLineRecognizer(strings.NewReader("left up right stop")), bridge, 0)

	require.NoError(t, w.Run(context.Background()))

	cmd, _ := bridge.Peek()
	assert.Equal(t, CommandStop, cmd)
}

func TestWorker_DownLeavesEarlierCommand(t *testing.T) {
	bridge := NewBridge()
	w := NewWorker(NewLineRecognizer(strings.NewReader("left down")), bridge, 0)

	require.NoError(t, w.Run(context.Background()))

	cmd, ok := bridge.Peek()
	assert.True(t, ok)
	assert.Equal(t, CommandLeft, cmd, "down is recognized but keeps left in the slot")
}

func TestWorker_SkipsUnknownTokens(t *testing.T) {
	bridge := NewBridge()
	w := NewWorker(NewLineRecognizer(strings.NewReader("right hop")), bridge, time.Hour)

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("unknown tokens must not trigger the retry delay")
	}

	cmd, _ := bridge.Peek()
	assert.Equal(t, CommandRight, cmd)
}

func TestWorker_RetriesAfterFailure(t *testing.T) {
	bridge := NewBridge()
	rec := &scriptedRecognizer{results: []result{
		{err: errors.New("mic unplugged")},
		{cmd: CommandUp},
	}}
	w := NewWorker(rec, bridge, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		cmd, ok := bridge.Peek()
		return ok && cmd == CommandUp
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestWorker_StopsWhenCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &scriptedRecognizer{results: []result{{cmd: CommandLeft}}}
	bridge := NewBridge()
	err := NewWorker(rec, bridge, 0).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	_, ok := bridge.Peek()
	assert.False(t, ok)
}

func TestWorker_EOFFromPipeline(t *testing.T) {
	p := &Pipeline{Capturer: &stubCapturer{err: io.EOF}, Classifier: &stubClassifier{}}

	err := NewWorker(p, NewBridge(), 0).Run(context.Background())
	assert.NoError(t, err)
}
