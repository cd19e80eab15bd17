package voice

import "sync"

// Bridge is a single-slot mailbox between the recognition worker and the
// game loop. Post replaces the slot; Peek reads it without clearing, so a
// command keeps being observed every frame until a newer one replaces it.
type Bridge struct {
	mu  sync.Mutex
	cmd Command
	set bool
}

// NewBridge creates an empty bridge
func NewBridge() *Bridge {
	return &Bridge{}
}

// Post stores cmd as the latest command
func (b *Bridge) Post(cmd Command) {
	b.mu.Lock()
	b.cmd = cmd
	b.set = true
	b.mu.Unlock()
}

// Peek returns the latest command, if any has been posted
func (b *Bridge) Peek() (Command, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cmd, b.set
}
