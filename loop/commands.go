package loop

import (
	"slices"
	"sync"

	"github.com/plus3/blockfall/tetris"
)

// Commands buffers player input between frames and functions deferred until
// the end of the current frame. Push may be called from any goroutine.
type Commands struct {
	mu      sync.Mutex
	pending []tetris.Command
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a command for the next frame.
func (c *Commands) Push(cmd tetris.Command) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// Drain removes and returns the queued commands in the order they were pushed.
func (c *Commands) Drain() []tetris.Command {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := slices.Clone(c.pending)
	c.pending = c.pending[:0]
	return drained
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Defer queues fn to run after every system of the current frame.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	c.defers = append(c.defers, fn)
	c.mu.Unlock()
}

// Flush runs the deferred functions in order and clears them.
func (c *Commands) Flush() {
	c.mu.Lock()
	defers := slices.Clone(c.defers)
	c.defers = c.defers[:0]
	c.mu.Unlock()

	for _, fn := range defers {
		fn()
	}
}
