package syncengine

import "sync"

type guardState int

const (
	guardIdle guardState = iota
	guardPending
)

// commandGuard allows one in-flight command of a kind at a time.
// Idle --TryAcquire--> Pending --release--> Idle.
type commandGuard struct {
	mu    sync.Mutex
	state guardState
}

// TryAcquire moves the guard to Pending. It reports false, and returns a nil
// release, when a command is already pending. The release func is idempotent.
func (g *commandGuard) TryAcquire() (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == guardPending {
		return nil, false
	}

	g.state = guardPending

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.state = guardIdle
			g.mu.Unlock()
		})
	}, true
}

// Pending reports whether a command currently holds the guard.
func (g *commandGuard) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == guardPending
}
