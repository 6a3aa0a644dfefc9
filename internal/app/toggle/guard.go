package toggle

import (
	"sync"
)

// Guard prevents two concurrent polling loops for the same resource.
// Lock is an atomic check-and-set; a second caller for the same id is
// rejected, never queued.
type Guard interface {
	Lock(id string) bool
	Unlock(id string)
}

// guard implements Guard
type guard struct {
	mu     sync.Mutex
	active map[string]bool
}

// NewGuard creates a new Guard instance
func NewGuard() Guard {
	return &guard{
		active: make(map[string]bool),
	}
}

// Lock attempts to mark the resource as having a poll in flight,
// returns true if acquired
func (g *guard) Lock(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active[id] {
		return false
	}

	g.active[id] = true

	return true
}

// Unlock clears the in-flight mark for the resource
func (g *guard) Unlock(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, id)
}
