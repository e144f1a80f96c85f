// Package state holds the active (room, drawer) selection. It is the
// only shared mutable state in the core: every confirmed folder is
// filed under whatever pair is selected at confirm time.
package state

import "sync"

// Default selection at startup.
const (
	DefaultRoom   = "Sala 1"
	DefaultDrawer = "Gaveta 1"
)

// ActiveLocation is a mutex-guarded (room, drawer) pair. Set accepts
// any strings without validating them against the registry; the confirm
// operation resolves the pair and fails closed if it no longer exists.
// The lock guarantees readers always observe a complete pair, never a
// new room combined with a stale drawer.
type ActiveLocation struct {
	mu     sync.RWMutex
	room   string
	drawer string
}

// NewActiveLocation returns an ActiveLocation initialized to the given
// default pair.
func NewActiveLocation(room, drawer string) *ActiveLocation {
	return &ActiveLocation{room: room, drawer: drawer}
}

// Get returns the current (room, drawer) pair.
func (l *ActiveLocation) Get() (room, drawer string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.room, l.drawer
}

// Set replaces both halves of the pair atomically.
func (l *ActiveLocation) Set(room, drawer string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.room = room
	l.drawer = drawer
}
