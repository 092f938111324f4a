package thread

import (
	"sync"

	"go.uber.org/atomic"
)

// Mutex is a re-entrant mutual exclusion lock keyed on OS thread identity.
// A thread that holds the lock may lock it again without deadlocking; each
// Lock must be balanced by an Unlock from the same thread.
//
// The zero value is an unlocked Mutex. Callers must be locked to their OS
// thread (runtime.LockOSThread) while holding it.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Uint64
	depth int
}

func (m *Mutex) Lock() {
	id := uint64(Current())
	if m.owner.Load() == id {
		// Only the owning thread can observe its own ID here, so depth
		// is mutated exclusively under the lock.
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

func (m *Mutex) Unlock() {
	if m.owner.Load() != uint64(Current()) {
		panic("thread: Unlock of Mutex held by another thread")
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}
