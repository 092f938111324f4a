// Package thread identifies OS threads and provides a re-entrant mutex
// keyed on that identity.
package thread

// ID identifies an OS thread. IDs are never zero.
type ID uint64

// Current returns the calling OS thread's identifier.
//
// The result only identifies the calling goroutine while it is locked to its
// thread with runtime.LockOSThread; an unlocked goroutine may migrate between
// threads at any preemption point.
func Current() ID {
	return currentID()
}
