package glctx

import (
	"go.uber.org/zap"

	"github.com/tinyrange/glctx/gl"
	"github.com/tinyrange/glctx/internal/thread"
)

// multiCurrent maps each OS thread to the context current on it. An entry
// exists only while some context is current on that thread; absence is the
// canonical "no context" encoding.
//
// The map is shared mutable state across all threads. Each thread only ever
// writes its own key during activation, but Close may run on any thread, so
// every access goes through multiMu. The mutex is re-entrant so that
// lose-current listeners can query currency while it is held.
var (
	multiCurrent = map[thread.ID]*MultiContext{}
	multiMu      thread.Mutex
)

// MultiContext tracks currency per OS thread.
//
// A MultiContext is permanently bound to the OS thread it was created on and
// can only ever be made current there; activation from any other thread
// fails with ErrWrongThread. The creating goroutine must be locked to its
// thread with runtime.LockOSThread for the lifetime of the context, the
// usual discipline for GL work in Go.
//
// Closing is not thread-bound: a context may be destroyed from any thread.
type MultiContext struct {
	contextBase
	tid thread.ID
}

var _ Context = (*MultiContext)(nil)

// NewMultiContext wraps an externally created native context handle, binds
// it to the calling OS thread and immediately makes it current there.
//
// If api is nil, the native GL entry points are loaded with gl.Load.
func NewMultiContext(api gl.OpenGL, handle uintptr) (*MultiContext, error) {
	base, err := newContextBase(api, handle)
	if err != nil {
		return nil, err
	}
	c := &MultiContext{contextBase: base, tid: thread.Current()}
	c.owner = c
	if err := c.MakeCurrent(); err != nil {
		// Unreachable: the creating thread is the calling thread.
		return nil, err
	}
	return c, nil
}

// CreatedOn returns the identity of the thread this context was created on.
func (c *MultiContext) CreatedOn() uint64 {
	return uint64(c.tid)
}

// MakeCurrent records this context as current for its creating thread,
// notifying the context it displaces. Called from any other thread it fails
// with ErrWrongThread and leaves every thread's record unchanged.
// Already current is a no-op and notifies nobody.
func (c *MultiContext) MakeCurrent() error {
	if thread.Current() != c.tid {
		return ErrWrongThread
	}
	multiMu.Lock()
	defer multiMu.Unlock()
	prev := multiCurrent[c.tid]
	if prev == c {
		return nil
	}
	if prev != nil {
		// Listeners run with multiMu held; the lock is re-entrant so
		// they may query currency, but must not call MakeCurrent.
		prev.loseCurrent()
	}
	multiCurrent[c.tid] = c
	logger.Debug("multi context made current",
		zap.Uintptr("handle", c.handle), zap.Uint64("thread", uint64(c.tid)))
	return nil
}

// Current reports whether this context is current on its creating thread.
// Called from any other thread it returns false without taking the lock.
func (c *MultiContext) Current() bool {
	if thread.Current() != c.tid {
		return false
	}
	multiMu.Lock()
	defer multiMu.Unlock()
	return multiCurrent[c.tid] == c
}

// Close erases this context's currency record if it still holds one, so no
// dangling reference survives. Close may run on any thread; only activation
// is thread-bound. The native handle is left untouched.
func (c *MultiContext) Close() error {
	multiMu.Lock()
	defer multiMu.Unlock()
	if multiCurrent[c.tid] == c {
		delete(multiCurrent, c.tid)
		logger.Debug("multi context closed while current",
			zap.Uintptr("handle", c.handle), zap.Uint64("thread", uint64(c.tid)))
	}
	return nil
}
