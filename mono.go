package glctx

import (
	"go.uber.org/zap"

	"github.com/tinyrange/glctx/gl"
)

// monoCurrent is the single process-wide currency slot. It holds a
// non-owning reference; Close clears it. Deliberately unlocked, see MonoContext.
var monoCurrent *MonoContext

// MonoContext tracks currency in one process-wide slot with no locking.
//
// It is meant for programs whose GL work all happens on a single thread.
// Using MonoContext operations from more than one thread is a data race and
// undefined behavior; callers needing cross-thread contexts use MultiContext.
type MonoContext struct {
	contextBase
}

var _ Context = (*MonoContext)(nil)

// NewMonoContext wraps an externally created native context handle and
// immediately makes the new context current, displacing any previously
// current MonoContext.
//
// If api is nil, the native GL entry points are loaded with gl.Load.
func NewMonoContext(api gl.OpenGL, handle uintptr) (*MonoContext, error) {
	base, err := newContextBase(api, handle)
	if err != nil {
		return nil, err
	}
	c := &MonoContext{contextBase: base}
	c.owner = c
	c.MakeCurrent()
	return c, nil
}

// MakeCurrent records this context as the process-wide current one. The
// displaced context, if any, is notified before the slot is overwritten.
// Already current is a no-op and notifies nobody.
//
// The error is always nil; the signature satisfies Context.
func (c *MonoContext) MakeCurrent() error {
	if monoCurrent == c {
		return nil
	}
	if prev := monoCurrent; prev != nil {
		prev.loseCurrent()
	}
	monoCurrent = c
	logger.Debug("mono context made current", zap.Uintptr("handle", c.handle))
	return nil
}

// Current reports whether this context holds the process-wide slot.
func (c *MonoContext) Current() bool {
	return monoCurrent == c
}

// Close clears the process-wide slot if this context still holds it, so no
// dangling currency record survives the context. The native handle is left
// untouched.
func (c *MonoContext) Close() error {
	if monoCurrent == c {
		monoCurrent = nil
		logger.Debug("mono context closed while current", zap.Uintptr("handle", c.handle))
	}
	return nil
}
