package glctx

import (
	"io"

	"github.com/tinyrange/glctx/gl"
	"github.com/tinyrange/glctx/internal/events"
)

// evtLoseCurrent is emitted on a context when another context displaces it.
const evtLoseCurrent = "lose-current"

// Context is the tracking handle around a native OpenGL context.
//
// Exactly two implementations exist, MonoContext and MultiContext, selected
// at construction time. The interface exists for code that is generic over
// the currency policy, such as Get; there is no dynamic policy switching.
type Context interface {
	// Current reports whether this context is the current one for its
	// domain (the process for MonoContext, the creating thread for
	// MultiContext). Pure query, no side effects.
	Current() bool

	// MakeCurrent binds this context as current for its domain,
	// displacing and notifying the previously current context.
	// Making an already-current context current is a no-op.
	MakeCurrent() error

	// OnLoseCurrent registers fn to run when this context stops being
	// current because another context displaced it. The returned Closer
	// cancels the registration.
	//
	// fn runs synchronously during the displacing MakeCurrent, while the
	// multi policy's lock is held. It may query currency state but must
	// not call MakeCurrent on any context.
	OnLoseCurrent(fn func()) io.Closer

	// Close releases the currency record for this context. It does not
	// destroy the native context; the handle is not owned.
	io.Closer

	api() gl.OpenGL
}

// contextBase carries the state and forwarding calls shared by both context
// variants. The owner back-reference identifies the enclosing variant for
// currency checks; it never manages the owner's lifetime.
type contextBase struct {
	owner     Context
	handle    uintptr
	gl        gl.OpenGL
	clearMask uint32
	emitter   *events.Emitter
}

func newContextBase(api gl.OpenGL, handle uintptr) (contextBase, error) {
	if api == nil {
		var err error
		api, err = gl.Load()
		if err != nil {
			return contextBase{}, err
		}
	}
	return contextBase{
		handle:    handle,
		gl:        api,
		clearMask: gl.ColorBufferBit,
		emitter:   events.NewEmitter(),
	}, nil
}

func (c *contextBase) api() gl.OpenGL {
	return c.gl
}

// Handle returns the opaque native context handle. The handle is a
// non-owning reference; destroying the native context is the caller's
// responsibility.
func (c *contextBase) Handle() uintptr {
	return c.handle
}

func (c *contextBase) OnLoseCurrent(fn func()) io.Closer {
	return c.emitter.On(evtLoseCurrent, fn)
}

// loseCurrent notifies listeners that another context displaced this one.
// Listeners run synchronously and must not re-enter MakeCurrent.
func (c *contextBase) loseCurrent() {
	c.emitter.EmitSync(evtLoseCurrent)
}

// ClearMask returns the mask used by Clear. The default selects the color buffer.
func (c *contextBase) ClearMask() uint32 {
	return c.clearMask
}

// SetClearMask replaces the mask used by Clear.
func (c *contextBase) SetClearMask(mask uint32) {
	c.clearMask = mask
}

// Clear clears the buffers selected by the stored clear mask.
//
// The context must be current. Like all forwarding calls this precondition
// is enforced by the native layer, not re-checked here.
func (c *contextBase) Clear() error {
	c.gl.Clear(c.clearMask)
	return checkError(c.gl)
}

// ClearWith clears the buffers selected by mask, ignoring the stored mask.
func (c *contextBase) ClearWith(mask uint32) error {
	c.gl.Clear(mask)
	return checkError(c.gl)
}

// ClearColor sets the color used when clearing the color buffer.
func (c *contextBase) ClearColor(color Color) error {
	c.gl.ClearColor(color.R, color.G, color.B, color.A)
	return checkError(c.gl)
}

// Enable enables a server-side capability such as gl.Blend.
func (c *contextBase) Enable(cap uint32) error {
	c.gl.Enable(cap)
	return checkError(c.gl)
}

// Disable disables a server-side capability.
func (c *contextBase) Disable(cap uint32) error {
	c.gl.Disable(cap)
	return checkError(c.gl)
}

// IsEnabled reports whether a server-side capability is enabled.
func (c *contextBase) IsEnabled(cap uint32) (bool, error) {
	v := c.gl.IsEnabled(cap)
	return v, checkError(c.gl)
}

// MajorVersion returns the major version number of the context's API.
// The context must be current.
func (c *contextBase) MajorVersion() (int, error) {
	return Get[int](c.owner, gl.MajorVersion)
}

// MinorVersion returns the minor version number of the context's API.
// The context must be current.
func (c *contextBase) MinorVersion() (int, error) {
	return Get[int](c.owner, gl.MinorVersion)
}

// GetString returns a native string property such as gl.Vendor or
// gl.Version. Fails with ErrInactiveContext if the context is not current.
func (c *contextBase) GetString(name uint32) (string, error) {
	if !c.owner.Current() {
		return "", inactiveErr(name)
	}
	s := c.gl.GetString(name)
	return s, checkError(c.gl)
}
