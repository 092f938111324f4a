//go:build darwin

package winsys

import (
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/tinyrange/glctx/gl"
)

// NSOpenGL pixel format attributes.
const (
	nsOpenGLPFADoubleBuffer      = 5
	nsOpenGLPFAColorSize         = 8
	nsOpenGLPFADepthSize         = 12
	nsOpenGLPFAAccelerated       = 73
	nsOpenGLPFAOpenGLProfile     = 99
	nsOpenGLProfileVersionLegacy = 0x1000
)

var (
	initOnce sync.Once
	initErr  error

	selAlloc               objc.SEL
	selRelease             objc.SEL
	selInitWithAttributes  objc.SEL
	selInitWithFormat      objc.SEL
	selMakeCurrentContext  objc.SEL
	selClearCurrentContext objc.SEL
)

// nsglContext is an offscreen NSOpenGLContext with no view attached. It is
// sufficient for state queries and clears into the default framebuffer.
type nsglContext struct {
	ctx objc.ID
}

func New() (Context, error) {
	runtime.LockOSThread()
	if err := ensureRuntime(); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	attrs := []uint32{
		nsOpenGLPFAAccelerated,
		nsOpenGLPFADoubleBuffer,
		nsOpenGLPFAColorSize, 24,
		nsOpenGLPFADepthSize, 24,
		nsOpenGLPFAOpenGLProfile, nsOpenGLProfileVersionLegacy,
		0,
	}

	pf := objc.ID(objc.GetClass("NSOpenGLPixelFormat")).Send(selAlloc)
	pf = pf.Send(selInitWithAttributes, unsafe.Pointer(&attrs[0]))
	if pf == 0 {
		runtime.UnlockOSThread()
		return nil, errors.New("failed to create pixel format")
	}
	defer pf.Send(selRelease)

	ctx := objc.ID(objc.GetClass("NSOpenGLContext")).Send(selAlloc)
	ctx = ctx.Send(selInitWithFormat, pf, objc.ID(0))
	if ctx == 0 {
		runtime.UnlockOSThread()
		return nil, errors.New("failed to create gl context")
	}
	ctx.Send(selMakeCurrentContext)

	return &nsglContext{ctx: ctx}, nil
}

func (c *nsglContext) Handle() uintptr {
	return uintptr(c.ctx)
}

func (c *nsglContext) GL() (gl.OpenGL, error) {
	return gl.Load()
}

func (c *nsglContext) Close() {
	if c.ctx != 0 {
		objc.ID(objc.GetClass("NSOpenGLContext")).Send(selClearCurrentContext)
		c.ctx.Send(selRelease)
		c.ctx = 0
	}
	runtime.UnlockOSThread()
}

func ensureRuntime() error {
	initOnce.Do(func() {
		// Load libobjc and AppKit so the symbols are available.
		if _, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_GLOBAL); err != nil {
			initErr = err
			return
		}
		if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_GLOBAL); err != nil {
			initErr = err
			return
		}

		selAlloc = objc.RegisterName("alloc")
		selRelease = objc.RegisterName("release")
		selInitWithAttributes = objc.RegisterName("initWithAttributes:")
		selInitWithFormat = objc.RegisterName("initWithFormat:shareContext:")
		selMakeCurrentContext = objc.RegisterName("makeCurrentContext")
		selClearCurrentContext = objc.RegisterName("clearCurrentContext")
	})
	return initErr
}
