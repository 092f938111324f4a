// Package winsys creates offscreen native OpenGL contexts, giving example
// programs and manual tests a real handle to wrap.
//
// New locks the calling goroutine to its OS thread and leaves the created
// context natively current on it.
package winsys

import "github.com/tinyrange/glctx/gl"

// Context is a native OpenGL context attached to a hidden drawable.
type Context interface {
	// Handle returns the opaque native context handle.
	Handle() uintptr

	// GL loads the OpenGL entry points.
	GL() (gl.OpenGL, error)

	// Close releases the native context, its drawable and the OS thread lock.
	Close()
}
