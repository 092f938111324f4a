package glctx

import (
	"errors"
	"fmt"

	"github.com/tinyrange/glctx/gl"
)

var (
	// ErrInactiveContext reports an operation that requires currency being
	// attempted on a context that is not current. It is detected before any
	// native call is issued.
	ErrInactiveContext = errors.New("context is not current")

	// ErrWrongThread reports an attempt to make a MultiContext current on a
	// thread other than the one that created it. The activation is aborted
	// with no state change.
	ErrWrongThread = errors.New("context can only be made current on its creating thread")
)

// NativeError is a nonzero error code reported by glGetError after a
// forwarded native call. It is propagated to the caller unchanged.
type NativeError uint32

func (e NativeError) Error() string {
	switch uint32(e) {
	case gl.InvalidEnum:
		return "native error GL_INVALID_ENUM"
	case gl.InvalidValue:
		return "native error GL_INVALID_VALUE"
	case gl.InvalidOperation:
		return "native error GL_INVALID_OPERATION"
	case gl.StackOverflow:
		return "native error GL_STACK_OVERFLOW"
	case gl.StackUnderflow:
		return "native error GL_STACK_UNDERFLOW"
	case gl.OutOfMemory:
		return "native error GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("native error %#04x", uint32(e))
}

// checkError converts the pending native error code, if any, into a NativeError.
// Every forwarded native call is followed by this check.
func checkError(api gl.OpenGL) error {
	if code := api.GetError(); code != gl.NoError {
		return NativeError(code)
	}
	return nil
}
