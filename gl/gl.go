// Package gl exposes the subset of native OpenGL entry points needed for
// context state queries and buffer clears, with per-OS loaders.
package gl

import "unsafe"

const (
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000
	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100
	// StencilBufferBit is a mask used with Clear to clear the stencil buffer.
	StencilBufferBit = 0x00000400

	// Error codes returned by GetError.
	//
	// NoError means no error has been recorded since the last GetError call.
	NoError          = 0
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
	StackOverflow    = 0x0503
	StackUnderflow   = 0x0504
	OutOfMemory      = 0x0505

	// Parameters for the Get* family.
	//
	// MajorVersion is the major version number of the OpenGL API.
	MajorVersion = 0x821B
	// MinorVersion is the minor version number of the OpenGL API.
	MinorVersion = 0x821C
	// ColorClearValue is the color used to clear the color buffer,
	// reported as four consecutive floats (red, green, blue, alpha).
	ColorClearValue = 0x0C22
	// DepthClearValue is the depth used to clear the depth buffer.
	DepthClearValue = 0x0B73
	// DoubleBuffer reports whether the default framebuffer is double buffered.
	DoubleBuffer = 0x0C32

	// GetString parameters.
	//
	// Vendor returns the company responsible for the GL implementation.
	Vendor = 0x1F00
	// Renderer returns the name of the renderer.
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version = 0x1F02

	// Server-side capabilities for Enable, Disable and IsEnabled.
	Blend                  = 0x0BE2
	ColorLogicOp           = 0x0BF2
	CullFace               = 0x0B44
	DepthClamp             = 0x864F
	DepthTest              = 0x0B71
	Dither                 = 0x0BD0
	FramebufferSRGB        = 0x8DB9
	LineSmooth             = 0x0B20
	Multisample            = 0x809D
	PolygonOffsetFill      = 0x8037
	PolygonOffsetLine      = 0x2A02
	PolygonOffsetPoint     = 0x2A01
	PolygonSmooth          = 0x0B41
	PrimitiveRestart       = 0x8F9D
	ProgramPointSize       = 0x8642
	RasterizerDiscard      = 0x8C89
	SampleAlphaToCoverage  = 0x809E
	SampleAlphaToOne       = 0x809F
	SampleCoverage         = 0x80A0
	SampleMask             = 0x8E51
	SampleShading          = 0x8C36
	ScissorTest            = 0x0C11
	StencilTest            = 0x0B90
	TextureCubeMapSeamless = 0x884F
)

// OpenGL describes the native OpenGL entry points used by this module.
//
// Implementations typically wrap platform-specific GL bindings loaded with
// Load. All methods operate on whichever GL context is current for the
// calling thread; callers are responsible for establishing currency first.
type OpenGL interface {
	// Clear clears buffers to preset values (e.g., ColorBufferBit).
	Clear(mask uint32)

	// ClearColor sets the clear color used by Clear when clearing the color buffer.
	ClearColor(r, g, b, a float32)

	// Enable enables a server-side GL capability (e.g., Blend).
	Enable(cap uint32)

	// Disable disables a server-side GL capability.
	Disable(cap uint32)

	// IsEnabled reports whether a server-side GL capability is enabled.
	IsEnabled(cap uint32) bool

	// GetBooleanv writes the boolean value(s) of a parameter to data.
	// Zero means false, any other value means true.
	GetBooleanv(pname uint32, data *uint8)

	// GetIntegerv writes the integer value(s) of a parameter to data.
	GetIntegerv(pname uint32, data *int32)

	// GetInteger64v writes the 64-bit integer value(s) of a parameter to data.
	GetInteger64v(pname uint32, data *int64)

	// GetFloatv writes the float value(s) of a parameter to data.
	// Composite parameters such as ColorClearValue write several
	// consecutive values starting at data.
	GetFloatv(pname uint32, data *float32)

	// GetDoublev writes the double value(s) of a parameter to data.
	GetDoublev(pname uint32, data *float64)

	// GetError returns the first error recorded since the last GetError
	// call, or NoError.
	GetError() uint32

	// GetString returns a string describing a GL property for the current context.
	//
	// Common names are Vendor, Renderer and Version.
	// If the name is not recognized or no context is current, implementations may
	// return the empty string.
	GetString(name uint32) string
}

func gostring(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
