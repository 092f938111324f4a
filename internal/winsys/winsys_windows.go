//go:build windows

package winsys

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/tinyrange/glctx/gl"
)

const (
	pfdDrawToWindow  = 0x00000004
	pfdSupportOpenGL = 0x00000020
	pfdDoubleBuffer  = 0x00000001
	pfdTypeRGBA      = 0
	pfdMainPlane     = 0

	wsPopup = 0x80000000
)

// Mirrors PIXELFORMATDESCRIPTOR (must be 40 bytes).
type pixelFormatDescriptor struct {
	nSize           uint16
	nVersion        uint16
	dwFlags         uint32
	iPixelType      byte
	cColorBits      byte
	cRedBits        byte
	cRedShift       byte
	cGreenBits      byte
	cGreenShift     byte
	cBlueBits       byte
	cBlueShift      byte
	cAlphaBits      byte
	cAlphaShift     byte
	cAccumBits      byte
	cAccumRedBits   byte
	cAccumGreenBits byte
	cAccumBlueBits  byte
	cAccumAlphaBits byte
	cDepthBits      byte
	cStencilBits    byte
	cAuxBuffers     byte
	iLayerType      byte
	bReserved       byte
	dwLayerMask     uint32
	dwVisibleMask   uint32
	dwDamageMask    uint32
}

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	gdi32    = syscall.NewLazyDLL("gdi32.dll")
	opengl32 = syscall.NewLazyDLL("opengl32.dll")

	procCreateWindowEx = user32.NewProc("CreateWindowExW")
	procDestroyWindow  = user32.NewProc("DestroyWindow")
	procGetDC          = user32.NewProc("GetDC")
	procReleaseDC      = user32.NewProc("ReleaseDC")

	procChoosePixelFormat   = gdi32.NewProc("ChoosePixelFormat")
	procDescribePixelFormat = gdi32.NewProc("DescribePixelFormat")
	procSetPixelFormat      = gdi32.NewProc("SetPixelFormat")

	procWglCreateContext = opengl32.NewProc("wglCreateContext")
	procWglMakeCurrent   = opengl32.NewProc("wglMakeCurrent")
	procWglDeleteContext = opengl32.NewProc("wglDeleteContext")
)

// wglContext is a never-shown 1x1 window with a WGL context. The predefined
// STATIC window class avoids registering one of our own.
type wglContext struct {
	hwnd uintptr
	hdc  uintptr
	ctx  uintptr
}

func New() (Context, error) {
	runtime.LockOSThread()

	className, _ := syscall.UTF16PtrFromString("STATIC")
	windowName, _ := syscall.UTF16PtrFromString("glctx")
	hwnd, _, _ := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		wsPopup,
		0, 0, 1, 1,
		0, 0, 0, 0,
	)
	if hwnd == 0 {
		runtime.UnlockOSThread()
		return nil, errors.New("CreateWindowExW failed")
	}

	hdc, _, _ := procGetDC.Call(hwnd)
	if hdc == 0 {
		procDestroyWindow.Call(hwnd)
		runtime.UnlockOSThread()
		return nil, errors.New("GetDC failed")
	}

	if err := setPixelFormat(hdc); err != nil {
		procReleaseDC.Call(hwnd, hdc)
		procDestroyWindow.Call(hwnd)
		runtime.UnlockOSThread()
		return nil, err
	}

	ctx, _, _ := procWglCreateContext.Call(hdc)
	if ctx == 0 {
		procReleaseDC.Call(hwnd, hdc)
		procDestroyWindow.Call(hwnd)
		runtime.UnlockOSThread()
		return nil, errors.New("wglCreateContext failed")
	}
	if ret, _, _ := procWglMakeCurrent.Call(hdc, ctx); ret == 0 {
		procWglDeleteContext.Call(ctx)
		procReleaseDC.Call(hwnd, hdc)
		procDestroyWindow.Call(hwnd)
		runtime.UnlockOSThread()
		return nil, errors.New("wglMakeCurrent failed")
	}

	return &wglContext{hwnd: hwnd, hdc: hdc, ctx: ctx}, nil
}

func setPixelFormat(hdc uintptr) error {
	desired := pixelFormatDescriptor{
		nSize:        uint16(unsafe.Sizeof(pixelFormatDescriptor{})),
		nVersion:     1,
		dwFlags:      pfdDrawToWindow | pfdSupportOpenGL | pfdDoubleBuffer,
		iPixelType:   pfdTypeRGBA,
		cColorBits:   24,
		cDepthBits:   24,
		cStencilBits: 8,
		iLayerType:   pfdMainPlane,
	}

	pf, _, _ := procChoosePixelFormat.Call(hdc, uintptr(unsafe.Pointer(&desired)))
	if pf == 0 {
		return errors.New("ChoosePixelFormat failed")
	}

	// Set using the described PFD for the chosen index.
	var chosen pixelFormatDescriptor
	if r, _, _ := procDescribePixelFormat.Call(
		hdc, pf, uintptr(unsafe.Sizeof(chosen)), uintptr(unsafe.Pointer(&chosen)),
	); r == 0 {
		return errors.New("DescribePixelFormat failed")
	}

	if ok, _, _ := procSetPixelFormat.Call(hdc, pf, uintptr(unsafe.Pointer(&chosen))); ok == 0 {
		return fmt.Errorf("SetPixelFormat failed for index %d", pf)
	}
	return nil
}

func (c *wglContext) Handle() uintptr {
	return c.ctx
}

func (c *wglContext) GL() (gl.OpenGL, error) {
	return gl.Load()
}

func (c *wglContext) Close() {
	if c.ctx != 0 {
		procWglMakeCurrent.Call(c.hdc, 0)
		procWglDeleteContext.Call(c.ctx)
		c.ctx = 0
	}
	if c.hdc != 0 {
		procReleaseDC.Call(c.hwnd, c.hdc)
		c.hdc = 0
	}
	if c.hwnd != 0 {
		procDestroyWindow.Call(c.hwnd)
		c.hwnd = 0
	}
	runtime.UnlockOSThread()
}
