//go:build windows

package gl

import (
	"math"
	"syscall"
	"unsafe"
)

type openGL struct {
	clear         *syscall.LazyProc
	clearColor    *syscall.LazyProc
	enable        *syscall.LazyProc
	disable       *syscall.LazyProc
	isEnabled     *syscall.LazyProc
	getBooleanv   *syscall.LazyProc
	getIntegerv   *syscall.LazyProc
	getInteger64v *syscall.LazyProc
	getFloatv     *syscall.LazyProc
	getDoublev    *syscall.LazyProc
	getError      *syscall.LazyProc
	getString     *syscall.LazyProc
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear.Call(uintptr(mask))
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor.Call(f32(r), f32(g), f32(b), f32(a))
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable.Call(uintptr(cap))
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable.Call(uintptr(cap))
}

func (gl *openGL) IsEnabled(cap uint32) bool {
	ret, _, _ := gl.isEnabled.Call(uintptr(cap))
	return byte(ret) != 0
}

func (gl *openGL) GetBooleanv(pname uint32, data *uint8) {
	gl.getBooleanv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GetIntegerv(pname uint32, data *int32) {
	gl.getIntegerv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GetInteger64v(pname uint32, data *int64) {
	gl.getInteger64v.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GetFloatv(pname uint32, data *float32) {
	gl.getFloatv.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GetDoublev(pname uint32, data *float64) {
	gl.getDoublev.Call(uintptr(pname), uintptr(unsafe.Pointer(data)))
}

func (gl *openGL) GetError() uint32 {
	ret, _, _ := gl.getError.Call()
	return uint32(ret)
}

func (gl *openGL) GetString(name uint32) string {
	ptr, _, _ := gl.getString.Call(uintptr(name))
	return gostring((*byte)(unsafe.Pointer(ptr)))
}

func Load() (OpenGL, error) {
	opengl32 := syscall.NewLazyDLL("opengl32.dll")
	gl := &openGL{
		clear:         opengl32.NewProc("glClear"),
		clearColor:    opengl32.NewProc("glClearColor"),
		enable:        opengl32.NewProc("glEnable"),
		disable:       opengl32.NewProc("glDisable"),
		isEnabled:     opengl32.NewProc("glIsEnabled"),
		getBooleanv:   opengl32.NewProc("glGetBooleanv"),
		getIntegerv:   opengl32.NewProc("glGetIntegerv"),
		getInteger64v: opengl32.NewProc("glGetInteger64v"),
		getFloatv:     opengl32.NewProc("glGetFloatv"),
		getDoublev:    opengl32.NewProc("glGetDoublev"),
		getError:      opengl32.NewProc("glGetError"),
		getString:     opengl32.NewProc("glGetString"),
	}
	return gl, nil
}

func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}
