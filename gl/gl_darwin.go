//go:build darwin

package gl

import (
	"github.com/ebitengine/purego"
)

type openGL struct {
	clear         func(uint32)
	clearColor    func(float32, float32, float32, float32)
	enable        func(uint32)
	disable       func(uint32)
	isEnabled     func(uint32) bool
	getBooleanv   func(uint32, *uint8)
	getIntegerv   func(uint32, *int32)
	getInteger64v func(uint32, *int64)
	getFloatv     func(uint32, *float32)
	getDoublev    func(uint32, *float64)
	getError      func() uint32
	getString     func(uint32) *byte
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear(mask)
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor(r, g, b, a)
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable(cap)
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable(cap)
}

func (gl *openGL) IsEnabled(cap uint32) bool {
	return gl.isEnabled(cap)
}

func (gl *openGL) GetBooleanv(pname uint32, data *uint8) {
	gl.getBooleanv(pname, data)
}

func (gl *openGL) GetIntegerv(pname uint32, data *int32) {
	gl.getIntegerv(pname, data)
}

func (gl *openGL) GetInteger64v(pname uint32, data *int64) {
	gl.getInteger64v(pname, data)
}

func (gl *openGL) GetFloatv(pname uint32, data *float32) {
	gl.getFloatv(pname, data)
}

func (gl *openGL) GetDoublev(pname uint32, data *float64) {
	gl.getDoublev(pname, data)
}

func (gl *openGL) GetError() uint32 {
	return gl.getError()
}

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

func Load() (OpenGL, error) {
	handle, err := purego.Dlopen("/System/Library/Frameworks/OpenGL.framework/OpenGL", purego.RTLD_GLOBAL|purego.RTLD_LAZY)
	if err != nil {
		return nil, err
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}

	gl := &openGL{}
	register(&gl.clear, "glClear")
	register(&gl.clearColor, "glClearColor")
	register(&gl.enable, "glEnable")
	register(&gl.disable, "glDisable")
	register(&gl.isEnabled, "glIsEnabled")
	register(&gl.getBooleanv, "glGetBooleanv")
	register(&gl.getIntegerv, "glGetIntegerv")
	register(&gl.getInteger64v, "glGetInteger64v")
	register(&gl.getFloatv, "glGetFloatv")
	register(&gl.getDoublev, "glGetDoublev")
	register(&gl.getError, "glGetError")
	register(&gl.getString, "glGetString")
	return gl, nil
}
