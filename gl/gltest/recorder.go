// Package gltest provides a recording in-memory implementation of gl.OpenGL
// for tests that must observe native calls without a real GL context.
package gltest

import (
	"unsafe"

	"github.com/tinyrange/glctx/gl"
)

// Recorder implements gl.OpenGL backed by scripted results.
//
// Query results are looked up in the exported maps; a missing entry leaves
// the output untouched (zero). Every method increments a per-name call count.
type Recorder struct {
	// Calls counts invocations by GL function name, e.g. "glGetIntegerv".
	Calls map[string]int

	// Scripted query results, keyed by parameter name.
	Ints    map[uint32]int32
	Int64s  map[uint32]int64
	Bools   map[uint32]uint8
	Floats  map[uint32][]float32
	Doubles map[uint32]float64
	Strings map[uint32]string

	// Enabled tracks capability state toggled by Enable/Disable.
	Enabled map[uint32]bool

	// Errs is a queue of GetError results; once drained, GetError
	// returns gl.NoError.
	Errs []uint32

	// LastClearMask and LastClearColor record the most recent clear calls.
	LastClearMask  uint32
	LastClearColor [4]float32
}

var _ gl.OpenGL = (*Recorder)(nil)

// NewRecorder creates a Recorder with empty scripts.
func NewRecorder() *Recorder {
	return &Recorder{
		Calls:   map[string]int{},
		Ints:    map[uint32]int32{},
		Int64s:  map[uint32]int64{},
		Bools:   map[uint32]uint8{},
		Floats:  map[uint32][]float32{},
		Doubles: map[uint32]float64{},
		Strings: map[uint32]string{},
		Enabled: map[uint32]bool{},
	}
}

// Total returns the number of native calls recorded so far.
func (r *Recorder) Total() (n int) {
	for _, c := range r.Calls {
		n += c
	}
	return n
}

// Reset clears the call counts but keeps the scripted results.
func (r *Recorder) Reset() {
	r.Calls = map[string]int{}
}

// FailNext arranges for the next error check to observe the given GL error code.
func (r *Recorder) FailNext(code uint32) {
	r.Errs = append(r.Errs, code)
}

func (r *Recorder) Clear(mask uint32) {
	r.Calls["glClear"]++
	r.LastClearMask = mask
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.Calls["glClearColor"]++
	r.LastClearColor = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Enable(cap uint32) {
	r.Calls["glEnable"]++
	r.Enabled[cap] = true
}

func (r *Recorder) Disable(cap uint32) {
	r.Calls["glDisable"]++
	r.Enabled[cap] = false
}

func (r *Recorder) IsEnabled(cap uint32) bool {
	r.Calls["glIsEnabled"]++
	return r.Enabled[cap]
}

func (r *Recorder) GetBooleanv(pname uint32, data *uint8) {
	r.Calls["glGetBooleanv"]++
	if v, ok := r.Bools[pname]; ok {
		*data = v
	}
}

func (r *Recorder) GetIntegerv(pname uint32, data *int32) {
	r.Calls["glGetIntegerv"]++
	if v, ok := r.Ints[pname]; ok {
		*data = v
	}
}

func (r *Recorder) GetInteger64v(pname uint32, data *int64) {
	r.Calls["glGetInteger64v"]++
	if v, ok := r.Int64s[pname]; ok {
		*data = v
	}
}

// GetFloatv writes as many consecutive floats as the script holds for pname,
// matching how glGetFloatv fills composite parameters like ColorClearValue.
func (r *Recorder) GetFloatv(pname uint32, data *float32) {
	r.Calls["glGetFloatv"]++
	if vs, ok := r.Floats[pname]; ok {
		copy(unsafe.Slice(data, len(vs)), vs)
	}
}

func (r *Recorder) GetDoublev(pname uint32, data *float64) {
	r.Calls["glGetDoublev"]++
	if v, ok := r.Doubles[pname]; ok {
		*data = v
	}
}

func (r *Recorder) GetError() uint32 {
	r.Calls["glGetError"]++
	if len(r.Errs) == 0 {
		return gl.NoError
	}
	code := r.Errs[0]
	r.Errs = r.Errs[1:]
	return code
}

func (r *Recorder) GetString(name uint32) string {
	r.Calls["glGetString"]++
	return r.Strings[name]
}
