//go:build darwin

package thread

import "github.com/ebitengine/purego"

// pthread_self returns the pthread_t of the calling thread, which is stable
// and unique for the thread's lifetime.
var pthreadSelf func() uintptr

func init() {
	handle, err := purego.Dlopen("/usr/lib/libSystem.B.dylib", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		panic(err)
	}
	purego.RegisterLibFunc(&pthreadSelf, handle, "pthread_self")
}

func currentID() ID {
	return ID(pthreadSelf())
}
