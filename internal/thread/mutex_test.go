package thread

import (
	"runtime"
	"testing"

	"github.com/tinyrange/glctx/internal/testenv"
)

func TestCurrent(t *testing.T) {
	assert, _ := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	id := Current()
	assert.NotZero(id)
	assert.Equal(id, Current())

	other := make(chan ID)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- Current()
	}()
	assert.NotEqual(id, <-other)
}

func TestMutexReentrant(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var m Mutex
	m.Lock()
	m.Lock()
	m.Unlock()
	m.Unlock()

	// Fully released: another thread can acquire it.
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		m.Lock()
		m.Unlock()
		close(done)
	}()
	<-done
}

func TestMutexExcludes(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	var m Mutex
	const workers = 4
	const iterations = 1000

	counter := 0
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			for j := 0; j < iterations; j++ {
				m.Lock()
				counter++
				m.Unlock()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	assert.Equal(workers*iterations, counter)
}
