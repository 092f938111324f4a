package glctx_test

import (
	"runtime"
	"testing"

	"github.com/tinyrange/glctx"
	"github.com/tinyrange/glctx/gl/gltest"
	"github.com/tinyrange/glctx/internal/testenv"
)

func TestMultiSameThread(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rec := gltest.NewRecorder()

	c1, e := glctx.NewMultiContext(rec, 0x1)
	require.NoError(e)
	defer c1.Close()
	assert.True(c1.Current())

	displaced := 0
	c1.OnLoseCurrent(func() { displaced++ })

	c2, e := glctx.NewMultiContext(rec, 0x2)
	require.NoError(e)
	defer c2.Close()

	assert.Equal(1, displaced)
	assert.False(c1.Current())
	assert.True(c2.Current())
	assert.Equal(c1.CreatedOn(), c2.CreatedOn())

	// Already current: no-op, no notification.
	c2Displaced := 0
	c2.OnLoseCurrent(func() { c2Displaced++ })
	require.NoError(c2.MakeCurrent())
	assert.Equal(0, c2Displaced)

	require.NoError(c1.MakeCurrent())
	assert.Equal(1, c2Displaced)
	assert.True(c1.Current())
}

// Lose-current listeners run while the currency lock is held; querying
// currency from one exercises the lock's re-entrancy.
func TestMultiListenerQueriesCurrency(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rec := gltest.NewRecorder()

	c1, e := glctx.NewMultiContext(rec, 0x1)
	require.NoError(e)
	defer c1.Close()
	c2, e := glctx.NewMultiContext(rec, 0x2)
	require.NoError(e)
	defer c2.Close()

	require.NoError(c1.MakeCurrent())
	var sawC1Current, sawC2Current bool
	c1.OnLoseCurrent(func() {
		sawC1Current = c1.Current()
		sawC2Current = c2.Current()
	})
	require.NoError(c2.MakeCurrent())

	// The hook observes the state before the slot is overwritten.
	assert.True(sawC1Current)
	assert.False(sawC2Current)
}

func TestMultiThreadAffinity(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rec := gltest.NewRecorder()

	c1, e := glctx.NewMultiContext(rec, 0x11)
	require.NoError(e)
	defer c1.Close()
	assert.True(c1.Current())

	type snapshot struct {
		c2        *glctx.MultiContext
		err       error
		c1Current bool
		c2Current bool
	}
	created := make(chan snapshot)
	recheck := make(chan struct{})
	done := make(chan snapshot)

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		c2, e := glctx.NewMultiContext(rec, 0x22)
		if e != nil {
			created <- snapshot{err: e}
			return
		}
		created <- snapshot{c2: c2, c1Current: c1.Current(), c2Current: c2.Current()}
		<-recheck
		done <- snapshot{c2Current: c2.Current()}
		c2.Close()
	}()

	s := <-created
	require.NoError(s.err)
	c2 := s.c2

	// Both contexts are current simultaneously, one per thread.
	assert.True(s.c2Current)
	assert.True(c1.Current())
	// Off-thread currency queries short-circuit to false.
	assert.False(s.c1Current)
	assert.False(c2.Current())
	assert.NotEqual(c1.CreatedOn(), c2.CreatedOn())

	// Activating a context on a foreign thread fails and changes nothing.
	err := c2.MakeCurrent()
	assert.ErrorIs(err, glctx.ErrWrongThread)
	assert.True(c1.Current())

	close(recheck)
	s = <-done
	assert.True(s.c2Current)
}

func TestMultiCloseClearsRecord(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rec := gltest.NewRecorder()

	c1, e := glctx.NewMultiContext(rec, 0x1)
	require.NoError(e)
	defer c1.Close()
	c2, e := glctx.NewMultiContext(rec, 0x2)
	require.NoError(e)

	require.NoError(c2.Close())
	assert.False(c1.Current())
	assert.False(c2.Current())

	// The erased record means re-activation displaces nobody.
	displaced := 0
	c1.OnLoseCurrent(func() { displaced++ })
	require.NoError(c1.MakeCurrent())
	assert.True(c1.Current())
	assert.Equal(0, displaced)
}

// Only activation is thread-bound; a context may be closed from any thread.
func TestMultiCloseFromOtherThread(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rec := gltest.NewRecorder()

	c, e := glctx.NewMultiContext(rec, 0x1)
	require.NoError(e)
	assert.True(c.Current())

	done := make(chan error)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		done <- c.Close()
	}()
	require.NoError(<-done)
	assert.False(c.Current())
}
