package glctx_test

import (
	"testing"

	"github.com/tinyrange/glctx"
	"github.com/tinyrange/glctx/gl/gltest"
	"github.com/tinyrange/glctx/internal/testenv"
)

func TestMonoExclusive(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	rec := gltest.NewRecorder()

	contexts := make([]*glctx.MonoContext, 3)
	for i := range contexts {
		c, e := glctx.NewMonoContext(rec, uintptr(i+1))
		require.NoError(e)
		defer c.Close()
		contexts[i] = c
	}

	// Construction binds, so the last constructed context holds the slot.
	assert.False(contexts[0].Current())
	assert.False(contexts[1].Current())
	assert.True(contexts[2].Current())

	for _, active := range []int{0, 2, 1, 1, 0} {
		require.NoError(contexts[active].MakeCurrent())
		for i, c := range contexts {
			assert.Equal(i == active, c.Current(), "after activating %d", active)
		}
	}
}

func TestMonoDisplacementHook(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	rec := gltest.NewRecorder()

	a, e := glctx.NewMonoContext(rec, 0xa)
	require.NoError(e)
	defer a.Close()

	displaced := 0
	a.OnLoseCurrent(func() { displaced++ })

	b, e := glctx.NewMonoContext(rec, 0xb)
	require.NoError(e)
	defer b.Close()

	assert.Equal(1, displaced)
	assert.False(a.Current())
	assert.True(b.Current())

	// Re-activating the already-current context notifies nobody.
	bDisplaced := 0
	b.OnLoseCurrent(func() { bDisplaced++ })
	require.NoError(b.MakeCurrent())
	assert.Equal(0, bDisplaced)

	require.NoError(a.MakeCurrent())
	assert.Equal(1, bDisplaced)
	assert.Equal(1, displaced)
}

func TestMonoDisplacementOrder(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	rec := gltest.NewRecorder()

	a, e := glctx.NewMonoContext(rec, 0xa)
	require.NoError(e)
	defer a.Close()
	b, e := glctx.NewMonoContext(rec, 0xb)
	require.NoError(e)
	defer b.Close()

	// The hook fires before the displacing context is recorded as current.
	require.NoError(b.MakeCurrent())
	var sawBCurrent bool
	b.OnLoseCurrent(func() { sawBCurrent = b.Current() })
	require.NoError(a.MakeCurrent())
	assert.True(sawBCurrent)
}

func TestMonoOnLoseCurrentCancel(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	rec := gltest.NewRecorder()

	a, e := glctx.NewMonoContext(rec, 0xa)
	require.NoError(e)
	defer a.Close()
	b, e := glctx.NewMonoContext(rec, 0xb)
	require.NoError(e)
	defer b.Close()

	require.NoError(a.MakeCurrent())
	n := 0
	cancel := a.OnLoseCurrent(func() { n++ })
	require.NoError(b.MakeCurrent())
	assert.Equal(1, n)

	require.NoError(a.MakeCurrent())
	assert.NoError(cancel.Close())
	require.NoError(b.MakeCurrent())
	assert.Equal(1, n)
}

func TestMonoCloseClearsSlot(t *testing.T) {
	assert, require := testenv.MakeAR(t)
	rec := gltest.NewRecorder()

	a, e := glctx.NewMonoContext(rec, 0xa)
	require.NoError(e)
	defer a.Close()
	b, e := glctx.NewMonoContext(rec, 0xb)
	require.NoError(e)

	require.NoError(b.Close())
	assert.False(a.Current())
	assert.False(b.Current())

	// An empty slot means activation displaces nobody.
	displaced := 0
	a.OnLoseCurrent(func() { displaced++ })
	require.NoError(a.MakeCurrent())
	assert.True(a.Current())
	assert.Equal(0, displaced)

	// Closing a non-current context leaves the slot alone.
	require.NoError(b.Close())
	assert.True(a.Current())
}
