package events_test

import (
	"testing"

	"github.com/tinyrange/glctx/internal/events"
	"github.com/tinyrange/glctx/internal/testenv"
)

func TestOnCancel(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	nA, nB := 0, 0
	fA := func() { nA++ }
	fB := func() { nB++ }

	emitter := events.NewEmitter()
	cA := emitter.On(1, fA)
	cB := emitter.On(1, fB)

	emitter.EmitSync(1)
	assert.Equal(1, nA)
	assert.Equal(1, nB)

	assert.NoError(cA.Close())
	emitter.EmitSync(1)
	assert.Equal(1, nA)
	assert.Equal(2, nB)

	assert.NoError(cA.Close())
	emitter.EmitSync(1)
	assert.Equal(1, nA)
	assert.Equal(3, nB)

	assert.NoError(cB.Close())
	emitter.EmitSync(1)
	assert.Equal(1, nA)
	assert.Equal(3, nB)
}

// Cancellation is per registration, not per function: registering the same
// listener twice and closing one keeps the other.
func TestOnCancelSameListener(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	n := 0
	f := func() { n++ }

	emitter := events.NewEmitter()
	c1 := emitter.On(1, f)
	c2 := emitter.On(1, f)

	emitter.EmitSync(1)
	assert.Equal(2, n)

	assert.NoError(c1.Close())
	emitter.EmitSync(1)
	assert.Equal(3, n)

	assert.NoError(c2.Close())
	emitter.EmitSync(1)
	assert.Equal(3, n)
}

func TestOnce(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	n := 0
	emitter := events.NewEmitter()
	emitter.Once(1, func() { n++ })

	emitter.EmitSync(1)
	emitter.EmitSync(1)
	assert.Equal(1, n)

	// Emitting with no listeners is harmless.
	emitter.EmitSync(2)
}
