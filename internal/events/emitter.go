// Package events provides a simple event emitter.
package events

import (
	"io"

	"github.com/tul/emission"
)

// Emitter is a simple event emitter.
// This is a thin wrapper of emission.Emitter that modifies the On method to
// return an io.Closer that cancels the callback registration.
type Emitter struct {
	*emission.Emitter
}

// NewEmitter creates a simple event emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		Emitter: emission.NewEmitter(),
	}
}

// On registers a callback when an event occurs.
// Returns an io.Closer that cancels the callback registration.
func (emitter *Emitter) On(event, listener interface{}) io.Closer {
	handle := emitter.Emitter.On(event, listener)
	return canceler{emitter.Emitter, event, handle}
}

// Once registers a one-time callback when an event occurs.
// Returns an io.Closer that cancels the callback registration.
func (emitter *Emitter) Once(event, listener interface{}) io.Closer {
	handle := emitter.Emitter.Once(event, listener)
	return canceler{emitter.Emitter, event, handle}
}

type canceler struct {
	emitter *emission.Emitter
	event   interface{}
	handle  emission.ListenerHandle
}

func (c canceler) Close() error {
	c.emitter.RemoveListener(c.event, c.handle)
	return nil
}
