// Package refs merges multiple interested consumers onto one underlying
// element handle.
//
// A widget's root element is often wanted by several collaborators at once:
// the widget's own state, a focus trap, an outside-interaction boundary.
// Composing their setters yields a single setter the rendering layer can
// call when the element mounts or unmounts.
package refs

import (
	"errors"

	"github.com/go-drift/headless/pkg/dom"
)

// ErrNoConsumers is returned by TryCompose when no consumers are given.
var ErrNoConsumers = errors.New("refs: compose requires at least one consumer")

// Setter receives the underlying element handle when it becomes available,
// or nil when it goes away.
type Setter func(dom.Element)

// Composer fans a single element handle out to every registered consumer.
type Composer struct {
	consumers []Setter
	current   dom.Element
}

// Compose returns a composer over the given consumers.
// Panics when no consumers are given: a composition nobody consumes is a
// configuration error. Use TryCompose when the consumer list is built
// dynamically and may legitimately be empty.
func Compose(consumers ...Setter) *Composer {
	c, err := TryCompose(consumers...)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// TryCompose is Compose without the misuse panic: it reports an empty
// consumer list as ErrNoConsumers instead.
func TryCompose(consumers ...Setter) (*Composer, error) {
	if len(consumers) == 0 {
		return nil, ErrNoConsumers
	}
	c := &Composer{}
	c.consumers = append(c.consumers, consumers...)
	return c, nil
}

// Set forwards the handle to every current consumer in registration order.
// Passing nil clears the handle on unmount.
func (c *Composer) Set(el dom.Element) {
	c.current = el
	for _, consumer := range c.consumers {
		if consumer != nil {
			consumer(el)
		}
	}
}

// Add registers another consumer. When a handle is already known the new
// consumer is backfilled with it immediately. There is no explicit detach:
// removal rides the owner's normal unmount teardown, which clears the
// handle for everyone via Set(nil).
func (c *Composer) Add(consumer Setter) {
	if consumer == nil {
		return
	}
	c.consumers = append(c.consumers, consumer)
	if c.current != nil {
		consumer(c.current)
	}
}
