// Package events supports the fan-out of node events, such as mining
// progress and appended blocks, to any number of subscribers.
package events

import (
	"fmt"
	"sync"
)

// Events maintains a mapping of unique id and channels so goroutines
// can subscribe and receive node events.
type Events struct {
	mu   sync.RWMutex
	subs map[string]chan string
}

// New constructs an events value for subscribing and sending.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Subscribe registers the specified id and returns a channel events can be
// received on. Subscribing the same id twice returns the existing channel.
func (evt *Events) Subscribe(id string) chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if ch, exists := evt.subs[id]; exists {
		return ch
	}

	// A message is dropped when a subscriber is not ready to receive, so
	// this buffer gives a slow websocket writer room to catch up.
	const messageBuffer = 100

	ch := make(chan string, messageBuffer)
	evt.subs[id] = ch

	return ch
}

// Unsubscribe closes and removes the channel registered for the id.
func (evt *Events) Unsubscribe(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return fmt.Errorf("id %q is not subscribed", id)
	}

	delete(evt.subs, id)
	close(ch)

	return nil
}

// Send delivers a message to every subscriber without blocking on any
// of them.
func (evt *Events) Send(s string) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	for _, ch := range evt.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// Shutdown closes and removes every subscription.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
}
