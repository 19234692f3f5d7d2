// Package pubsub relays records from the components that produce them to
// the terminal program that renders them.
package pubsub

import (
	"context"
	"sync"
)

// subBufferSize is the buffer size of the channel for each subscription.
const subBufferSize = 1024

// Broker fans records out to subscribers.
type Broker[T any] struct {
	subs map[chan T]struct{}
	mu   sync.Mutex
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs: make(map[chan T]struct{}),
	}
}

// Subscribe subscribes the caller to a stream of records. Canceling the
// context removes the subscription and closes its channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan T {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(chan T, subBufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub)
	}()

	return sub
}

// Publish delivers a record to every subscriber. A subscriber that has
// stopped draining its buffer is evicted rather than allowed to block the
// publisher; it is left to them to re-subscribe.
func (b *Broker[T]) Publish(record T) {
	var full []chan T

	b.mu.Lock()
	for sub := range b.subs {
		select {
		case sub <- record:
		default:
			full = append(full, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range full {
		b.unsubscribe(sub)
	}
}

func (b *Broker[T]) unsubscribe(sub chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; !ok {
		// already unsubscribed
		return
	}
	close(sub)
	delete(b.subs, sub)
}
