// Package bus carries actions from input sources to the dispatcher.
//
// The queue is bounded. Send never blocks: when the queue is full the newest
// action is dropped and counted. DrainAll only hands out what was queued when
// it started, so actions re-published while a batch is being handled wait
// for the next drain.
package bus

import (
	"sync/atomic"

	"codeshell/internal/log"
	"codeshell/pkg/types"
)

// DefaultCapacity is the queue size used when none is configured.
const DefaultCapacity = 1000

// Sender publishes actions. Input sources depend on this rather than on Bus.
type Sender interface {
	Send(types.Action) bool
}

// Bus is a bounded multi-producer, single-consumer action queue.
type Bus struct {
	ch      chan types.Action
	dropped atomic.Uint64
}

// New creates a bus holding at most capacity pending actions.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{ch: make(chan types.Action, capacity)}
}

// Send enqueues a without blocking and reports whether it was accepted.
func (b *Bus) Send(a types.Action) bool {
	select {
	case b.ch <- a:
		return true
	default:
		n := b.dropped.Add(1)
		log.LogWithFields(log.F("action", a.String()), log.F("dropped_total", n)).
			Warn("Action bus is full, dropped action")
		return false
	}
}

// DrainAll removes and returns the actions pending at the time of the call,
// oldest first. It never blocks and returns nil when nothing is pending.
func (b *Bus) DrainAll() []types.Action {
	n := len(b.ch)
	if n == 0 {
		return nil
	}
	out := make([]types.Action, 0, n)
	for i := 0; i < n; i++ {
		select {
		case a := <-b.ch:
			out = append(out, a)
		default:
			return out
		}
	}
	return out
}

// Len returns the number of pending actions.
func (b *Bus) Len() int { return len(b.ch) }

// Cap returns the queue capacity.
func (b *Bus) Cap() int { return cap(b.ch) }

// Dropped returns how many actions were rejected because the queue was full.
func (b *Bus) Dropped() uint64 { return b.dropped.Load() }
