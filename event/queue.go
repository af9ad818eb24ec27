package event

import (
	"sync/atomic"

	"github.com/lixenwraith/arpg/parameter"
)

const queueCap = uint64(parameter.EventQueueSize)

// EventQueue is a fixed ring of pending events with many producers and one consumer
// Producers claim a slot by advancing write, fill it, then flag it ready
// The frame loop drains everything flagged ready since the last drain
//
// When producers lap the reader, the oldest unread events are lost and counted
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool

	read  atomic.Uint64 // Next sequence to drain
	write atomic.Uint64 // Next sequence to claim
	lost  atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(seq uint64) uint64 {
	return seq & parameter.EventBufferMask
}

// Push enqueues an event; safe for concurrent producers
func (eq *EventQueue) Push(ev GameEvent) {
	seq := eq.claim()

	i := slot(seq)
	eq.slots[i] = ev
	eq.ready[i].Store(true) // after the slot write

	eq.evictLapped(seq + 1)
}

// claim reserves the next write sequence
func (eq *EventQueue) claim() uint64 {
	for {
		seq := eq.write.Load()
		if eq.write.CompareAndSwap(seq, seq+1) {
			return seq
		}
	}
}

// evictLapped moves read forward when written runs more than a ring ahead of it
func (eq *EventQueue) evictLapped(written uint64) {
	read := eq.read.Load()
	if written-read <= queueCap {
		return
	}
	floor := written - queueCap
	if eq.read.CompareAndSwap(read, floor) {
		eq.lost.Add(floor - read)
	}
}

// Consume drains all ready events in enqueue order
// Only the frame loop calls this; an event is returned at most once
func (eq *EventQueue) Consume() []GameEvent {
	for {
		seen, from, n := eq.window()
		if n == 0 {
			return nil
		}

		out := make([]GameEvent, 0, n)
		for k := uint64(0); k < n; k++ {
			i := slot(from + k)
			if !eq.ready[i].Load() {
				// Producer still filling; stop at the first gap to keep order
				break
			}
			out = append(out, eq.slots[i])
			eq.ready[i].Store(false)
		}

		if eq.read.CompareAndSwap(seen, from+uint64(len(out))) {
			// Lapped events no producer evicted yet
			if from > seen {
				eq.lost.Add(from - seen)
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// window returns the observed read sequence, the first still-held sequence and how many may be pending
// from exceeds seen only when writers lapped the reader by more than one ring
func (eq *EventQueue) window() (seen, from, n uint64) {
	seen = eq.read.Load()
	to := eq.write.Load()
	if to <= seen {
		return seen, seen, 0
	}
	from = seen
	if to-from > queueCap {
		from = to - queueCap
	}
	return seen, from, to - from
}

// Len returns an approximate pending count
func (eq *EventQueue) Len() int {
	_, _, n := eq.window()
	return int(n)
}

// Overflowed returns the number of events lost to ring overwrite since creation
func (eq *EventQueue) Overflowed() uint64 {
	return eq.lost.Load()
}
