package event

import (
	"math/bits"
	"sync/atomic"
)

// slot pairs an item with the sequence number that gates access to it
// seq == pos: free for the producer claiming pos
// seq == pos+1: written, readable by the consumer at pos
type slot[T any] struct {
	seq  atomic.Uint64
	item T
}

// Queue is a bounded lock-free MPSC queue
// Push is safe from any goroutine; Consume belongs to the simulation loop
// A full queue rejects new entries and counts them as dropped; queued entries are never overwritten
type Queue[T any] struct {
	slots   []slot[T]
	mask    uint64
	tail    atomic.Uint64 // next position to claim
	head    atomic.Uint64 // next position to read, written by the consumer only
	dropped atomic.Int64
}

// NewQueue creates a queue holding at least capacity entries, rounded up to a power of two
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 2 {
		capacity = 2
	}
	size := uint64(1) << bits.Len64(uint64(capacity-1))

	q := &Queue[T]{
		slots: make([]slot[T], size),
		mask:  size - 1,
	}
	for i := range q.slots {
		q.slots[i].seq.Store(uint64(i))
	}
	return q
}

// Cap returns the number of slots
func (q *Queue[T]) Cap() int {
	return len(q.slots)
}

// Push enqueues item, returns false if the queue was full
func (q *Queue[T]) Push(item T) bool {
	for {
		pos := q.tail.Load()
		s := &q.slots[pos&q.mask]
		seq := s.seq.Load()

		switch {
		case seq == pos:
			if q.tail.CompareAndSwap(pos, pos+1) {
				s.item = item
				s.seq.Store(pos + 1) // publish after write
				return true
			}
		case seq < pos:
			// Slot still holds an unread entry from the previous lap
			q.dropped.Add(1)
			return false
		}
		// Another producer claimed pos first; reload
	}
}

// Consume drains every published entry in FIFO order
// Stops at the first slot whose producer has not finished writing
func (q *Queue[T]) Consume() []T {
	return q.ConsumeInto(nil)
}

// ConsumeInto appends drained entries to dst and returns it
func (q *Queue[T]) ConsumeInto(dst []T) []T {
	var zero T
	head := q.head.Load()
	for {
		s := &q.slots[head&q.mask]
		if s.seq.Load() != head+1 {
			break
		}
		dst = append(dst, s.item)
		s.item = zero
		s.seq.Store(head + uint64(len(q.slots)))
		head++
	}
	q.head.Store(head)
	return dst
}

// Len returns approximate pending count
func (q *Queue[T]) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, uint64(len(q.slots))))
}

// Dropped returns how many pushes were rejected because the queue was full
func (q *Queue[T]) Dropped() int64 {
	return q.dropped.Load()
}
