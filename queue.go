package baretask

import (
	"strconv"
	"sync/atomic"
)

// A readyQueue is a bounded multi-producer, single-consumer FIFO of task
// identifiers. Producers are wakers, which may run on any goroutine or,
// on freestanding ports, in interrupt context; the sole consumer is the
// executor's drain loop. Neither side ever blocks: push reports failure
// when the queue is full, pop reports failure when it is empty.
//
// Each slot carries a sequence number (a variant of Vyukov's bounded
// queue). A slot is writable for position pos when its sequence reads
// 2*pos and readable when it reads 2*pos+1; consuming re-arms it for
// the position one lap ahead. The odd/even split keeps the "published"
// mark distinct from the next lap's "writable" mark at every capacity,
// including 1, so a push onto a full queue always reports failure
// instead of overwriting the unconsumed entry.
type readyQueue struct {
	slots []queueSlot
	size  uint64
	enq   atomic.Uint64
	deq   atomic.Uint64
}

type queueSlot struct {
	seq atomic.Uint64
	id  TaskID
}

func newReadyQueue(capacity int) *readyQueue {
	if capacity < 1 {
		panic("baretask: ready queue capacity must be at least 1")
	}
	q := &readyQueue{
		slots: make([]queueSlot, capacity),
		size:  uint64(capacity),
	}
	for i := range q.slots {
		q.slots[i].seq.Store(2 * uint64(i))
	}
	return q
}

// push appends id to the queue, reporting false if the queue is full.
// push is safe for concurrent use by multiple producers.
func (q *readyQueue) push(id TaskID) bool {
	for {
		pos := q.enq.Load()
		slot := &q.slots[pos%q.size]
		switch seq := slot.seq.Load(); {
		case seq == 2*pos:
			if q.enq.CompareAndSwap(pos, pos+1) {
				slot.id = id
				slot.seq.Store(2*pos + 1)
				return true
			}
		case seq < 2*pos:
			// The slot still holds the entry from one lap ago.
			return false
		}
		// Another producer claimed pos first; reload and retry.
	}
}

// mustPush appends id to the queue, treating a full queue as fatal.
// Losing a wake notification would stall its task forever, so there is
// no drop, retry, or backpressure policy.
func (q *readyQueue) mustPush(id TaskID) {
	if !q.push(id) {
		panic("baretask: ready queue full (capacity " +
			strconv.FormatUint(q.size, 10) + ")")
	}
}

// pop removes and returns the oldest identifier.
// Only the single consumer may call pop.
func (q *readyQueue) pop() (TaskID, bool) {
	pos := q.deq.Load()
	slot := &q.slots[pos%q.size]
	if slot.seq.Load() != 2*pos+1 {
		// Empty, or a producer has claimed the slot but not yet
		// published its entry. Report empty rather than wait.
		return TaskID{}, false
	}
	id := slot.id
	slot.seq.Store(2 * (pos + q.size))
	q.deq.Store(pos + 1)
	return id, true
}

// empty reports whether a pop would fail right now.
// Only the single consumer may call empty.
func (q *readyQueue) empty() bool {
	pos := q.deq.Load()
	return q.slots[pos%q.size].seq.Load() != 2*pos+1
}
