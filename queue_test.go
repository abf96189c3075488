package baretask

import (
	"runtime"
	"sync"
	"testing"
)

func TestReadyQueueFIFO(t *testing.T) {
	q := newReadyQueue(4)

	for i := uint64(0); i < 3; i++ {
		if !q.push(TaskID{id: i}) {
			t.Fatalf("push(%d) failed on a non-full queue", i)
		}
	}

	for i := uint64(0); i < 3; i++ {
		id, ok := q.pop()
		if !ok {
			t.Fatalf("pop() failed with %d entries remaining", 3-i)
		}
		if id.id != i {
			t.Errorf("pop() = %d, want %d", id.id, i)
		}
	}

	if _, ok := q.pop(); ok {
		t.Error("pop() succeeded on an empty queue")
	}
}

func TestReadyQueueFull(t *testing.T) {
	q := newReadyQueue(2)

	if !q.push(TaskID{id: 1}) || !q.push(TaskID{id: 2}) {
		t.Fatal("push failed before reaching capacity")
	}
	if q.push(TaskID{id: 3}) {
		t.Fatal("push succeeded on a full queue")
	}

	if _, ok := q.pop(); !ok {
		t.Fatal("pop failed on a full queue")
	}
	if !q.push(TaskID{id: 3}) {
		t.Error("push failed after a pop made room")
	}
}

func TestReadyQueueCapacityOne(t *testing.T) {
	q := newReadyQueue(1)

	if !q.push(TaskID{id: 1}) {
		t.Fatal("push failed on an empty capacity-1 queue")
	}
	// The slot is published but unconsumed; a second push must be
	// refused, never overwrite.
	if q.push(TaskID{id: 2}) {
		t.Fatal("push succeeded on a full capacity-1 queue")
	}

	id, ok := q.pop()
	if !ok || id.id != 1 {
		t.Fatalf("pop() = %v, %v, want 1, true", id.id, ok)
	}

	if !q.push(TaskID{id: 3}) {
		t.Fatal("push failed after the queue drained")
	}
	if id, ok := q.pop(); !ok || id.id != 3 {
		t.Fatalf("pop() = %v, %v, want 3, true", id.id, ok)
	}
}

func TestReadyQueueWrap(t *testing.T) {
	q := newReadyQueue(3)

	// Cycle enough entries through to lap the ring several times.
	for i := uint64(0); i < 20; i++ {
		if !q.push(TaskID{id: i}) {
			t.Fatalf("push(%d) failed", i)
		}
		id, ok := q.pop()
		if !ok || id.id != i {
			t.Fatalf("pop() = %v, %v, want %d, true", id.id, ok, i)
		}
	}

	if !q.empty() {
		t.Error("empty() = false after draining")
	}
}

func TestReadyQueueEmpty(t *testing.T) {
	q := newReadyQueue(2)

	if !q.empty() {
		t.Error("new queue is not empty")
	}
	q.push(TaskID{id: 7})
	if q.empty() {
		t.Error("empty() = true with one entry")
	}
	q.pop()
	if !q.empty() {
		t.Error("empty() = false after popping the only entry")
	}
}

func TestReadyQueueConcurrentProducers(t *testing.T) {
	const (
		producers = 4
		perProd   = 64
		total     = producers * perProd
	)

	q := newReadyQueue(total)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProd {
				if !q.push(TaskID{id: uint64(p*1000 + i)}) {
					t.Errorf("push failed below capacity (producer %d, entry %d)", p, i)
					return
				}
			}
		}()
	}

	// Consume concurrently with the producers, as the drain loop does.
	var got []uint64
	for len(got) < total {
		id, ok := q.pop()
		if !ok {
			runtime.Gosched()
			continue
		}
		got = append(got, id.id)
	}
	wg.Wait()

	if _, ok := q.pop(); ok {
		t.Error("pop() succeeded after all entries were consumed")
	}

	// Every entry arrives exactly once, and each producer's entries
	// arrive in the order that producer pushed them.
	seen := make(map[uint64]bool, total)
	last := make(map[int]int, producers)
	for _, v := range got {
		if seen[v] {
			t.Fatalf("entry %d popped twice", v)
		}
		seen[v] = true
		p, i := int(v)/1000, int(v)%1000
		if prev, ok := last[p]; ok && i < prev {
			t.Fatalf("producer %d order violated: %d after %d", p, i, prev)
		}
		last[p] = i
	}
	if len(seen) != total {
		t.Fatalf("popped %d distinct entries, want %d", len(seen), total)
	}
}

func TestTaskDeque(t *testing.T) {
	var q taskDeque

	if !q.Empty() {
		t.Error("zero deque is not empty")
	}

	a, b, c := NewTask(Nop()), NewTask(Nop()), NewTask(Nop())

	q.PushBack(a)
	q.PushBack(b)

	if got, ok := q.PopFront(); !ok || got != a {
		t.Errorf("PopFront() = %p, want %p", got, a)
	}

	q.PushBack(c)

	for _, want := range []*Task{b, c} {
		got, ok := q.PopFront()
		if !ok || got != want {
			t.Errorf("PopFront() = %p, want %p", got, want)
		}
	}

	if _, ok := q.PopFront(); ok {
		t.Error("PopFront() succeeded on an empty deque")
	}
	if !q.Empty() {
		t.Error("deque not empty after draining")
	}
}
