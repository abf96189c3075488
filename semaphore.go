package baretask

import (
	"slices"
	"sync"
)

// A Semaphore bounds asynchronous access to a resource.
// Tasks request access with a given weight and are granted it in
// request order.
//
// Note that a Semaphore does not provide backpressure for spawning
// a lot of tasks; it only sequences the tasks already spawned.
type Semaphore struct {
	mu      sync.Mutex
	size    int64
	cur     int64
	waiters []*semWaiter
}

type semWaiter struct {
	n       int64
	granted bool
	waker   Waker
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire returns a [Future] that completes once a weight of n has been
// acquired from the semaphore. Weights are granted in request order.
// A request heavier than the semaphore's size can never be granted and
// suspends forever.
func (s *Semaphore) Acquire(n int64) Future {
	if n < 0 {
		panic("baretask(Semaphore): negative weight")
	}
	var w *semWaiter
	return FutureFunc(func(ctx *Context) Poll {
		s.mu.Lock()
		defer s.mu.Unlock()
		if w != nil {
			if w.granted {
				return Complete
			}
			w.waker = ctx.Waker()
			return Pending
		}
		if n > s.size {
			return Pending // impossible to succeed
		}
		if len(s.waiters) == 0 && s.size-s.cur >= n {
			s.cur += n
			return Complete
		}
		w = &semWaiter{n: n, waker: ctx.Waker()}
		s.waiters = append(s.waiters, w)
		return Pending
	})
}

// Release returns a weight of n to the semaphore and grants pending
// acquisitions in request order. Release panics if more is released
// than is currently held.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("baretask(Semaphore): negative weight")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur -= n
	if s.cur < 0 {
		panic("baretask(Semaphore): released more than held")
	}
	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	i := 0
	for ; i < len(s.waiters); i++ {
		w := s.waiters[i]
		if s.size-s.cur < w.n {
			break
		}
		s.cur += w.n
		w.granted = true
		if w.waker != nil {
			w.waker.Wake()
		}
	}
	s.waiters = slices.Delete(s.waiters, 0, i)
}
