package baretask

import "sync"

// A WaitGroup is a counter that tasks can await reaching zero.
//
// Calling Add or Done updates the counter and, when it becomes zero,
// resumes every task awaiting the WaitGroup. Both are safe to call from
// any goroutine; like [Notifier], the WaitGroup takes a mutex and is not
// for interrupt context.
//
// The zero value is ready to use.
type WaitGroup struct {
	mu      sync.Mutex
	n       int
	waiters map[*notifyWaiter]struct{}
}

// Add adds delta, which may be negative, to the counter.
// If the counter becomes zero, Add resumes every task awaiting wg.
// If the counter goes negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.mu.Lock()
	defer wg.mu.Unlock()
	wg.n += delta
	if wg.n < 0 {
		panic("baretask(WaitGroup): negative counter")
	}
	if wg.n == 0 && delta != 0 {
		for w := range wg.waiters {
			w.notified = true
			if w.waker != nil {
				w.waker.Wake()
			}
		}
		wg.waiters = nil
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Await returns a [Future] that completes once the counter is zero.
func (wg *WaitGroup) Await() Future {
	w := new(notifyWaiter)
	return FutureFunc(func(ctx *Context) Poll {
		wg.mu.Lock()
		defer wg.mu.Unlock()
		if w.notified || wg.n == 0 {
			return Complete
		}
		w.waker = ctx.Waker()
		if wg.waiters == nil {
			wg.waiters = make(map[*notifyWaiter]struct{})
		}
		wg.waiters[w] = struct{}{}
		return Pending
	})
}
