package baretask

import "sync"

// A Notifier broadcasts a notification to suspended tasks.
//
// Tasks wait with the [Future] returned by Await; Notify resumes every
// task currently waiting. Notify is safe to call from any goroutine.
// It takes a mutex, so unlike a bare [Waker] it is not for interrupt
// context.
//
// The zero value is ready to use.
type Notifier struct {
	mu      sync.Mutex
	waiters map[*notifyWaiter]struct{}
}

type notifyWaiter struct {
	notified bool
	waker    Waker
}

// Notify wakes every task currently awaiting n.
// Tasks that start awaiting afterwards wait for the next Notify.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for w := range n.waiters {
		w.notified = true
		if w.waker != nil {
			w.waker.Wake()
		}
	}
	n.waiters = nil
}

// Await returns a [Future] that completes once n is notified.
// Notifications earlier than the Future's first poll are not observed.
func (n *Notifier) Await() Future {
	w := new(notifyWaiter)
	return FutureFunc(func(ctx *Context) Poll {
		n.mu.Lock()
		defer n.mu.Unlock()
		if w.notified {
			return Complete
		}
		w.waker = ctx.Waker()
		if n.waiters == nil {
			n.waiters = make(map[*notifyWaiter]struct{})
		}
		n.waiters[w] = struct{}{}
		return Pending
	})
}
