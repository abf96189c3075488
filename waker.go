package baretask

import "sync/atomic"

// A Waker marks one specific task as ready to be resumed again.
//
// Invoking Wake is safe from any context: any goroutine, or an interrupt
// handler on a freestanding port, any number of times, concurrently with
// the executor's own drain loop. Wake never blocks.
//
// Waking a task that has already completed is a harmless no-op; the
// executor drops its identifier as stale on the next drain.
type Waker interface {
	Wake()
}

// A taskWaker re-enqueues its task on the owning executor's ready queue.
type taskWaker struct {
	id    TaskID
	ready *readyQueue
}

func (w *taskWaker) Wake() {
	w.ready.mustPush(w.id)
}

// A nopWaker backs the [SimpleExecutor], which resumes suspended tasks
// by unconditionally re-polling them.
type nopWaker struct{}

func (nopWaker) Wake() {}

// A Context carries the active [Waker] into a [Future]'s Poll method.
type Context struct {
	waker Waker
}

// NewContext returns a Context carrying w. Embedding code only needs
// this to poll futures outside an executor, for example in tests.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the resumption callback for the task being polled.
// A Future that suspends keeps the returned value and invokes it later,
// from wherever it handed the value off to.
func (c *Context) Waker() Waker {
	return c.waker
}

// An AtomicWaker is a cell holding at most one registered [Waker].
//
// It is the bridge between a producer running in another context and
// a suspended task: the task registers its Waker while polling, and the
// producer calls Wake when the awaited condition holds. Register and
// Wake may race freely. Waking consumes the registration.
//
// The zero value is an empty cell ready for use.
type AtomicWaker struct {
	v atomic.Value
}

type wakerCell struct {
	w Waker
}

// Register stores w in the cell, replacing any previous registration.
func (a *AtomicWaker) Register(w Waker) {
	a.v.Store(wakerCell{w: w})
}

// Wake takes the registered [Waker], if any, and invokes it.
func (a *AtomicWaker) Wake() {
	if c, ok := a.v.Swap(wakerCell{}).(wakerCell); ok && c.w != nil {
		c.w.Wake()
	}
}
