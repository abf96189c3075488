// Package baretask is a cooperative task-execution core for environments
// with no operating system underneath them, or that choose to opt out of
// one.
//
// It lets independently written suspendable computations share a single
// thread of control, resuming each only when it has work to do, and, on
// targets that provide the capability, lets the processor halt rather
// than spin when nothing is runnable.
//
// # Futures and Tasks
//
// A [Future] is a suspendable computation with no output value.
// Each call to its Poll method runs the computation until it either
// finishes or cannot make further progress.
// A Future that suspends must first store the [Waker] it finds in its
// [Context], and invoke it later, from wherever it handed the Waker off
// to, once it can make progress again.
//
// A [Task] pairs one Future with a process-wide unique [TaskID] and is
// the unit an executor schedules.
//
// # Two Executors
//
// [SimpleExecutor] is the baseline. It keeps whole Tasks in a FIFO queue
// and re-polls suspended ones every cycle with a waker that does nothing.
// This is busy polling: a task waiting on an external condition is
// resumed over and over regardless of whether the condition changed.
// The trade is deliberate; the implementation is minimal and the
// behavior is easy to reason about. Run returns once every task has
// completed.
//
// [Executor] is the real one. It keeps Tasks in a table keyed by TaskID
// and drives them through a bounded ready queue of identifiers.
// A suspended task is not re-polled until some context, possibly another
// goroutine, possibly an interrupt handler on a freestanding port,
// invokes the task's Waker, which re-enqueues its identifier.
// Run never returns; when the ready queue is empty it applies the idle
// policy and then checks again.
//
// Both executors poll sequentially. At most one Task is being resumed at
// any instant, so a Future may keep unsynchronized internal state.
//
// # Waking
//
// Wakers are safe to invoke from any context, any number of times,
// concurrently with the executor's own drain loop. Waking a task that
// has already completed is a harmless no-op; its identifier is dropped
// as stale on the next drain.
//
// # Idle Policy
//
// When an [Executor] has nothing ready it consults its [Halter], the
// abstract "disable interrupts / halt / enable interrupts" capability.
// The sequence is: disable interrupt delivery, re-check that the ready
// queue is still empty, and only then halt until the next interrupt.
// A wake that lands inside the disable window skips the halt.
// Without a Halter the run loop yields and spins.
//
// # No Back Pressure
//
// Be aware that the ready queue is a fixed-size structure and that
// filling it is fatal: spawning or waking past its capacity panics.
// There is no drop, retry, or eviction policy. This bounds the number of
// simultaneously runnable tasks to the queue's capacity, which suits a
// small, known task population; size the queue with [WithQueueCapacity]
// if the default is too tight.
//
// # Event Bus
//
// [EventBus] is an independent utility: observers subscribe callbacks
// per value type, producers publish values, and a publication reaches
// exactly the callbacks subscribed to the published value's type.
// It never touches the executors. A task that wants to report an
// outcome can publish it on a bus as its last act before completing.
package baretask
