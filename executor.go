package baretask

// DefaultQueueCapacity is the ready-queue capacity an [Executor] is
// created with unless [WithQueueCapacity] says otherwise.
const DefaultQueueCapacity = 100

// An Executor is a [Task] spawner and a Task runner with a proper wake
// mechanism.
//
// Spawned Tasks live in a table keyed by [TaskID]. The Run method pops
// ready identifiers from a bounded queue and polls the corresponding
// Tasks, one at a time, on the caller's thread of control. A Task that
// suspends is not re-polled until its [Waker] is invoked, which may
// happen from any goroutine or interrupt context.
//
// The Executor's own structures are confined to the thread calling Run;
// only the ready queue is shared with wakers. Spawn therefore must be
// called from the same thread of control as Run, never concurrently
// with it.
type Executor struct {
	tasks  map[TaskID]*Task
	ready  *readyQueue
	wakers map[TaskID]Waker
	halter Halter
}

// An Option configures an [Executor].
type Option func(*Executor)

// WithQueueCapacity sets the ready-queue capacity. Spawning or waking
// past this many outstanding ready notifications is fatal, so size it
// to the task population.
func WithQueueCapacity(n int) Option {
	return func(e *Executor) { e.ready = newReadyQueue(n) }
}

// WithHalter provides the interrupt-control capability used by the idle
// policy. Without one, the run loop yields and spins when idle.
func WithHalter(h Halter) Option {
	return func(e *Executor) { e.halter = h }
}

// NewExecutor returns an Executor with an empty task table and a ready
// queue of [DefaultQueueCapacity], unless configured otherwise.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		tasks:  make(map[TaskID]*Task),
		wakers: make(map[TaskID]Waker),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ready == nil {
		e.ready = newReadyQueue(DefaultQueueCapacity)
	}
	return e
}

// Spawn inserts t into the task table and marks it ready.
//
// Spawn panics if a task with the same [TaskID] is already spawned;
// overwriting would orphan a live computation, so a duplicate, which the
// identifier generator makes unreachable short of reusing a Task, aborts
// instead. Spawn also panics if the ready queue is full.
func (e *Executor) Spawn(t *Task) {
	id := t.ID()
	if _, ok := e.tasks[id]; ok {
		panic("baretask(Executor): task with same ID already spawned")
	}
	e.tasks[id] = t
	e.ready.mustPush(id)
}

// Run polls ready tasks forever, applying the idle policy whenever the
// ready queue drains. Run never returns.
func (e *Executor) Run() {
	for {
		e.RunReadyTasks()
		e.sleepIfIdle()
	}
}

// RunReadyTasks performs one drain pass: it pops identifiers until the
// ready queue reads empty, polling each task popped.
//
// A popped identifier with no table entry is a stale wake for a task
// that already completed; it is skipped. A task whose poll reports
// [Complete] is removed together with its cached waker. A task that
// suspends stays in the table and is not re-enqueued here; only its
// [Waker] puts it back.
func (e *Executor) RunReadyTasks() {
	for {
		id, ok := e.ready.pop()
		if !ok {
			return
		}
		t, ok := e.tasks[id]
		if !ok {
			continue // stale wake
		}
		w, ok := e.wakers[id]
		if !ok {
			w = &taskWaker{id: id, ready: e.ready}
			e.wakers[id] = w
		}
		ctx := Context{waker: w}
		if t.poll(&ctx) == Complete {
			delete(e.tasks, id)
			delete(e.wakers, id)
		}
	}
}

// NumTasks reports how many spawned tasks have not yet completed.
func (e *Executor) NumTasks() int {
	return len(e.tasks)
}
