package baretask

import "sync/atomic"

// A Poll is the result of polling a [Future].
type Poll uint8

const (
	// Pending means the computation has more work to do and has stored
	// a [Waker] with which to request resumption when it can make
	// progress again.
	Pending Poll = iota

	// Complete means the computation has finished and must not be
	// polled again.
	Complete
)

// A Future is a suspendable computation with no output value.
//
// Poll runs the computation until it either finishes or cannot make
// further progress. A Future that returns [Pending] must first store the
// [Waker] found in ctx somewhere it can be invoked later; otherwise the
// computation is never resumed, except by the busy-polling
// [SimpleExecutor].
//
// Poll is never called concurrently for the same Future. The executors
// guarantee this, so a Future may keep unsynchronized internal state.
type Future interface {
	Poll(ctx *Context) Poll
}

// FutureFunc adapts an ordinary function to the [Future] interface.
type FutureFunc func(ctx *Context) Poll

func (f FutureFunc) Poll(ctx *Context) Poll { return f(ctx) }

// A TaskID uniquely identifies a [Task] for the lifetime of the process.
//
// TaskIDs are comparable and usable as map keys.
type TaskID struct {
	id uint64
}

// An idGenerator hands out process-wide unique task identifiers.
// The zero value counts from 0, incrementing by 1 per allocation.
// Uniqueness is the only guarantee it makes; the counter is not
// a synchronization point.
type idGenerator struct {
	next atomic.Uint64
}

func (g *idGenerator) newTaskID() TaskID {
	return TaskID{id: g.next.Add(1) - 1}
}

// taskIDs is the generator shared by every Task in the process, so that
// no two Tasks ever observe the same identifier, no matter which
// executor they end up on.
var taskIDs idGenerator

// A Task pairs one suspendable computation with its [TaskID].
//
// A Task exclusively owns its [Future]. Hand it to exactly one executor;
// the executor polls it until it completes and then drops it.
type Task struct {
	id  TaskID
	fut Future
}

// NewTask wraps fut into a Task with a fresh [TaskID].
func NewTask(fut Future) *Task {
	if fut == nil {
		panic("baretask: NewTask(nil)")
	}
	return &Task{id: taskIDs.newTaskID(), fut: fut}
}

// ID returns the unique identifier of t.
func (t *Task) ID() TaskID {
	return t.id
}

// poll resumes the wrapped computation exactly once.
// Callers must not poll the same Task concurrently.
func (t *Task) poll(ctx *Context) Poll {
	return t.fut.Poll(ctx)
}
