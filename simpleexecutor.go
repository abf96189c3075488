package baretask

// A SimpleExecutor runs tasks round-robin from a FIFO queue of whole
// [Task] values, polling each with a waker that does nothing.
//
// A task that suspends is simply appended to the back of the queue and
// re-polled next cycle, whether or not anything changed. This is busy
// polling, a documented limitation traded for minimal implementation
// complexity: the SimpleExecutor never halts, never blocks and never
// sleeps. Use [Executor] when tasks wait on external conditions.
//
// A SimpleExecutor must not be used from more than one goroutine.
// The zero value is ready to use.
type SimpleExecutor struct {
	queue taskDeque
}

// Spawn appends t to the back of the task queue.
func (e *SimpleExecutor) Spawn(t *Task) {
	e.queue.PushBack(t)
}

// Run polls tasks from the front of the queue until all of them have
// completed, then returns. Suspended tasks go to the back of the queue.
func (e *SimpleExecutor) Run() {
	ctx := Context{waker: nopWaker{}}
	for {
		t, ok := e.queue.PopFront()
		if !ok {
			return
		}
		if t.poll(&ctx) == Pending {
			e.queue.PushBack(t)
		}
	}
}

// A taskDeque is a FIFO of Tasks built from two stacked slices: pops
// come from head, pushes go to tail, and an exhausted head swaps with
// the tail.
type taskDeque struct {
	head, tail []*Task
}

func (q *taskDeque) Empty() bool {
	return len(q.head) == 0 && len(q.tail) == 0
}

func (q *taskDeque) PushBack(t *Task) {
	q.tail = append(q.tail, t)
}

func (q *taskDeque) PopFront() (*Task, bool) {
	if len(q.head) == 0 {
		if len(q.tail) == 0 {
			return nil, false
		}
		q.head, q.tail = q.tail, q.head[:0]
	}
	t := q.head[0]
	q.head[0] = nil
	q.head = q.head[1:]
	return t, true
}
