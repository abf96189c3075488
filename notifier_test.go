package baretask_test

import (
	"testing"

	"github.com/baretask/baretask"
)

func TestNotifierWakesAllWaiters(t *testing.T) {
	e := baretask.NewExecutor()

	var n baretask.Notifier

	done := [2]bool{}
	for i := range done {
		e.Spawn(baretask.NewTask(baretask.Sequence(
			n.Await(),
			baretask.Do(func() { done[i] = true }),
		)))
	}

	e.RunReadyTasks()
	if done[0] || done[1] {
		t.Fatal("a waiter completed before Notify")
	}

	n.Notify()
	e.RunReadyTasks()

	if !done[0] || !done[1] {
		t.Errorf("done = %v, want both true", done)
	}
	if e.NumTasks() != 0 {
		t.Errorf("NumTasks() = %d, want 0", e.NumTasks())
	}
}

func TestNotifierNotificationIsNotSticky(t *testing.T) {
	e := baretask.NewExecutor()

	var n baretask.Notifier
	n.Notify() // no waiters; nothing observes this

	done := false
	e.Spawn(baretask.NewTask(baretask.Sequence(
		n.Await(),
		baretask.Do(func() { done = true }),
	)))

	e.RunReadyTasks()
	if done {
		t.Fatal("waiter observed a notification from before its first poll")
	}

	n.Notify()
	e.RunReadyTasks()

	if !done {
		t.Error("waiter did not complete after Notify")
	}
}

func TestNotifierFromAnotherGoroutine(t *testing.T) {
	e := baretask.NewExecutor()

	var n baretask.Notifier

	done := false
	e.Spawn(baretask.NewTask(baretask.Sequence(
		n.Await(),
		baretask.Do(func() { done = true }),
	)))
	e.RunReadyTasks()

	notified := make(chan struct{})
	go func() {
		n.Notify()
		close(notified)
	}()
	<-notified

	e.RunReadyTasks()

	if !done {
		t.Error("waiter did not complete after a cross-goroutine Notify")
	}
}
