package baretask

// Do returns a [Future] that calls f, and then completes.
func Do(f func()) Future {
	return FutureFunc(func(*Context) Poll {
		f()
		return Complete
	})
}

// Nop returns a [Future] that completes without doing anything.
func Nop() Future {
	return FutureFunc(func(*Context) Poll {
		return Complete
	})
}

// Never returns a [Future] that never completes and never requests a
// wake. Under an [Executor] it suspends forever; under a
// [SimpleExecutor] it is re-polled forever.
func Never() Future {
	return FutureFunc(func(*Context) Poll {
		return Pending
	})
}

// Sequence returns a [Future] that works on each of the provided
// Futures in order, moving to the next when one completes, and
// completes after the last.
func Sequence(futs ...Future) Future {
	i := 0
	return FutureFunc(func(ctx *Context) Poll {
		for i < len(futs) {
			if futs[i].Poll(ctx) == Pending {
				return Pending
			}
			futs[i] = nil
			i++
		}
		return Complete
	})
}

// YieldNow returns a [Future] that suspends exactly once, arranging its
// own wake before doing so, and completes when polled again. It gives a
// long-running task a point at which to let other ready tasks run.
func YieldNow() Future {
	yielded := false
	return FutureFunc(func(ctx *Context) Poll {
		if yielded {
			return Complete
		}
		yielded = true
		ctx.Waker().Wake()
		return Pending
	})
}
