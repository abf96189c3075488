package baretask

import "runtime"

// A Halter is the platform capability the idle policy consumes: control
// over external interrupt delivery plus the ability to halt until the
// next interrupt. A freestanding port implements it with the target's
// instructions (cli, sti, hlt and their kin); hosted embedders normally
// leave it unset and accept a yielding spin.
type Halter interface {
	// DisableInterrupts stops delivery of external interrupts.
	DisableInterrupts()

	// EnableInterrupts restores delivery of external interrupts.
	EnableInterrupts()

	// EnableInterruptsAndHalt re-enables interrupt delivery and halts
	// until the next interrupt, as one uninterruptible step. An
	// interrupt slipping between the enable and the halt would be a
	// lost wake-up, leaving the processor asleep with work pending.
	EnableInterruptsAndHalt()
}

// sleepIfIdle is the idle policy, applied after a drain pass leaves the
// ready queue empty.
//
// With a [Halter]: disable interrupts, re-check emptiness, and only halt
// if the queue is still empty, else re-enable immediately. The re-check
// happens inside the disable window, so a wake arriving from an
// interrupt cannot slip between the emptiness check and the halt.
//
// Without one: yield the thread and let the run loop spin.
func (e *Executor) sleepIfIdle() {
	h := e.halter
	if h == nil {
		runtime.Gosched()
		return
	}
	h.DisableInterrupts()
	if e.ready.empty() {
		h.EnableInterruptsAndHalt()
	} else {
		h.EnableInterrupts()
	}
}
