package toggle

import "sync/atomic"

// AtomicSwitch is a boolean switch safe for concurrent use.
// Every operation is atomic, non-blocking and linearizable.
// The zero value is a cleared (false) switch ready for use.
type AtomicSwitch struct {
	value atomic.Bool
}

// NewAtomicSwitch instantiates an *AtomicSwitch holding the provided initial value.
func NewAtomicSwitch(initial bool) *AtomicSwitch {
	sw := &AtomicSwitch{}
	sw.value.Store(initial)
	return sw
}

// Set atomically switches the value to true and returns the value it replaced.
func (sw *AtomicSwitch) Set() (previous bool) {
	return sw.value.Swap(true)
}

// Clear atomically switches the value to false and returns the value it replaced.
func (sw *AtomicSwitch) Clear() (previous bool) {
	return sw.value.Swap(false)
}

// CompareAndSet switches the value to update only if it currently equals expected.
// It reports whether the switch took place. A miss is a normal outcome, not a failure;
// callers decide whether to retry or move on.
// Of any number of callers racing with the same expected value, at most one succeeds.
func (sw *AtomicSwitch) CompareAndSet(expected, update bool) (swapped bool) {
	return sw.value.CompareAndSwap(expected, update)
}

// Get atomically reads the current value.
func (sw *AtomicSwitch) Get() bool {
	return sw.value.Load()
}

// Toggle atomically inverts the value and returns the value it replaced.
// It is implemented as a compare-and-set retry loop, never as a plain
// read-then-write, so each call flips the value exactly once even under contention.
func (sw *AtomicSwitch) Toggle() (previous bool) {
	for {
		previous = sw.value.Load()
		if sw.value.CompareAndSwap(previous, !previous) {
			return previous
		}
	}
}
