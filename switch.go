package toggle

// Switch is a plain boolean switch with no synchronization whatsoever.
// It must only be used from a single goroutine. Code that shares a switch
// between goroutines must use AtomicSwitch instead; the two types are kept
// distinct on purpose so that usage always states which guarantee it relies on.
type Switch struct {
	enabled bool
}

// NewSwitch instantiates a *Switch holding the provided initial value.
func NewSwitch(initial bool) *Switch {
	return &Switch{
		enabled: initial,
	}
}

// Enable turns the switch on.
func (sw *Switch) Enable() {
	sw.enabled = true
}

// Disable turns the switch off.
func (sw *Switch) Disable() {
	sw.enabled = false
}

// Toggle inverts the switch state.
// This is a read-then-write, which is exactly why Switch is single-goroutine only.
func (sw *Switch) Toggle() {
	sw.enabled = !sw.enabled
}

// Enabled returns the current switch state.
func (sw *Switch) Enabled() bool {
	return sw.enabled
}
