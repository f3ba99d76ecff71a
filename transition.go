package toggle

// Transition identifies an operation to be applied to an AtomicSwitch.
type Transition uint8

const (
	// TransitionSet switches the value to true.
	TransitionSet Transition = iota
	// TransitionClear switches the value to false.
	TransitionClear
	// TransitionToggle inverts the value.
	TransitionToggle
)

func (tr Transition) apply(sw *AtomicSwitch) (previous bool) {
	switch tr {
	case TransitionSet:
		return sw.Set()
	case TransitionClear:
		return sw.Clear()
	default:
		return sw.Toggle()
	}
}

func (tr Transition) isValid() bool {
	return tr <= TransitionToggle
}
