package toggle

// Listener must be implemented for a type to be notified of applied transitions.
type Listener interface {
	Handle(sw *AtomicSwitch, tr Transition, previous bool)
}
