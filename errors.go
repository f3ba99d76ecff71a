package toggle

// ToggleError is used to create errors originating from the scheduler
type ToggleError string

// Error returns the string message of the error.
func (e ToggleError) Error() string {
	return string(e)
}

const (
	// InvalidSwitchError will be returned when attempting to schedule a transition on a nil switch.
	InvalidSwitchError = ToggleError("toggle: invalid switch")
	// InvalidTransitionError will be returned when attempting to schedule an unknown transition.
	InvalidTransitionError = ToggleError("toggle: invalid transition")
	// SchedulerNotInitializedError will be returned when attempting to schedule a transition before the scheduler is initialized.
	SchedulerNotInitializedError = ToggleError("toggle: the scheduler is not initialized")
	// SchedulerIsShuttingDownError will be returned when attempting to schedule a transition while the scheduler is shutting down.
	SchedulerIsShuttingDownError = ToggleError("toggle: the scheduler is shutting down")
)
