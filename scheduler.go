package toggle

import (
	"github.com/google/uuid"
	"github.com/io-da/schedule"
)

// Scheduler applies timed transitions to switches.
// The Scheduler should be instantiated using the NewScheduler function.
type Scheduler struct {
	initialized  *AtomicSwitch
	shuttingDown *AtomicSwitch
	listeners    []Listener
	applied      *counter
	processor    *transitionProcessor
}

// NewScheduler instantiates the Scheduler struct.
// The Initialization of the Scheduler is performed separately (Initialize function) for dependency injection purposes.
func NewScheduler() *Scheduler {
	sched := &Scheduler{
		initialized:  NewAtomicSwitch(false),
		shuttingDown: NewAtomicSwitch(false),
		listeners:    make([]Listener, 0),
		applied:      newCounter(),
	}
	sched.processor = newTransitionProcessor(sched)
	return sched
}

// Listeners may optionally be provided.
// They will be notified of every transition the scheduler applies.
// They can only be adjusted *before* the scheduler is initialized.
func (sched *Scheduler) Listeners(lsts ...Listener) {
	if !sched.isInitialized() {
		sched.listeners = lsts
	}
}

// Initialize the scheduler.
func (sched *Scheduler) Initialize() {
	sched.initialized.CompareAndSet(false, true)
}

// Schedule a transition to be applied to the provided switch.
// The returned key may be used to unschedule it.
func (sched *Scheduler) Schedule(sw *AtomicSwitch, tr Transition, sch *schedule.Schedule) (*uuid.UUID, error) {
	if err := sched.isValid(sw, tr); err != nil {
		return nil, err
	}
	key := sched.processor.add(newScheduledTransition(sw, tr, sch))
	return &key, nil
}

// Unschedule removes previously scheduled transitions.
func (sched *Scheduler) Unschedule(keys ...uuid.UUID) {
	sched.processor.remove(keys...)
}

// Applied returns the number of transitions the scheduler has applied so far.
func (sched *Scheduler) Applied() uint32 {
	return sched.applied.Load()
}

// Shutdown the scheduler gracefully.
// *Transitions scheduled while shutting down will be disregarded*.
func (sched *Scheduler) Shutdown() {
	if sched.shuttingDown.CompareAndSet(false, true) {
		go sched.shutdown()
	}
}

//-----Private Functions------//

func (sched *Scheduler) isInitialized() bool {
	return sched.initialized.Get()
}

func (sched *Scheduler) isShuttingDown() bool {
	return sched.shuttingDown.Get()
}

func (sched *Scheduler) apply(sw *AtomicSwitch, tr Transition) {
	previous := tr.apply(sw)
	sched.applied.increment()
	for _, lst := range sched.listeners {
		lst.Handle(sw, tr, previous)
	}
}

func (sched *Scheduler) shutdown() {
	sched.processor.shutdown()
	sched.initialized.CompareAndSet(true, false)
	sched.shuttingDown.CompareAndSet(true, false)
}

func (sched *Scheduler) isValid(sw *AtomicSwitch, tr Transition) error {
	if sw == nil {
		return InvalidSwitchError
	}
	if !tr.isValid() {
		return InvalidTransitionError
	}
	if !sched.isInitialized() {
		return SchedulerNotInitializedError
	}
	if sched.isShuttingDown() {
		return SchedulerIsShuttingDownError
	}
	return nil
}
