package toggle

import "github.com/io-da/schedule"

type scheduledTransition struct {
	sw  *AtomicSwitch
	tr  Transition
	sch *schedule.Schedule
}

func newScheduledTransition(sw *AtomicSwitch, tr Transition, sch *schedule.Schedule) *scheduledTransition {
	return &scheduledTransition{
		sw:  sw,
		tr:  tr,
		sch: sch,
	}
}
