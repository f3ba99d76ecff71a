package toggle

import (
	"sync"

	"github.com/google/uuid"
)

//------Listeners------//

type testListener struct {
	wg *sync.WaitGroup
}

func (lst *testListener) Handle(sw *AtomicSwitch, tr Transition, previous bool) {
	lst.wg.Done()
}

type reentrantListener struct {
	sched   *Scheduler
	cleanup []uuid.UUID
	wg      *sync.WaitGroup
}

func (lst *reentrantListener) Handle(sw *AtomicSwitch, tr Transition, previous bool) {
	lst.sched.Unschedule(lst.cleanup...)
	lst.wg.Done()
}

type storeTransitionsListener struct {
	sync.Mutex
	transitions []Transition
	previous    []bool
}

func (lst *storeTransitionsListener) Handle(sw *AtomicSwitch, tr Transition, previous bool) {
	lst.Lock()
	lst.transitions = append(lst.transitions, tr)
	lst.previous = append(lst.previous, previous)
	lst.Unlock()
}

func (lst *storeTransitionsListener) recorded() ([]Transition, []bool) {
	lst.Lock()
	defer lst.Unlock()
	return lst.transitions, lst.previous
}
