package toggle

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type transitionProcessor struct {
	sync.Mutex
	scheduler            *Scheduler
	scheduledTransitions map[uuid.UUID]*scheduledTransition
	triggerSignal        chan bool
	shuttingDown         *AtomicSwitch
	sleepTimer           *time.Timer
	sleepUntil           time.Time
}

func newTransitionProcessor(scheduler *Scheduler) *transitionProcessor {
	pro := &transitionProcessor{
		scheduler:            scheduler,
		scheduledTransitions: make(map[uuid.UUID]*scheduledTransition),
		triggerSignal:        make(chan bool, 1),
		shuttingDown:         NewAtomicSwitch(false),
	}
	go pro.process()
	return pro
}

func (pro *transitionProcessor) add(schTr *scheduledTransition) uuid.UUID {
	pro.Lock()
	key := uuid.New()
	pro.scheduledTransitions[key] = schTr
	pro.Unlock()
	pro.trigger()
	return key
}

func (pro *transitionProcessor) remove(keys ...uuid.UUID) {
	pro.Lock()
	for _, key := range keys {
		delete(pro.scheduledTransitions, key)
	}
	pro.Unlock()
	pro.trigger()
}

func (pro *transitionProcessor) shutdown() {
	pro.shuttingDown.CompareAndSet(false, true)
	pro.trigger()
}

func (pro *transitionProcessor) process() {
	for !pro.shuttingDown.Get() {
		pro.Lock()
		now := time.Now()
		pro.sleepUntil = time.Time{}
		due := make([]*scheduledTransition, 0)
		for key, schTr := range pro.scheduledTransitions {
			following := schTr.sch.Following()
			if following.IsZero() {
				_ = schTr.sch.Next()
				following = schTr.sch.Following()
			}

			if now.After(following) || now.Equal(following) {
				due = append(due, schTr)
				if err := schTr.sch.Next(); err != nil {
					delete(pro.scheduledTransitions, key)
					continue
				}
				following = schTr.sch.Following()
			}
			pro.updateSleepUntil(following)
		}
		pro.updateSleepTimer(pro.determineSleepDuration())
		pro.Unlock()

		// listeners may call back into the scheduler, never run them under the lock
		for _, schTr := range due {
			pro.scheduler.apply(schTr.sw, schTr.tr)
		}

		// allow the processor to be triggered either with timer or directly
		select {
		case <-pro.sleepTimer.C:
		case <-pro.triggerSignal:
		}
	}
}

func (pro *transitionProcessor) trigger() {
	// a pending trigger already forces a rescan, coalesce instead of blocking
	select {
	case pro.triggerSignal <- true:
	default:
	}
}

func (pro *transitionProcessor) updateSleepUntil(nextTrigger time.Time) {
	if pro.sleepUntil.IsZero() || nextTrigger.Before(pro.sleepUntil) {
		pro.sleepUntil = nextTrigger
	}
}

func (pro *transitionProcessor) determineSleepDuration() time.Duration {
	if pro.sleepUntil.IsZero() || len(pro.scheduledTransitions) <= 0 {
		return time.Hour
	}

	return pro.sleepUntil.Sub(time.Now())
}

func (pro *transitionProcessor) updateSleepTimer(d time.Duration) {
	if pro.sleepTimer == nil {
		pro.sleepTimer = time.NewTimer(d)
		return
	}
	pro.sleepTimer.Reset(d)
}
