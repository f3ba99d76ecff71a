package toggle

import (
	"fmt"
	"time"

	"github.com/io-da/schedule"
)

func ExampleAtomicSwitch() {
	sw := NewAtomicSwitch(false)
	fmt.Println("initial:", sw.Get())
	fmt.Println("set previous:", sw.Set())
	fmt.Println("current:", sw.Get())
	fmt.Println("cas true->false:", sw.CompareAndSet(true, false))
	fmt.Println("current:", sw.Get())
	// Output:
	// initial: false
	// set previous: false
	// current: true
	// cas true->false: true
	// current: false
}

func ExampleSwitch() {
	sw := NewSwitch(false)
	sw.Enable()
	fmt.Println(sw.Enabled())
	sw.Toggle()
	fmt.Println(sw.Enabled())
	// Output:
	// true
	// false
}

func ExampleScheduler() {
	sched := NewScheduler()
	sched.Initialize()

	sw := NewAtomicSwitch(false)
	_, _ = sched.Schedule(sw, TransitionSet, schedule.At(time.Now()))
	for !sw.Get() {
		time.Sleep(time.Millisecond)
	}
	fmt.Println(sw.Get())

	sched.Shutdown()
	// Output:
	// true
}

// A boolean parameter selects between two code paths at the call site.
func Example_booleanParameter() {
	fmt.Println(query("user:1", true))
	fmt.Println(query("user:1", false))
	// Output:
	// cached_user:1
	// db_user:1
}

func query(key string, useCache bool) string {
	if useCache {
		return "cached_" + key
	}
	return "db_" + key
}
