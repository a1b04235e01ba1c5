package engine

import "time"

// Task is a suspended unit of work resumed once per frame tick
// Step advances the task by dt and reports whether it has finished
type Task interface {
	Step(dt time.Duration) (done bool)
}

// TaskFunc adapts a function to Task
type TaskFunc func(dt time.Duration) bool

// Step calls f(dt)
func (f TaskFunc) Step(dt time.Duration) bool {
	return f(dt)
}

// delayTask counts down by accumulated frame time and fires once
type delayTask struct {
	remaining time.Duration
	fn        func()
}

func (d *delayTask) Step(dt time.Duration) bool {
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	d.fn()
	return true
}
