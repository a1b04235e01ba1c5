package engine

import (
	"time"

	"go.uber.org/zap"
)

// Scheduler is a single-threaded cooperative task runner driven by frame ticks
// Tasks are advanced in registration order; a task registered during a tick first runs on the next tick
// It must only be used from the goroutine that owns the game state
type Scheduler struct {
	tasks  []Task
	logger *zap.Logger

	// generation changes on CancelAll so a tick in progress stops touching stale tasks
	generation uint64
	tickCount  uint64
	ticking    bool
}

// NewScheduler creates an empty scheduler, nil logger is allowed
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		tasks:  make([]Task, 0, 16),
		logger: logger.Named("scheduler"),
	}
}

// Start registers a per-frame task
func (s *Scheduler) Start(task Task) {
	if task == nil {
		panic("scheduler: nil task")
	}
	s.tasks = append(s.tasks, task)
}

// After runs fn once at least delay of frame time has been ticked
// A non-positive delay fires on the next tick
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if fn == nil {
		panic("scheduler: nil callback")
	}
	s.Start(&delayTask{remaining: delay, fn: fn})
}

// Tick advances every task registered before this call by dt
// Finished tasks are dropped, survivors keep their relative order
func (s *Scheduler) Tick(dt time.Duration) {
	if s.ticking {
		panic("scheduler: re-entrant Tick")
	}
	s.ticking = true
	defer func() { s.ticking = false }()

	s.tickCount++
	gen := s.generation
	n := len(s.tasks)

	kept := 0
	for i := 0; i < n; i++ {
		task := s.tasks[i]
		done := task.Step(dt)
		if s.generation != gen {
			// CancelAll ran inside a task; everything from before is gone
			return
		}
		if !done {
			s.tasks[kept] = task
			kept++
		}
	}

	// Tasks appended during this tick move down behind the survivors
	added := copy(s.tasks[kept:], s.tasks[n:])
	total := kept + added
	for i := total; i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:total]
}

// CancelAll drops every pending task and delayed callback
func (s *Scheduler) CancelAll() {
	if len(s.tasks) > 0 {
		s.logger.Debug("cancel all", zap.Int("pending", len(s.tasks)))
	}
	for i := range s.tasks {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:0]
	s.generation++
}

// Pending returns the number of in-flight tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// TickCount returns the number of ticks processed
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount
}
