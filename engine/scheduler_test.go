package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 10 * time.Millisecond

// countTask finishes after n steps and records every step into log
type countTask struct {
	name string
	left int
	log  *[]string
}

func (c *countTask) Step(time.Duration) bool {
	*c.log = append(*c.log, c.name)
	c.left--
	return c.left <= 0
}

func TestScheduler_FIFOByRegistration(t *testing.T) {
	s := NewScheduler(nil)
	var log []string

	s.Start(&countTask{name: "a", left: 2, log: &log})
	s.Start(&countTask{name: "b", left: 1, log: &log})
	s.Start(&countTask{name: "c", left: 3, log: &log})

	s.Tick(frame)
	assert.Equal(t, []string{"a", "b", "c"}, log)
	assert.Equal(t, 2, s.Pending())

	s.Tick(frame)
	s.Tick(frame)
	assert.Equal(t, []string{"a", "b", "c", "a", "c", "c"}, log)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, uint64(3), s.TickCount())
}

func TestScheduler_TaskAddedDuringTickRunsNextTick(t *testing.T) {
	s := NewScheduler(nil)
	var log []string

	s.Start(TaskFunc(func(time.Duration) bool {
		log = append(log, "parent")
		s.Start(&countTask{name: "child", left: 1, log: &log})
		return true
	}))
	s.Start(&countTask{name: "sibling", left: 2, log: &log})

	s.Tick(frame)
	assert.Equal(t, []string{"parent", "sibling"}, log)
	assert.Equal(t, 2, s.Pending())

	// Survivors keep precedence over tasks registered during the previous tick
	s.Tick(frame)
	assert.Equal(t, []string{"parent", "sibling", "sibling", "child"}, log)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_AfterCountsDownFrameTime(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.After(25*time.Millisecond, func() { fired++ })

	s.Tick(frame)
	s.Tick(frame)
	assert.Equal(t, 0, fired)

	s.Tick(frame)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Pending())

	s.Tick(frame)
	assert.Equal(t, 1, fired)
}

func TestScheduler_AfterZeroFiresNextTick(t *testing.T) {
	s := NewScheduler(nil)
	fired := false
	s.After(0, func() { fired = true })
	assert.False(t, fired)
	s.Tick(0)
	assert.True(t, fired)
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler(nil)
	fired := false
	var log []string
	s.After(frame, func() { fired = true })
	s.Start(&countTask{name: "anim", left: 5, log: &log})

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())

	s.Tick(time.Second)
	assert.False(t, fired)
	assert.Empty(t, log)
}

func TestScheduler_CancelAllInsideTick(t *testing.T) {
	s := NewScheduler(nil)
	var log []string

	s.Start(TaskFunc(func(time.Duration) bool {
		log = append(log, "restart")
		s.CancelAll()
		s.Start(&countTask{name: "fresh", left: 1, log: &log})
		return false
	}))
	s.Start(&countTask{name: "stale", left: 3, log: &log})

	s.Tick(frame)
	assert.Equal(t, []string{"restart"}, log)
	require.Equal(t, 1, s.Pending())

	s.Tick(frame)
	assert.Equal(t, []string{"restart", "fresh"}, log)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_NilArgumentsPanic(t *testing.T) {
	s := NewScheduler(nil)
	assert.Panics(t, func() { s.Start(nil) })
	assert.Panics(t, func() { s.After(frame, nil) })
}

func TestScheduler_ReentrantTickPanics(t *testing.T) {
	s := NewScheduler(nil)
	s.Start(TaskFunc(func(dt time.Duration) bool {
		s.Tick(dt)
		return true
	}))
	assert.Panics(t, func() { s.Tick(frame) })
}
