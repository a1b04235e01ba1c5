package tower

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stacker/engine"
	"github.com/lixenwraith/stacker/settings"
)

// Cascade sequences the perfect move: the placed block pulses immediately, then every
// block from two below it down to the base pulses one perfect delay after the previous one
type Cascade struct {
	settings settings.Settings
	pool     *Pool
	sched    *engine.Scheduler
	recorder Recorder
	logger   *zap.Logger

	// active holds the animation currently driving each block so overlapping cascades never
	// run two tasks against the same scale
	active map[int]*growShrinkTask

	// animate starts the grow-then-shrink of one block, replaced in tests to observe issuance
	animate func(index int, grow, shrink float64)
}

func newCascade(s settings.Settings, pool *Pool, sched *engine.Scheduler, recorder Recorder, logger *zap.Logger) *Cascade {
	c := &Cascade{
		settings: s,
		pool:     pool,
		sched:    sched,
		recorder: recorder,
		logger:   logger.Named("cascade"),
		active:   make(map[int]*growShrinkTask),
	}
	c.animate = c.startAnimation
	return c
}

// Trigger records k as perfect and starts a cascade run from it
// k is the index of a block the player just placed, so the base (0) is never a valid trigger
func (c *Cascade) Trigger(k int, perfect *PerfectSet) {
	if k < 1 {
		panic(fmt.Sprintf("tower: cascade triggered at index %d, must be >= 1", k))
	}
	perfect.Add(k)

	top := c.pool.Get(k)
	grow := top.Size() + c.settings.PerfectGrow
	shrink := c.clamp(grow - c.settings.PerfectShrink)
	c.issue(k, grow, shrink)

	// Lower steps start two below the trigger; the block directly beneath is left alone
	first := k - 2
	if first < 0 {
		return
	}
	c.sched.Start(&cascadeRun{
		cascade: c,
		perfect: perfect,
		next:    first,
		wait:    c.settings.PerfectDelay,
	})
	c.logger.Debug("cascade started", zap.Int("trigger", k), zap.Int("steps", first+1))
}

// issueLower pulses a block below the trigger
// Blocks that were perfect themselves settle back to their size, others scale by the tower shrink factor
func (c *Cascade) issueLower(j int, perfect *PerfectSet) {
	b := c.pool.Get(j)
	size := b.Size()
	grow := size + c.settings.PerfectTowerGrow
	shrink := size
	if !perfect.Contains(j) {
		shrink = size * c.settings.PerfectTowerShrink
	}
	c.issue(j, grow, c.clamp(shrink))
}

func (c *Cascade) issue(index int, grow, shrink float64) {
	c.animate(index, grow, shrink)
	c.recorder.CascadeIssued(index)
}

// startAnimation schedules a grow-then-shrink, or retargets the one already animating the block
func (c *Cascade) startAnimation(index int, grow, shrink float64) {
	if t, ok := c.active[index]; ok {
		t.retarget(grow, shrink)
		return
	}
	t := newGrowShrinkTask(c.pool, index, c.settings.GrowSpeed, c.settings.Height(), grow, shrink)
	t.onDone = func() { delete(c.active, index) }
	c.active[index] = t
	c.sched.Start(t)
}

// reset forgets animations dropped by a scheduler CancelAll
func (c *Cascade) reset() {
	clear(c.active)
}

func (c *Cascade) clamp(size float64) float64 {
	return ClampSize(size, c.settings.MinSize, c.settings.FootprintMax())
}

// cascadeRun is the suspended state of one cascade: the next index to issue and the
// frame time left before issuing it, at most one issuance per tick
type cascadeRun struct {
	cascade *Cascade
	perfect *PerfectSet
	next    int
	wait    time.Duration
}

// Step implements engine.Task
func (r *cascadeRun) Step(dt time.Duration) bool {
	r.wait -= dt
	if r.wait > 0 {
		return false
	}
	r.cascade.issueLower(r.next, r.perfect)
	r.next--
	if r.next < 0 {
		return true
	}
	r.wait = r.cascade.settings.PerfectDelay
	return false
}
