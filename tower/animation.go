package tower

import (
	"fmt"
	"time"
)

type animPhase uint8

const (
	phaseGrow animPhase = iota
	phaseShrink
	phaseDone
)

// growShrinkTask animates one block's footprint up to grow and then down to shrink
// One linear step per tick, snapping to the target instead of overshooting it
type growShrinkTask struct {
	pool   *Pool
	index  int
	speed  float64
	height float64

	grow   float64
	shrink float64
	phase  animPhase

	// onDone runs once when the shrink phase completes
	onDone func()
}

func newGrowShrinkTask(pool *Pool, index int, speed, height, grow, shrink float64) *growShrinkTask {
	if speed <= 0 {
		panic(fmt.Sprintf("tower: grow/shrink animation needs a positive speed, got %v", speed))
	}
	return &growShrinkTask{
		pool:   pool,
		index:  index,
		speed:  speed,
		height: height,
		grow:   grow,
		shrink: shrink,
	}
}

// retarget restarts the animation from its grow phase with new targets
func (t *growShrinkTask) retarget(grow, shrink float64) {
	t.grow = grow
	t.shrink = shrink
	t.phase = phaseGrow
}

// Step implements engine.Task
func (t *growShrinkTask) Step(dt time.Duration) bool {
	b := t.pool.Get(t.index)
	delta := t.speed * dt.Seconds()

	switch t.phase {
	case phaseGrow:
		if b.Size() < t.grow {
			if b.Size()+delta > t.grow {
				b.SetSize(t.grow, t.height)
			} else {
				b.grow(delta)
			}
			return false
		}
		t.phase = phaseShrink
		fallthrough

	case phaseShrink:
		if b.Size() > t.shrink {
			if b.Size()-delta < t.shrink {
				b.SetSize(t.shrink, t.height)
			} else {
				b.grow(-delta)
			}
			return false
		}
		t.phase = phaseDone
		if t.onDone != nil {
			t.onDone()
		}
	}
	return true
}
