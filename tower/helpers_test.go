package tower

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stacker/settings"
	"github.com/lixenwraith/stacker/vmath"
)

const frame = 100 * time.Millisecond

// fakeCamera records every call from the engine
type fakeCamera struct {
	target  vmath.Vec3F
	targets []vmath.Vec3F
	shown   []vmath.Vec3F
	resets  int
}

func (c *fakeCamera) SetTarget(p vmath.Vec3F) {
	c.target = p
	c.targets = append(c.targets, p)
}

func (c *fakeCamera) ShowTower(top vmath.Vec3F) {
	c.shown = append(c.shown, top)
}

func (c *fakeCamera) Reset() {
	c.target = vmath.Vec3F{}
	c.resets++
}

type placedEvent struct {
	index   int
	diff    float64
	perfect bool
}

// fakeRecorder captures recorder callbacks in order
type fakeRecorder struct {
	spawned  []int
	placed   []placedEvent
	failed   []int
	issued   []int
	restarts int
}

func (r *fakeRecorder) Spawned(i int) { r.spawned = append(r.spawned, i) }
func (r *fakeRecorder) Placed(i int, d float64, p bool) {
	r.placed = append(r.placed, placedEvent{i, d, p})
}
func (r *fakeRecorder) Failed(i int, _ float64) { r.failed = append(r.failed, i) }
func (r *fakeRecorder) CascadeIssued(i int)     { r.issued = append(r.issued, i) }
func (r *fakeRecorder) Restarted()              { r.restarts++ }

// testSettings mirrors the worked examples: max footprint 5, error margin 0.3, perfect margin 0.25
func testSettings() settings.Settings {
	s := settings.Default()
	s.PartMaxScale = vmath.Vec3F{X: 5, Y: 0.5, Z: 5}
	s.GrowSpeed = 1
	s.ErrorMargin = 0.3
	s.PerfectMargin = 0.25
	s.InitialSize = 0.5
	s.MinSize = 0.5
	s.PerfectDelay = 200 * time.Millisecond
	s.ErrorShowTime = time.Second
	return s
}

func newTestEngine(t *testing.T, mutate func(*settings.Settings)) (*Engine, *fakeCamera, *fakeRecorder) {
	t.Helper()
	s := testSettings()
	if mutate != nil {
		mutate(&s)
	}
	cam := &fakeCamera{}
	rec := &fakeRecorder{}
	e, err := NewEngine(s, Deps{
		Pool:     NewPool(s.Height()),
		Camera:   cam,
		Recorder: rec,
	})
	require.NoError(t, err)
	return e, cam, rec
}

// placeWithSize spawns the next block, forces its footprint and finalizes it
func placeWithSize(t *testing.T, e *Engine, size float64) {
	t.Helper()
	e.OnInputBegin()
	cur := e.Snapshot().Current
	require.NotEqual(t, NoBlock, cur)
	e.Pool().Get(cur).SetSize(size, e.Settings().Height())
	require.NoError(t, e.OnInputEnd())
}

// drain ticks until the scheduler is idle or the limit is reached
func drain(e *Engine, limit int) int {
	n := 0
	for ; n < limit && e.Snapshot().Pending > 0; n++ {
		e.OnFrameTick(frame)
	}
	return n
}
