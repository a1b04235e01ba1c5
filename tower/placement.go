package tower

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/stacker/engine"
	"github.com/lixenwraith/stacker/settings"
)

// NoBlock marks an empty current/last reference
const NoBlock = -1

// Deps are the collaborators injected into the Engine
type Deps struct {
	Pool   *Pool
	Camera CameraFocus

	// Optional
	Scheduler *engine.Scheduler
	Recorder  Recorder
	Logger    *zap.Logger
}

// stackState is reset wholesale on restart
type stackState struct {
	runID   uuid.UUID
	running bool
	next    int // next index to place
	current int // block growing under the player's hold
	last    int // most recent block not in error
	perfect PerfectSet
}

// Snapshot is a read-only copy of the stack state
// Index is the top spawned block (0 right after a restart), Next is the index the next spawn takes
type Snapshot struct {
	RunID   uuid.UUID
	Running bool
	Index   int
	Next    int
	Current int
	Last    int
	Perfect []int
	Pending int
}

// Engine is the stacking state machine
// Input events and frame ticks drive it; it owns the scheduler tick and the cascade
type Engine struct {
	settings settings.Settings
	pool     *Pool
	camera   CameraFocus
	sched    *engine.Scheduler
	cascade  *Cascade
	recorder Recorder
	logger   *zap.Logger

	state stackState
}

// NewEngine validates settings, wires the collaborators and starts the first run
func NewEngine(s settings.Settings, deps Deps) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if deps.Pool == nil {
		return nil, fmt.Errorf("%w: block pool", ErrMissingCollaborator)
	}
	if deps.Camera == nil {
		return nil, fmt.Errorf("%w: camera", ErrMissingCollaborator)
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = engine.NewScheduler(logger)
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	e := &Engine{
		settings: s,
		pool:     deps.Pool,
		camera:   deps.Camera,
		sched:    sched,
		recorder: recorder,
		logger:   logger.Named("tower"),
	}
	e.cascade = newCascade(s, e.pool, sched, recorder, logger)
	e.Restart()
	return e, nil
}

// OnFrameTick grows the block in progress, then advances every scheduled task by dt
func (e *Engine) OnFrameTick(dt time.Duration) {
	if dt < 0 {
		panic(fmt.Sprintf("tower: negative frame delta %v", dt))
	}
	if e.state.running && e.state.current != NoBlock {
		e.pool.Get(e.state.current).grow(e.settings.GrowSpeed * dt.Seconds())
	}
	e.sched.Tick(dt)
}

// OnInputBegin spawns the next block in placing mode
// Ignored while halted or while a block is already growing
func (e *Engine) OnInputBegin() {
	if !e.state.running || e.state.current != NoBlock {
		return
	}
	e.spawn(false)
}

// OnInputEnd finalizes the block in progress while running, or restarts after a failure
func (e *Engine) OnInputEnd() error {
	if !e.state.running {
		e.Restart()
		return nil
	}
	if e.state.current == NoBlock {
		return fmt.Errorf("finalize (next index %d): %w", e.state.next, ErrNoBlockInProgress)
	}
	e.validate()
	e.state.current = NoBlock
	return nil
}

// Restart cancels every in-flight task and rebuilds the tower from a fresh base block
func (e *Engine) Restart() {
	e.sched.CancelAll()
	e.cascade.reset()

	e.state.runID = uuid.New()
	e.state.running = true
	e.state.next = 0
	e.state.current = NoBlock
	e.state.last = NoBlock
	e.state.perfect.Reset()

	e.pool.DisableAll()
	e.spawn(true)
	e.camera.Reset()

	e.recorder.Restarted()
	e.logger.Info("run started", zap.String("run_id", e.state.runID.String()))
}

// spawn activates the block at the next index
// The base block appears settled at full scale, any other block starts growing as a ghost
func (e *Engine) spawn(base bool) {
	idx := e.state.next
	b := e.pool.Get(idx)
	b.Active = true

	if base {
		b.Visual = VisualNeutral
		b.Scale = e.settings.PartMaxScale
		e.state.last = idx
	} else {
		b.Visual = VisualGhost
		b.SetSize(e.settings.InitialSize, e.settings.Height())
		e.state.current = idx
	}
	e.state.next++

	e.camera.SetTarget(b.Position())
	e.recorder.Spawned(idx)
}

// validate compares the block in progress against the last settled one
// Only the upper side is bounded: a block smaller than the previous one never fails here
func (e *Engine) validate() {
	idx := e.state.current
	cur := e.pool.Get(idx)
	last := e.pool.Get(e.state.last)
	diff := cur.Size() - last.Size()

	if diff < e.settings.ErrorMargin {
		cur.Visual = VisualNeutral
		e.state.last = idx

		perfect := math.Abs(diff) <= e.settings.PerfectMargin
		e.recorder.Placed(idx, diff, perfect)
		e.logger.Debug("block placed",
			zap.String("run_id", e.state.runID.String()),
			zap.Int("index", idx),
			zap.Float64("diff", diff),
			zap.Bool("perfect", perfect),
		)
		if perfect {
			e.cascade.Trigger(idx, &e.state.perfect)
		}
		e.state.running = true
		return
	}

	cur.Visual = VisualError
	e.camera.ShowTower(cur.Position())
	e.state.running = false
	e.sched.After(e.settings.ErrorShowTime, func() {
		e.pool.Get(idx).Active = false
	})

	e.recorder.Failed(idx, diff)
	e.logger.Info("run failed",
		zap.String("run_id", e.state.runID.String()),
		zap.Int("index", idx),
		zap.Float64("diff", diff),
		zap.Int("perfect", e.state.perfect.Len()),
	)
}

// Snapshot copies the current stack state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		RunID:   e.state.runID,
		Running: e.state.running,
		Index:   e.state.next - 1,
		Next:    e.state.next,
		Current: e.state.current,
		Last:    e.state.last,
		Perfect: e.state.perfect.Indices(),
		Pending: e.sched.Pending(),
	}
}

// Running reports whether play continues
func (e *Engine) Running() bool {
	return e.state.running
}

// Pool exposes the block pool for render collaborators
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Settings returns the engine's copy of the tuning bundle
func (e *Engine) Settings() settings.Settings {
	return e.settings
}
