package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stacker/parameter"
)

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("loop already running")

// Loop owns the game goroutine: it measures frame deltas on a pausable clock and
// serializes posted commands with frame ticks so game state is never shared
type Loop struct {
	clock    *PausableClock
	interval time.Duration
	maxDelta time.Duration
	tick     func(dt time.Duration)

	commands chan func()
	logger   *zap.Logger

	tickCount atomic.Uint64
	dropped   atomic.Uint64
	running   atomic.Bool
}

// NewLoop creates a loop calling tick every interval with the game time elapsed since the previous tick
func NewLoop(clock *PausableClock, interval time.Duration, tick func(dt time.Duration), logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		maxDelta: parameter.MaxFrameDelta,
		tick:     tick,
		commands: make(chan func(), parameter.CommandQueueSize),
		logger:   logger.Named("loop"),
	}
}

// Post queues cmd to run on the loop goroutine between ticks
// Returns false and drops the command when the queue is full
func (l *Loop) Post(cmd func()) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		l.dropped.Add(1)
		l.logger.Warn("command queue full, dropping command")
		return false
	}
}

// Run blocks until ctx is done
// Paused game time produces no ticks; a delta above MaxFrameDelta is capped
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.clock.Now()
	l.logger.Debug("loop started", zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", zap.Uint64("ticks", l.tickCount.Load()))
			return nil

		case cmd := <-l.commands:
			cmd()

		case <-ticker.C:
			now := l.clock.Now()
			dt := now.Sub(last)
			last = now
			if dt <= 0 {
				continue
			}
			if dt > l.maxDelta {
				dt = l.maxDelta
			}
			l.tick(dt)
			l.tickCount.Add(1)
		}
	}
}

// TickCount returns the number of ticks delivered
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Dropped returns the number of commands dropped because the queue was full
func (l *Loop) Dropped() uint64 {
	return l.dropped.Load()
}
