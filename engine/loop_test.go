package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stacker/parameter"
)

func TestLoop_TicksWithPositiveDeltas(t *testing.T) {
	var mu sync.Mutex
	var total time.Duration
	var ticks int

	clock := NewPausableClock(nil)
	loop := NewLoop(clock, 2*time.Millisecond, func(dt time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		total += dt
		ticks++
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool { return loop.TickCount() >= 5 }, 2*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, ticks, 5)
	assert.Greater(t, total, time.Duration(0))
}

func TestLoop_PausedClockProducesNoTicks(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)
	clock.Pause()

	var ticks atomic.Int32
	loop := NewLoop(clock, time.Millisecond, func(time.Duration) { ticks.Add(1) }, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.NoError(t, loop.Run(ctx))
	assert.Equal(t, int32(0), ticks.Load())
}

func TestLoop_CapsLargeDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	got := make(chan time.Duration, 1)
	loop := NewLoop(clock, time.Millisecond, func(dt time.Duration) {
		select {
		case got <- dt:
		default:
		}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	// Advance game time from the loop goroutine so the next tick sees a huge delta
	require.Eventually(t, func() bool { return loop.Post(func() { mock.Advance(time.Hour) }) }, time.Second, time.Millisecond)

	select {
	case dt := <-got:
		assert.Equal(t, parameter.MaxFrameDelta, dt)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestLoop_PostRunsCommandsInOrderOnLoopGoroutine(t *testing.T) {
	loop := NewLoop(NewPausableClock(nil), time.Millisecond, func(time.Duration) {}, nil)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 10; i++ {
		i := i
		require.True(t, loop.Post(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 10
	}, 2*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestLoop_PostDropsWhenFull(t *testing.T) {
	loop := NewLoop(NewPausableClock(nil), time.Millisecond, func(time.Duration) {}, nil)
	for i := 0; i < parameter.CommandQueueSize; i++ {
		require.True(t, loop.Post(func() {}))
	}
	assert.False(t, loop.Post(func() {}))
	assert.Equal(t, uint64(1), loop.Dropped())
}

func TestLoop_RunTwiceFails(t *testing.T) {
	loop := NewLoop(NewPausableClock(nil), time.Millisecond, func(time.Duration) {}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	require.Eventually(t, func() bool { return loop.running.Load() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, loop.Run(ctx), ErrLoopRunning)

	cancel()
	require.NoError(t, <-done)
}
