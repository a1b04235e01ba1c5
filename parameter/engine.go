package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame delta so a stalled process does not fast-forward animations
	MaxFrameDelta = 250 * time.Millisecond

	// CommandQueueSize is the buffer of work posted onto the loop goroutine
	CommandQueueSize = 64
)
