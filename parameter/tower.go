package parameter

import "time"

// Block geometry
const (
	// PartMaxSize is the footprint of the base block and the upper clamp for every animated size
	PartMaxSize = 5.0

	// PartHeight is the fixed Y scale of every block
	// Block centers are spaced by twice this value
	PartHeight = 0.5
)

// Placement
const (
	// GrowSpeed is footprint units per second while the player holds and during perfect animations
	GrowSpeed = 3.0

	// InitialSize is the footprint a freshly spawned block starts growing from
	InitialSize = 0.5

	// MinSize is the lower clamp for perfect move shrink targets
	MinSize = 0.5

	// ErrorMargin is the upper tolerance of (current - last) before a placement fails
	ErrorMargin = 0.3

	// PerfectMargin is the absolute tolerance that counts as a perfect move
	PerfectMargin = 0.25
)

// Perfect move cascade
const (
	// PerfectDelay separates issuance of consecutive cascade steps
	PerfectDelay = 100 * time.Millisecond

	// PerfectGrow and PerfectShrink shape the animation of the perfectly placed block
	PerfectGrow   = 0.5
	PerfectShrink = 0.25

	// PerfectTowerGrow is added to every lower block before it settles again
	PerfectTowerGrow = 0.3

	// PerfectTowerShrink multiplies the settle size of lower blocks that were not perfect themselves
	PerfectTowerShrink = 1.05
)

// ErrorShowTime is how long a failed block stays visible before deactivation
const ErrorShowTime = time.Second
