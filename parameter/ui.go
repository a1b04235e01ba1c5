package parameter

// Layout & Margins
const (
	// TopMargin for status bar
	TopMargin = 1

	// MaxBlockColumns is the width in cells of a block at max footprint and no zoom
	MaxBlockColumns = 40

	// CameraBaseDistance is the camera distance at rest; pulling back along -Z zooms out proportionally
	CameraBaseDistance = 10.0
)

// Status Bar
const (
	StatusTextRunning = " STACK "
	StatusTextFailed  = " FAILED - release to restart "
	StatusTextPaused  = " PAUSED "
)
