package parameter

import "time"

// Camera follow configuration
const (
	// CameraSmoothness is the approximate time the camera takes to reach its target
	CameraSmoothness = 250 * time.Millisecond

	// CameraZoomOutCoef pulls the camera back along -Z when framing the whole tower
	// Applied to half of the tower height
	CameraZoomOutCoef = 1.5

	// CameraMaxSpeed caps the follow speed in world units per second, 0 disables the cap
	CameraMaxSpeed = 0.0
)
