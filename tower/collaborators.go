package tower

import "github.com/lixenwraith/stacker/vmath"

// CameraFocus receives the point the camera should track
type CameraFocus interface {
	// SetTarget makes the camera follow point
	SetTarget(point vmath.Vec3F)
	// ShowTower pulls the camera back to frame the tower up to top
	ShowTower(top vmath.Vec3F)
	// Reset puts the camera and its target back at the origin
	Reset()
}

// Recorder observes gameplay transitions, used for metrics
type Recorder interface {
	Spawned(index int)
	Placed(index int, diff float64, perfect bool)
	Failed(index int, diff float64)
	CascadeIssued(index int)
	Restarted()
}

type nopRecorder struct{}

func (nopRecorder) Spawned(int)               {}
func (nopRecorder) Placed(int, float64, bool) {}
func (nopRecorder) Failed(int, float64)       {}
func (nopRecorder) CascadeIssued(int)         {}
func (nopRecorder) Restarted()                {}
