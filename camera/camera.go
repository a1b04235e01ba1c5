// Package camera implements the follow camera that tracks the top of the tower
package camera

import (
	"time"

	"github.com/lixenwraith/stacker/settings"
	"github.com/lixenwraith/stacker/vmath"
)

// Follower smoothly moves its position towards a target point
type Follower struct {
	position vmath.Vec3F
	target   vmath.Vec3F
	velocity vmath.Vec3F

	smoothness  time.Duration
	zoomOutCoef float64
	maxSpeed    float64
}

// NewFollower creates a camera resting at the origin
func NewFollower(cfg settings.Camera) *Follower {
	return &Follower{
		smoothness:  cfg.Smoothness,
		zoomOutCoef: cfg.ZoomOutCoef,
		maxSpeed:    cfg.MaxSpeed,
	}
}

// SetTarget makes the camera follow point
func (f *Follower) SetTarget(point vmath.Vec3F) {
	f.target = point
}

// ShowTower frames the tower up to top: centered on half its height and pulled back along -Z
func (f *Follower) ShowTower(top vmath.Vec3F) {
	half := top.Y / 2
	f.target = vmath.Vec3F{
		X: top.X,
		Y: half,
		Z: -half * f.zoomOutCoef,
	}
}

// Reset snaps position and target back to the origin
func (f *Follower) Reset() {
	f.position = vmath.Vec3F{}
	f.target = vmath.Vec3F{}
	f.velocity = vmath.Vec3F{}
}

// Update advances the camera by one frame
func (f *Follower) Update(dt time.Duration) {
	if f.smoothness <= 0 {
		f.position = f.target
		f.velocity = vmath.Vec3F{}
		return
	}
	f.position = vmath.SmoothDampV3F(f.position, f.target, &f.velocity,
		f.smoothness.Seconds(), f.maxSpeed, dt.Seconds())
}

func (f *Follower) Position() vmath.Vec3F {
	return f.position
}

func (f *Follower) Target() vmath.Vec3F {
	return f.target
}
