package vmath

import "math"

// SmoothDamp moves current towards target using a critically damped spring
// velocity is carried between calls by the caller, smoothTime and dt are in seconds
// maxSpeed <= 0 disables the speed cap
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	original := target

	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		change = Clamp(change, -maxChange, maxChange)
	}
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// Prevent overshooting the original target
	if (original-current > 0) == (out > original) {
		out = original
		*velocity = (out - original) / dt
	}
	return out
}

// SmoothDampV3F applies SmoothDamp per axis
func SmoothDampV3F(current, target Vec3F, velocity *Vec3F, smoothTime, maxSpeed, dt float64) Vec3F {
	return Vec3F{
		X: SmoothDamp(current.X, target.X, &velocity.X, smoothTime, maxSpeed, dt),
		Y: SmoothDamp(current.Y, target.Y, &velocity.Y, smoothTime, maxSpeed, dt),
		Z: SmoothDamp(current.Z, target.Z, &velocity.Z, smoothTime, maxSpeed, dt),
	}
}
