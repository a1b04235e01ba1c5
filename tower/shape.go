package tower

import "github.com/lixenwraith/stacker/vmath"

// FootprintForSize returns the scale of a block with the given footprint and fixed height
func FootprintForSize(size, height float64) vmath.Vec3F {
	return vmath.V3FAdd(vmath.V3FScale(vmath.Horizontal, size), vmath.V3FScale(vmath.Up, height))
}

// PositionForIndex returns the center of the block at index i
// Centers are two heights apart because block pivots sit at the base in the geometry convention
func PositionForIndex(i int, height float64) vmath.Vec3F {
	return vmath.V3FScale(vmath.Up, float64(i)*height*2)
}

// ClampSize limits an animated footprint to [minSize, maxSize]
func ClampSize(size, minSize, maxSize float64) float64 {
	return vmath.Clamp(size, minSize, maxSize)
}
