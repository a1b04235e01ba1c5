package settings

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range field at once, wrapped in ErrInvalid
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.PartMaxScale.X > 0, "part_max_scale.x must be > 0, got %v", s.PartMaxScale.X)
	check(s.PartMaxScale.Y > 0, "part_max_scale.y must be > 0, got %v", s.PartMaxScale.Y)
	check(s.PartMaxScale.Z > 0, "part_max_scale.z must be > 0, got %v", s.PartMaxScale.Z)
	check(s.GrowSpeed > 0, "grow_speed must be > 0, got %v", s.GrowSpeed)
	check(s.MinSize > 0, "min_size must be > 0, got %v", s.MinSize)
	check(s.MinSize <= s.PartMaxScale.X, "min_size %v exceeds part_max_scale.x %v", s.MinSize, s.PartMaxScale.X)
	check(s.InitialSize > 0 && s.InitialSize <= s.PartMaxScale.X,
		"initial_size must be in (0, %v], got %v", s.PartMaxScale.X, s.InitialSize)
	check(s.ErrorMargin >= 0, "error_margin must be >= 0, got %v", s.ErrorMargin)
	check(s.PerfectMargin >= 0, "perfect_margin must be >= 0, got %v", s.PerfectMargin)
	check(s.PerfectDelay >= 0, "perfect_delay must be >= 0, got %v", s.PerfectDelay)
	check(s.PerfectGrow >= 0, "perfect_grow must be >= 0, got %v", s.PerfectGrow)
	check(s.PerfectShrink >= 0, "perfect_shrink must be >= 0, got %v", s.PerfectShrink)
	check(s.PerfectTowerGrow >= 0, "perfect_tower_grow must be >= 0, got %v", s.PerfectTowerGrow)
	check(s.PerfectTowerShrink > 0, "perfect_tower_shrink must be > 0, got %v", s.PerfectTowerShrink)
	check(s.ErrorShowTime >= 0, "error_show_time must be >= 0, got %v", s.ErrorShowTime)
	check(s.Camera.Smoothness >= 0, "camera.smoothness must be >= 0, got %v", s.Camera.Smoothness)
	check(s.Camera.ZoomOutCoef >= 0, "camera.zoom_out_coef must be >= 0, got %v", s.Camera.ZoomOutCoef)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
