// Package settings loads the immutable tuning bundle consumed by the tower core
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stacker/parameter"
	"github.com/lixenwraith/stacker/vmath"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "STACKER_"

var (
	// ErrMissingSource is returned when no settings source is configured or the file does not exist
	ErrMissingSource = errors.New("settings source missing")

	// ErrInvalid wraps every validation failure
	ErrInvalid = errors.New("invalid settings")
)

// Settings is the game tuning bundle
// Read once per run, never mutated by the core; the engine keeps its own copy
type Settings struct {
	PartMaxScale vmath.Vec3F `yaml:"part_max_scale"`

	GrowSpeed   float64 `yaml:"grow_speed" env:"GROW_SPEED"`
	ErrorMargin float64 `yaml:"error_margin" env:"ERROR_MARGIN"`
	InitialSize float64 `yaml:"initial_size" env:"INITIAL_SIZE"`
	MinSize     float64 `yaml:"min_size" env:"MIN_SIZE"`

	PerfectMargin      float64       `yaml:"perfect_margin" env:"PERFECT_MARGIN"`
	PerfectDelay       time.Duration `yaml:"perfect_delay" env:"PERFECT_DELAY"`
	PerfectGrow        float64       `yaml:"perfect_grow" env:"PERFECT_GROW"`
	PerfectShrink      float64       `yaml:"perfect_shrink" env:"PERFECT_SHRINK"`
	PerfectTowerGrow   float64       `yaml:"perfect_tower_grow" env:"PERFECT_TOWER_GROW"`
	PerfectTowerShrink float64       `yaml:"perfect_tower_shrink" env:"PERFECT_TOWER_SHRINK"`

	ErrorShowTime time.Duration `yaml:"error_show_time" env:"ERROR_SHOW_TIME"`

	Camera Camera `yaml:"camera" envPrefix:"CAMERA_"`
}

// Camera tunes the follow camera collaborator
type Camera struct {
	Smoothness  time.Duration `yaml:"smoothness" env:"SMOOTHNESS"`
	ZoomOutCoef float64       `yaml:"zoom_out_coef" env:"ZOOM_OUT_COEF"`
	MaxSpeed    float64       `yaml:"max_speed" env:"MAX_SPEED"`
}

// Default returns the built-in tuning from package parameter
func Default() Settings {
	return Settings{
		PartMaxScale: vmath.Vec3F{
			X: parameter.PartMaxSize,
			Y: parameter.PartHeight,
			Z: parameter.PartMaxSize,
		},
		GrowSpeed:          parameter.GrowSpeed,
		ErrorMargin:        parameter.ErrorMargin,
		InitialSize:        parameter.InitialSize,
		MinSize:            parameter.MinSize,
		PerfectMargin:      parameter.PerfectMargin,
		PerfectDelay:       parameter.PerfectDelay,
		PerfectGrow:        parameter.PerfectGrow,
		PerfectShrink:      parameter.PerfectShrink,
		PerfectTowerGrow:   parameter.PerfectTowerGrow,
		PerfectTowerShrink: parameter.PerfectTowerShrink,
		ErrorShowTime:      parameter.ErrorShowTime,
		Camera: Camera{
			Smoothness:  parameter.CameraSmoothness,
			ZoomOutCoef: parameter.CameraZoomOutCoef,
			MaxSpeed:    parameter.CameraMaxSpeed,
		},
	}
}

// Load reads a YAML settings file over the defaults, applies STACKER_* environment overrides and validates
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, fmt.Errorf("%w: no path configured", ErrMissingSource)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults, applies environment overrides and validates
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// FootprintMax is the upper clamp for block sizes
func (s Settings) FootprintMax() float64 {
	return s.PartMaxScale.X
}

// Height is the fixed Y scale of a block
func (s Settings) Height() float64 {
	return s.PartMaxScale.Y
}
