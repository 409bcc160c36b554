// Package physics advances the ball avatar one fixed tick at a time and
// resolves its collisions against a level's static geometry.
package physics

import (
	"errors"
	"fmt"
)

// Params are the avatar tunables. Every value is per tick; the engine never
// scales by wall-clock time.
type Params struct {
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"`      // negative: up is -y
	AirJumpFactor   float64 `yaml:"air_jump_factor"` // 0 disables the air jump
	BounceFactor    float64 `yaml:"bounce_factor"`
	FrictionGround  float64 `yaml:"friction_ground"`
	FrictionAir     float64 `yaml:"friction_air"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	RestThreshold   float64 `yaml:"rest_threshold"`
	ProximityFactor float64 `yaml:"proximity_factor"`
	Radius          float64 `yaml:"radius"`
}

// WorldParams size the playfield around a level.
type WorldParams struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LandHeight    float64 `yaml:"land_height"`
	FallMargin    float64 `yaml:"fall_margin"`
	WallThickness float64 `yaml:"wall_thickness"`
	EdgePadding   float64 `yaml:"edge_padding"`
	CellSize      int     `yaml:"cell_size"`
}

// GroundY is the y of the ground line.
func (wp WorldParams) GroundY() float64 {
	return wp.Height - wp.LandHeight
}

func DefaultParams() Params {
	return Params{
		Gravity:         0.649,
		JumpForce:       -14.75,
		AirJumpFactor:   0.9,
		BounceFactor:    0.3675,
		FrictionGround:  0.92,
		FrictionAir:     0.99,
		MaxSpeed:        9.775,
		Acceleration:    0.826,
		RestThreshold:   1.2,
		ProximityFactor: 0.75,
		Radius:          20,
	}
}

func DefaultWorldParams() WorldParams {
	radius := DefaultParams().Radius
	return WorldParams{
		Width:         1200,
		Height:        700,
		LandHeight:    150,
		FallMargin:    120,
		WallThickness: max(radius*0.7, 8),
		EdgePadding:   60,
		CellSize:      32,
	}
}

var ErrInvalidParams = errors.New("invalid physics params")

// Validate rejects params that would make the simulation diverge or stall.
func (p Params) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}
	check(p.Gravity > 0, "gravity %g must be positive", p.Gravity)
	check(p.JumpForce < 0, "jump_force %g must be negative", p.JumpForce)
	check(p.AirJumpFactor >= 0, "air_jump_factor %g must not be negative", p.AirJumpFactor)
	check(p.BounceFactor >= 0 && p.BounceFactor < 1, "bounce_factor %g must be in [0,1)", p.BounceFactor)
	check(p.FrictionGround > 0 && p.FrictionGround <= 1, "friction_ground %g must be in (0,1]", p.FrictionGround)
	check(p.FrictionAir > 0 && p.FrictionAir <= 1, "friction_air %g must be in (0,1]", p.FrictionAir)
	check(p.MaxSpeed > 0, "max_speed %g must be positive", p.MaxSpeed)
	check(p.Acceleration > 0, "acceleration %g must be positive", p.Acceleration)
	check(p.RestThreshold >= 0, "rest_threshold %g must not be negative", p.RestThreshold)
	check(p.Radius > 0, "radius %g must be positive", p.Radius)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(problems...))
	}
	return nil
}

// Validate rejects a world that cannot hold a level.
func (wp WorldParams) Validate() error {
	switch {
	case wp.Width <= 0 || wp.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidParams, wp.Width, wp.Height)
	case wp.LandHeight < 0 || wp.LandHeight >= wp.Height:
		return fmt.Errorf("%w: land_height %g", ErrInvalidParams, wp.LandHeight)
	case wp.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalidParams, wp.CellSize)
	}
	return nil
}
