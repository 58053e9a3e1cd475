// Package config provides YAML/TOML-based configuration loading for the
// Breakout simulation and its front-ends.
package config

import (
	"errors"
	"fmt"
)

// Collision policies for bricks hit during a single step.
const (
	// PolicyFirst resolves at most one brick per step.
	PolicyFirst = "first"
	// PolicyAll keeps scanning after a hit, so overlapping bricks all
	// resolve in the same step and their bounces compound.
	PolicyAll = "all"
)

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Field  FieldConfig  `yaml:"field" toml:"field"`
	Paddle PaddleConfig `yaml:"paddle" toml:"paddle"`
	Ball   BallConfig   `yaml:"ball" toml:"ball"`
	Bricks BricksConfig `yaml:"bricks" toml:"bricks"`
	Rules  RulesConfig  `yaml:"rules" toml:"rules"`
	TUI    TUIConfig    `yaml:"tui" toml:"tui"`
}

// FieldConfig defines the play area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines the paddle size and keyboard step.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"` // Units moved per step while an intent is held
}

// BallConfig defines the ball radius and launch state.
type BallConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	StartOffsetY float64 `yaml:"start_offset_y" toml:"start_offset_y"` // Distance of the start position above the field bottom
	DX           float64 `yaml:"dx" toml:"dx"`
	DY           float64 `yaml:"dy" toml:"dy"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Columns    int     `yaml:"columns" toml:"columns"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
}

// RulesConfig defines scoring and ball speed behavior.
type RulesConfig struct {
	PointsPerBrick  int     `yaml:"points_per_brick" toml:"points_per_brick"`
	SpeedStep       float64 `yaml:"speed_step" toml:"speed_step"`             // Added to |dx| and |dy| per destroyed brick
	MaxSpeed        float64 `yaml:"max_speed" toml:"max_speed"`               // Per-axis escalation cap, 0 = uncapped
	PaddleMaxDX     float64 `yaml:"paddle_max_dx" toml:"paddle_max_dx"`       // |dx| after an edge hit on the paddle
	CollisionPolicy string  `yaml:"collision_policy" toml:"collision_policy"` // "first" or "all"
	RestartDelay    int     `yaml:"restart_delay" toml:"restart_delay"`       // Ticks the loss message stays up, 0 = immediate
}

// TUIConfig holds terminal front-end tuning.
type TUIConfig struct {
	// KeyHoldTicks is how long a key press keeps its intent held. Terminals
	// report presses only, so auto-repeat refreshes the hold.
	KeyHoldTicks int `yaml:"key_hold_ticks" toml:"key_hold_ticks"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %g exceeds field width %g", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.Step < 0 {
		errs = append(errs, fmt.Errorf("paddle step must not be negative, got %g", c.Paddle.Step))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Bricks.Rows < 0 || c.Bricks.Columns < 0 {
		errs = append(errs, fmt.Errorf("brick grid must not be negative, got %dx%d", c.Bricks.Columns, c.Bricks.Rows))
	}
	if c.Rules.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("max speed must not be negative, got %g", c.Rules.MaxSpeed))
	}
	if c.Rules.RestartDelay < 0 {
		errs = append(errs, fmt.Errorf("restart delay must not be negative, got %d", c.Rules.RestartDelay))
	}
	switch c.Rules.CollisionPolicy {
	case PolicyFirst, PolicyAll:
	default:
		errs = append(errs, fmt.Errorf("unknown collision policy %q", c.Rules.CollisionPolicy))
	}
	if c.TUI.KeyHoldTicks < 1 {
		errs = append(errs, fmt.Errorf("key hold must be at least one tick, got %d", c.TUI.KeyHoldTicks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
