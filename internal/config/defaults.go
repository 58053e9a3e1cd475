package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the reference configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 320,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Step:   5,
		},
		Ball: BallConfig{
			Radius:       8,
			StartOffsetY: 30,
			DX:           2,
			DY:           -2,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Rules: RulesConfig{
			PointsPerBrick:  10,
			SpeedStep:       0.1,
			MaxSpeed:        0,
			PaddleMaxDX:     5,
			CollisionPolicy: PolicyFirst,
			RestartDelay:    90,
		},
		TUI: TUIConfig{
			KeyHoldTicks: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
