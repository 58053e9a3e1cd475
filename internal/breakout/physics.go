package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the ball state in field units.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64 // Velocity per step
	Radius float64
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Rect {
	return core.SquareAround(b.X, b.Y, b.Radius)
}

// Move integrates one step of constant velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Escalate grows both velocity magnitudes by step, keeping their signs.
// A zero component counts as negative. With a positive limit no axis is
// pushed above it by escalation.
func (b *Ball) Escalate(step, limit float64) {
	b.DX = escalate(b.DX, step, limit)
	b.DY = escalate(b.DY, step, limit)
}

func escalate(v, step, limit float64) float64 {
	sign := -1.0
	if v > 0 {
		sign = 1
	}
	mag := math.Abs(v)
	next := mag + step
	if limit > 0 && next > limit {
		next = math.Max(mag, limit)
	}
	return sign * next
}

// Paddle is the player's paddle. Only X moves; it sits on the field bottom.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle rectangle for a field of the given height.
func (p *Paddle) Rect(fieldH float64) core.Rect {
	return core.NewRect(p.X, fieldH-p.Height, p.Width, p.Height)
}

// Clamp keeps the paddle inside [0, fieldW - Width].
func (p *Paddle) Clamp(fieldW float64) {
	p.X = core.ClampF(p.X, 0, fieldW-p.Width)
}

// Spans reports whether x lies strictly between the paddle edges.
func (p *Paddle) Spans(x float64) bool {
	return x > p.X && x < p.X+p.Width
}

// ImpactOffset maps x to [-1, 1] across the paddle, 0 at the center.
func (p *Paddle) ImpactOffset(x float64) float64 {
	return (x - p.CenterX()) / (p.Width / 2)
}
