// Package breakout implements the Breakout simulation: one ball, one
// paddle and a fixed grid of bricks advanced one step at a time.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickStatus is the lifecycle state of a single brick.
type BrickStatus uint8

const (
	BrickActive    BrickStatus = iota // Present, collides and renders
	BrickDestroyed                    // Gone for the rest of the session
)

// Layout holds the brick grid constants. Brick positions are derived from
// it on demand rather than stored per brick.
type Layout struct {
	Rows       int
	Columns    int
	BrickW     float64
	BrickH     float64
	Padding    float64
	OffsetTop  float64
	OffsetLeft float64
}

// LayoutFrom builds a Layout from the bricks section of the config.
func LayoutFrom(cfg config.BricksConfig) Layout {
	return Layout{
		Rows:       cfg.Rows,
		Columns:    cfg.Columns,
		BrickW:     cfg.Width,
		BrickH:     cfg.Height,
		Padding:    cfg.Padding,
		OffsetTop:  cfg.OffsetTop,
		OffsetLeft: cfg.OffsetLeft,
	}
}

// BrickRect returns the rectangle of the brick at (row, col).
func (l Layout) BrickRect(row, col int) core.Rect {
	return core.Rect{
		X: float64(col)*(l.BrickW+l.Padding) + l.OffsetLeft,
		Y: float64(row)*(l.BrickH+l.Padding) + l.OffsetTop,
		W: l.BrickW,
		H: l.BrickH,
	}
}

// Grid tracks the status of every brick, indexed [col][row] to match the
// column-major scan order used by collision detection.
type Grid struct {
	status [][]BrickStatus
}

// NewGrid creates a grid with every brick active.
func NewGrid(layout Layout) *Grid {
	g := &Grid{status: make([][]BrickStatus, layout.Columns)}
	for c := range g.status {
		g.status[c] = make([]BrickStatus, layout.Rows)
	}
	return g
}

// Active reports whether the brick at (row, col) is still present.
// Out-of-range coordinates are never active.
func (g *Grid) Active(row, col int) bool {
	if col < 0 || col >= len(g.status) || row < 0 || row >= len(g.status[col]) {
		return false
	}
	return g.status[col][row] == BrickActive
}

// Destroy marks the brick at (row, col) destroyed. It returns false if the
// brick was already destroyed, so each brick is destroyed at most once.
func (g *Grid) Destroy(row, col int) bool {
	if !g.Active(row, col) {
		return false
	}
	g.status[col][row] = BrickDestroyed
	return true
}

// CountActive returns the number of bricks still present.
func (g *Grid) CountActive() int {
	count := 0
	for _, column := range g.status {
		for _, s := range column {
			if s == BrickActive {
				count++
			}
		}
	}
	return count
}
