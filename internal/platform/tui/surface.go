package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used to draw the field.
const (
	blockRune = '█'
	ballRune  = '●'
	emptyRune = ' '
)

// CellSurface projects field units onto a rectangular area of a Screen.
type CellSurface struct {
	screen *core.Screen
	area   Area
	fieldW float64
	fieldH float64
}

var _ breakout.Surface = (*CellSurface)(nil)

// Area is a rectangle of terminal cells.
type Area struct {
	X, Y int
	W, H int
}

// NewCellSurface creates a surface drawing a fieldW x fieldH field into area.
func NewCellSurface(screen *core.Screen, area Area, fieldW, fieldH float64) *CellSurface {
	return &CellSurface{screen: screen, area: area, fieldW: fieldW, fieldH: fieldH}
}

// SetArea moves the surface after a resize.
func (c *CellSurface) SetArea(area Area) {
	c.area = area
}

func (c *CellSurface) col(x float64) int {
	return int(math.Floor(x * float64(c.area.W) / c.fieldW))
}

func (c *CellSurface) row(y float64) int {
	return int(math.Floor(y * float64(c.area.H) / c.fieldH))
}

// span converts a field interval to cells. Anything with positive size
// covers at least one cell.
func span(start, end int) int {
	if end <= start {
		return 1
	}
	return end - start
}

// Clear blanks the field area.
func (c *CellSurface) Clear() {
	c.screen.FillCells(c.area.X, c.area.Y, c.area.W, c.area.H, emptyRune, core.ColorDefault)
}

// FillRect fills the cells covered by the rectangle, clipped to the area.
func (c *CellSurface) FillRect(x, y, w, h float64, clr core.Color) {
	x0, y0 := c.col(x), c.row(y)
	x1 := int(math.Ceil((x + w) * float64(c.area.W) / c.fieldW))
	y1 := int(math.Ceil((y + h) * float64(c.area.H) / c.fieldH))
	c.fill(x0, y0, span(x0, x1), span(y0, y1), blockRune, clr)
}

// FillCircle marks the cell under the center. Terminal cells are too
// coarse for anything rounder.
func (c *CellSurface) FillCircle(cx, cy, _ float64, clr core.Color) {
	c.fill(c.col(cx), c.row(cy), 1, 1, ballRune, clr)
}

// FillText draws text centered on x.
func (c *CellSurface) FillText(x, y float64, text string, clr core.Color) {
	n := len([]rune(text))
	col := c.col(x) - n/2
	col = core.Clamp(col, 0, core.Max(0, c.area.W-n))
	row := core.Clamp(c.row(y), 0, c.area.H-1)
	c.screen.DrawText(c.area.X+col, c.area.Y+row, text, clr)
}

func (c *CellSurface) fill(x, y, w, h int, r rune, clr core.Color) {
	// Clip to the area
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > c.area.W {
		w = c.area.W - x
	}
	if y+h > c.area.H {
		h = c.area.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.screen.FillCells(c.area.X+x, c.area.Y+y, w, h, r, clr)
}
