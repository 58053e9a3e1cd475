package tui

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCellSurfaceProjection(t *testing.T) {
	screen := core.NewScreen(50, 20)
	// 48x16 cells for a 480x320 field: 10 units per column, 20 per row.
	surf := NewCellSurface(screen, Area{X: 1, Y: 2, W: 48, H: 16}, 480, 320)

	surf.FillRect(30, 30, 75, 20, core.ColorBlue)

	// Columns 3..10, row 1 (y 30..50 covers rows 1 and 2).
	if got := screen.GetCell(1+3, 2+1); got.Rune != blockRune || got.Color != core.ColorBlue {
		t.Errorf("Expected brick cell at (4, 3), got %+v", got)
	}
	if got := screen.GetCell(1+10, 2+2); got.Rune != blockRune {
		t.Errorf("Expected brick cell at (11, 4), got %q", got.Rune)
	}
	if got := screen.GetCell(1+11, 2+1); got.Rune == blockRune {
		t.Error("Brick should end before column 12")
	}

	surf.FillCircle(240, 290, 8, core.ColorWhite)
	if got := screen.GetCell(1+24, 2+14); got.Rune != ballRune {
		t.Errorf("Expected ball at (25, 16), got %q", got.Rune)
	}
}

func TestCellSurfaceClipsAndClears(t *testing.T) {
	screen := core.NewScreen(20, 10)
	surf := NewCellSurface(screen, Area{X: 2, Y: 2, W: 10, H: 5}, 100, 50)

	surf.FillRect(90, 40, 50, 50, core.ColorWhite)

	if got := screen.Get(12, 6); got == blockRune {
		t.Error("Drawing must be clipped to the area")
	}
	if got := screen.Get(11, 6); got != blockRune {
		t.Errorf("Expected clipped corner at (11, 6), got %q", got)
	}

	screen.SetCell(0, 0, 'x', core.ColorDefault)
	surf.Clear()
	if screen.Get(11, 6) != ' ' {
		t.Error("Clear should blank the area")
	}
	if screen.Get(0, 0) != 'x' {
		t.Error("Clear must not touch cells outside the area")
	}
}

func TestCellSurfaceText(t *testing.T) {
	screen := core.NewScreen(40, 10)
	surf := NewCellSurface(screen, Area{X: 0, Y: 0, W: 40, H: 10}, 480, 320)

	surf.FillText(240, 160, breakout.LostMessage, breakout.LostColor)

	row := screen.Row(5)
	want := "                " + breakout.LostMessage
	if row[:len(want)] != want {
		t.Errorf("Expected centered loss text, got %q", row)
	}
	if screen.GetCell(16, 5).Color != core.ColorRed {
		t.Error("Loss text should be red")
	}
}

func TestSessionRendersOnCells(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	screen := core.NewScreen(48, 16)
	surf := NewCellSurface(screen, Area{W: 48, H: 16}, cfg.Field.Width, cfg.Field.Height)

	s := breakout.New(cfg, 0, nil)
	s.Render(surf)

	bricks := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == blockRune && c.Color == breakout.BrickColor {
				bricks++
			}
		}
	}
	if bricks == 0 {
		t.Error("Expected brick cells on screen")
	}
	// Paddle sits on the bottom row.
	if c := screen.GetCell(24, 15); c.Rune != blockRune || c.Color != breakout.PaddleColor {
		t.Errorf("Expected paddle at the bottom center, got %+v", c)
	}
}
