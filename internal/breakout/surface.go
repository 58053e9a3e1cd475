package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Surface is the drawing capability a front-end provides. Coordinates are
// field units; implementations scale them to cells or pixels.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	// FillText draws text horizontally centered on x.
	FillText(x, y float64, text string, c core.Color)
}

// ScoreSink receives the score and high score whenever they change.
type ScoreSink interface {
	ShowScore(score int)
	ShowHighScore(high int)
}

// Palette used by the renderer.
const (
	BallColor   = core.ColorWhite
	PaddleColor = core.ColorWhite
	BrickColor  = core.ColorBlue
	LostColor   = core.ColorRed
)

// LostMessage is shown while the session is in the lost phase.
const LostMessage = "You lost"

type nopSink struct{}

func (nopSink) ShowScore(int)     {}
func (nopSink) ShowHighScore(int) {}
