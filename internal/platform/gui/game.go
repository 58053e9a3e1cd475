// Package gui runs the Breakout session in a desktop window through ebiten.
package gui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/controls"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scorekeeper"
)

// Window layout in logical pixels: HUD strip, field, button bar.
const (
	hudHeight = 20
	barHeight = 60
)

// hud receives score updates from the session.
type hud struct {
	score int
	high  int
}

func (h *hud) ShowScore(score int)    { h.score = score }
func (h *hud) ShowHighScore(high int) { h.high = high }

// Game implements ebiten.Game around one session.
type Game struct {
	session *breakout.Session
	keeper  *scorekeeper.Keeper
	logger  *log.Logger
	cfg     config.BreakoutConfig

	surface  *ImageSurface
	bar      controls.Bar
	view     controls.Viewport
	pointers map[int]*controls.Pointer
	hud      *hud

	width, height int
}

// NewGame creates a window game. keeper must not be nil.
func NewGame(cfg config.BreakoutConfig, keeper *scorekeeper.Keeper, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}

	h := &hud{}
	fw, fh := cfg.Field.Width, cfg.Field.Height

	g := &Game{
		session:  breakout.New(cfg, keeper.HighScore(), h),
		keeper:   keeper,
		logger:   logger,
		cfg:      cfg,
		surface:  NewImageSurface(0, hudHeight, fw, fh),
		bar:      controls.NewBar(0, hudHeight+fh, fw, barHeight),
		pointers: make(map[int]*controls.Pointer),
		hud:      h,
		width:    int(fw),
		height:   hudHeight + int(fh) + barHeight,
	}
	g.view = controls.Viewport{
		Screen: core.NewRect(0, hudHeight, fw, fh),
		FieldW: fw,
		FieldH: fh,
	}

	return g
}

// Update reads the devices and advances the session by one step.
func (g *Game) Update() error {
	return g.apply(readInput())
}

// apply runs one frame with the given input.
func (g *Game) apply(in frameInput) error {
	if in.quit {
		return ebiten.Termination
	}

	for _, ev := range in.pointers {
		g.handlePointer(ev)
	}

	// Keys and held buttons both drive the intents.
	g.session.SetIntent(core.ActionLeft, in.left || g.pointerHolds(core.ActionLeft))
	g.session.SetIntent(core.ActionRight, in.right || g.pointerHolds(core.ActionRight))

	if in.restart {
		g.session.RequestRestart()
	}

	result := g.session.Step(nil)
	for _, e := range result.Events {
		if e.Kind == core.EventLost {
			g.logger.Info("session lost", "score", e.Score)
		}
	}

	high, _ := g.keeper.Observe(result.Events)
	if high != result.State.HighScore {
		g.session.SetHighScore(high)
	}

	return nil
}

func (g *Game) handlePointer(ev pointerEvent) {
	p, ok := g.pointers[ev.id]
	if !ok {
		p = controls.NewPointer(g.bar, g.view)
		g.pointers[ev.id] = p
	}

	switch ev.kind {
	case pointerPress:
		p.Press(ev.x, ev.y, g.session)
	case pointerMove:
		p.Move(ev.x, ev.y, g.session)
	case pointerRelease:
		p.Release(g.session)
		if ev.id != mousePointer {
			delete(g.pointers, ev.id)
		}
	}
}

func (g *Game) pointerHolds(a core.Action) bool {
	for _, p := range g.pointers {
		if p.Held() == a {
			return true
		}
	}
	return false
}

// Draw renders the HUD, field and buttons.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.session.Render(g.surface)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.hud.score), 4, 2)
	high := fmt.Sprintf("High: %d", g.hud.high)
	ebitenutil.DebugPrintAt(screen, high, g.width-4-len(high)*glyphW, 2)

	for _, btn := range g.bar.Buttons {
		g.drawButton(screen, btn)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, btn controls.Button) {
	r := btn.Rect
	fill := palette[core.ColorGray]
	if g.pointerHolds(btn.Action) {
		fill = palette[core.ColorYellow]
	}
	vector.DrawFilledRect(screen, float32(r.X)+2, float32(r.Y)+2, float32(r.W)-4, float32(r.H)-4, fill, false)
	vector.StrokeRect(screen, float32(r.X)+2, float32(r.Y)+2, float32(r.W)-4, float32(r.H)-4, 1, palette[core.ColorWhite], false)

	label := btn.Label
	switch btn.Action {
	case core.ActionLeft:
		label = "<"
	case core.ActionRight:
		label = ">"
	}
	cx, cy := r.Center()
	ebitenutil.DebugPrintAt(screen, label, int(cx)-len(label)*glyphW/2, int(cy)-glyphH/2)
}

// Layout returns the fixed logical screen size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Session returns the running session.
func (g *Game) Session() *breakout.Session {
	return g.session
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.BreakoutConfig, keeper *scorekeeper.Keeper, logger *log.Logger, tickRate int, scale int) error {
	g := NewGame(cfg, keeper, logger)

	if scale < 1 {
		scale = 1
	}
	if tickRate > 0 {
		ebiten.SetTPS(tickRate)
	}
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
