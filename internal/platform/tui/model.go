package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/controls"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scorekeeper"
)

// Screen layout: HUD row, framed field, button bar, help below the screen.
const (
	barHeight = 3
	minWidth  = 24
	minHeight = 10
	chromeH   = 1 + 2 + barHeight // HUD + frame rows + bar
)

// hud receives score updates from the session.
type hud struct {
	score int
	high  int
}

func (h *hud) ShowScore(score int)    { h.score = score }
func (h *hud) ShowHighScore(high int) { h.high = high }

// Model is the Bubble Tea model for one Breakout session.
type Model struct {
	session *breakout.Session
	keeper  *scorekeeper.Keeper
	logger  *log.Logger
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	user    string

	screen  *core.Screen
	surface *CellSurface
	pointer *controls.Pointer
	hud     *hud
	keys    KeyMap
	help    help.Model

	// Terminals report key presses only. A press holds its intent for this
	// many ticks; auto-repeat keeps refreshing it.
	leftHold  int
	rightHold int

	tooSmall bool
	quitting bool
}

// NewModel creates a model running a fresh session. keeper must not be nil.
func NewModel(cfg config.BreakoutConfig, runtime core.RuntimeConfig, keeper *scorekeeper.Keeper, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	h := &hud{}
	screen := core.NewScreen(runtime.ScreenW, runtime.ScreenH)

	m := Model{
		session: breakout.New(cfg, keeper.HighScore(), h),
		keeper:  keeper,
		logger:  logger,
		cfg:     cfg,
		runtime: runtime,
		screen:  screen,
		surface: NewCellSurface(screen, Area{}, cfg.Field.Width, cfg.Field.Height),
		pointer: controls.NewPointer(controls.Bar{}, controls.Viewport{}),
		hud:     h,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.layout(runtime.ScreenW, runtime.ScreenH)

	return m
}

// withUser tags log lines with the SSH user name.
func (m Model) withUser(user string) Model {
	m.user = user
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout(msg.Width, msg.Height)
		m.redraw()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// layout places the HUD, field and button bar for a terminal of w x h.
func (m *Model) layout(w, h int) {
	helpH := 1
	if m.help.ShowAll {
		helpH = len(m.keys.FullHelp()[0])
	}
	screenH := h - helpH

	m.tooSmall = w < minWidth || screenH < minHeight
	m.screen.Resize(core.Max(w, 1), core.Max(screenH, 1))
	if m.tooSmall {
		return
	}

	field := Area{X: 1, Y: 2, W: w - 2, H: screenH - chromeH}
	m.surface.SetArea(field)

	bar := controls.NewBar(0, float64(screenH-barHeight), float64(w), barHeight)
	view := controls.Viewport{
		Screen: core.NewRect(float64(field.X), float64(field.Y), float64(field.W), float64(field.H)),
		FieldW: m.cfg.Field.Width,
		FieldH: m.cfg.Field.Height,
	}
	m.pointer.SetLayout(bar, view)
}

// redraw repaints the field after the layout changed, since Resize
// discards the screen.
func (m Model) redraw() {
	if !m.tooSmall {
		m.session.Render(m.surface)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.runtime.ScreenW, m.runtime.ScreenH)
		m.redraw()
		return m, nil
	}

	hold := m.cfg.TUI.KeyHoldTicks

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.leftHold, m.rightHold = hold, 0
		m.session.SetIntent(core.ActionLeft, true)
		m.session.SetIntent(core.ActionRight, false)
	case core.ActionRight:
		m.rightHold, m.leftHold = hold, 0
		m.session.SetIntent(core.ActionRight, true)
		m.session.SetIntent(core.ActionLeft, false)
	case core.ActionRestart:
		m.session.RequestRestart()
	}

	return m, nil
}

// handleMouse feeds mouse events to the on-screen controls.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, nil
	}

	// Aim at the middle of the cell.
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.Press(x, y, m.session)
		}
	case tea.MouseActionMotion:
		m.pointer.Move(x, y, m.session)
	case tea.MouseActionRelease:
		m.pointer.Release(m.session)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, tickCmd(m.runtime.TickRate)
	}

	m.expireHolds()

	result := m.session.Step(m.surface)
	m.logEvents(result.Events)
	if result.Has(core.EventRestarted) {
		m.reassertHolds()
	}

	// Finished sessions feed the shared high score; other SSH players
	// may have raised it too.
	high, _ := m.keeper.Observe(result.Events)
	if high != result.State.HighScore {
		m.session.SetHighScore(high)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// expireHolds releases key-held intents whose hold ran out. A direction
// held by the mouse stays held.
func (m *Model) expireHolds() {
	if m.leftHold > 0 {
		m.leftHold--
		if m.leftHold == 0 && m.pointer.Held() != core.ActionLeft {
			m.session.SetIntent(core.ActionLeft, false)
		}
	}
	if m.rightHold > 0 {
		m.rightHold--
		if m.rightHold == 0 && m.pointer.Held() != core.ActionRight {
			m.session.SetIntent(core.ActionRight, false)
		}
	}
}

// reassertHolds sets the intents of directions still held by a key or
// the mouse. A restart clears intents even while the player keeps holding.
func (m Model) reassertHolds() {
	held := m.pointer.Held()
	if m.leftHold > 0 || held == core.ActionLeft {
		m.session.SetIntent(core.ActionLeft, true)
	}
	if m.rightHold > 0 || held == core.ActionRight {
		m.session.SetIntent(core.ActionRight, true)
	}
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventBrickDestroyed:
			m.logger.Debug("brick destroyed", "row", e.Row, "col", e.Col, "score", e.Score, "user", m.user)
		case core.EventLost:
			m.logger.Info("session lost", "score", e.Score, "user", m.user)
		case core.EventRestarted:
			if e.Abandoned {
				m.logger.Info("session restarted", "score", e.Score, "user", m.user)
			}
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return centerText("Terminal too small", m.runtime.ScreenW)
	}

	m.drawChrome()

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawChrome draws everything around the field: HUD, frame and buttons.
// The field itself is drawn by the session.
func (m Model) drawChrome() {
	s := m.screen
	w := s.Width()
	area := m.surface.area

	s.FillCells(0, 0, w, 1, ' ', core.ColorDefault)
	s.DrawText(1, 0, fmt.Sprintf("Score: %d", m.hud.score), core.ColorWhite)
	high := fmt.Sprintf("High: %d", m.hud.high)
	s.DrawText(w-1-len(high), 0, high, core.ColorYellow)

	top, bottom := area.Y-1, area.Y+area.H
	s.DrawHLine(1, top, area.W, '─', core.ColorGray)
	s.DrawHLine(1, bottom, area.W, '─', core.ColorGray)
	for y := top; y <= bottom; y++ {
		s.SetCell(0, y, '│', core.ColorGray)
		s.SetCell(w-1, y, '│', core.ColorGray)
	}
	s.SetCell(0, top, '┌', core.ColorGray)
	s.SetCell(w-1, top, '┐', core.ColorGray)
	s.SetCell(0, bottom, '└', core.ColorGray)
	s.SetCell(w-1, bottom, '┘', core.ColorGray)

	for _, btn := range m.pointer.Bar().Buttons {
		m.drawButton(btn)
	}
}

func (m Model) drawButton(btn controls.Button) {
	x, y := int(btn.Rect.X), int(btn.Rect.Y)
	w, h := int(btn.Rect.Right())-x, int(btn.Rect.Bottom())-y

	clr := core.ColorGray
	if m.pointer.Held() == btn.Action {
		clr = core.ColorYellow
	}
	m.screen.FillCells(x, y, w, h, '░', clr)

	label := " " + btn.Label + " "
	n := len([]rune(label))
	m.screen.DrawText(x+(w-n)/2, y+h/2, label, core.ColorWhite)
}

// Session returns the running session.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.BreakoutConfig, runtime core.RuntimeConfig, keeper *scorekeeper.Keeper, logger *log.Logger) error {
	model := NewModel(cfg, runtime, keeper, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Buttons and paddle drag
	)

	_, err := p.Run()
	return err
}
