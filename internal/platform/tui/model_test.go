package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scorekeeper"
)

func newTestModel(t *testing.T, mutate func(*config.BreakoutConfig)) Model {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	logger := log.New(io.Discard)
	keeper := scorekeeper.New(nil, logger)
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}
	return NewModel(cfg, runtime, keeper, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model) Model {
	return update(t, m, TickMsg(time.Now()))
}

func TestModelKeyHoldExpires(t *testing.T) {
	m := newTestModel(t, func(c *config.BreakoutConfig) { c.TUI.KeyHoldTicks = 3 })
	start := m.Session().Snapshot().PaddleX

	m = update(t, m, keyMsg("right"))
	if !m.Session().Intents().MoveRight {
		t.Fatal("Right key should set the right intent")
	}

	for range 5 {
		m = tick(t, m)
	}

	if m.Session().Intents().MoveRight {
		t.Error("Right intent should expire after the hold")
	}
	// Holds count down before the step, so the third tick already moves
	// with the intent released.
	if got := m.Session().Snapshot().PaddleX; got != start+10 {
		t.Errorf("Expected paddle at %g, got %g", start+10, got)
	}
}

func TestModelOppositeKeyCancels(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg("d"))

	in := m.Session().Intents()
	if in.MoveLeft || !in.MoveRight {
		t.Errorf("Opposite key should replace the held intent, got %+v", in)
	}
}

func TestModelRestartKey(t *testing.T) {
	m := newTestModel(t, nil)
	for range 10 {
		m = tick(t, m)
	}

	m = update(t, m, keyMsg("r"))
	m = tick(t, m)

	if tk := m.Session().Snapshot().Tick; tk != 1 {
		t.Errorf("Restart should reset the session, tick = %d", tk)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelMouseButtons(t *testing.T) {
	m := newTestModel(t, nil)
	// Screen is 29 rows (one for help); the bar is the last three.
	barY := 29 - barHeight + 1

	m = update(t, m, tea.MouseMsg{X: 2, Y: barY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Session().Intents().MoveLeft {
		t.Fatal("Pressing ◀ should hold left")
	}

	m = update(t, m, tea.MouseMsg{X: 2, Y: barY, Action: tea.MouseActionRelease})
	if m.Session().Intents().MoveLeft {
		t.Error("Releasing ◀ should release left")
	}
}

func TestModelHeldButtonSurvivesRestart(t *testing.T) {
	m := newTestModel(t, nil)
	barY := 29 - barHeight + 1
	start := m.Session().Snapshot().PaddleX

	m = update(t, m, tea.MouseMsg{X: 2, Y: barY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, keyMsg("r"))
	m = tick(t, m)
	m = tick(t, m)

	if !m.Session().Intents().MoveLeft {
		t.Fatal("A held ◀ should keep the left intent across a restart")
	}
	if got := m.Session().Snapshot().PaddleX; got >= start {
		t.Errorf("Paddle should keep moving left after the restart, got %g from %g", got, start)
	}
}

func TestModelHeldKeySurvivesLossRestart(t *testing.T) {
	// A paddle this narrow pinned to the left wall can never catch the ball.
	m := newTestModel(t, func(c *config.BreakoutConfig) {
		c.Paddle.Width = 5
		c.Rules.RestartDelay = 0
		c.TUI.KeyHoldTicks = 100000
	})

	m = update(t, m, keyMsg("left"))
	restarted := false
	for range 5000 {
		m = tick(t, m)
		if m.Session().Snapshot().Tick == 1 {
			restarted = true
			break
		}
	}
	if !restarted {
		t.Fatal("The ball should be lost and the session restarted")
	}
	if !m.Session().Intents().MoveLeft {
		t.Error("A key still on hold should keep the left intent across a restart")
	}
}

func TestModelMouseDrag(t *testing.T) {
	m := newTestModel(t, nil)

	// Field spans columns 1..78; press near the left edge.
	m = update(t, m, tea.MouseMsg{X: 1, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := m.Session().Snapshot().PaddleX; got != 0 {
		t.Errorf("Dragging to the left edge should clamp the paddle to 0, got %g", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(t, m)

	view := m.View()
	for _, want := range []string{"Score: 0", "High: 0", "Restart", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})

	if !strings.Contains(m.View(), "too small") {
		t.Error("Expected a too-small message")
	}

	before := m.Session().Snapshot().Tick
	m = tick(t, m)
	if m.Session().Snapshot().Tick != before {
		t.Error("Simulation should pause while the terminal is too small")
	}
}

func TestModelHighScoreWriteBack(t *testing.T) {
	logger := log.New(io.Discard)
	keeper := scorekeeper.New(nil, logger)
	cfg := config.DefaultBreakoutConfig()
	cfg.Rules.RestartDelay = 0
	m := NewModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}, keeper, logger)

	// Play until the first session ends; the paddle never moves.
	for range 5000 {
		m = tick(t, m)
		if keeper.HighScore() > 0 {
			break
		}
	}

	if keeper.HighScore() == 0 {
		t.Skip("No brick destroyed before the first loss")
	}
	if m.Session().State().HighScore != keeper.HighScore() {
		t.Errorf("Session high score %d should follow the keeper %d", m.Session().State().HighScore, keeper.HighScore())
	}
	if !strings.Contains(m.View(), "High: ") {
		t.Error("HUD should show the high score")
	}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %s, want %s", tt.key, got, tt.want)
		}
	}
}
