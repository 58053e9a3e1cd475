package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Session owns every piece of game state for one playthrough: ball,
// paddle, bricks, score and input intents. A Session is driven by a single
// goroutine; it performs no locking.
type Session struct {
	cfg    config.BreakoutConfig
	layout Layout
	sink   ScoreSink

	ball    Ball
	paddle  Paddle
	grid    *Grid
	intents core.Intents

	score     int
	highScore int
	phase     core.Phase
	lostTicks int    // Steps left before the lost session restarts
	tick      uint64 // Steps taken in the current session

	restartRequested bool
	events           []core.Event
}

// New creates a session from cfg. highScore is the persisted value read at
// startup; sink may be nil.
func New(cfg config.BreakoutConfig, highScore int, sink ScoreSink) *Session {
	if sink == nil {
		sink = nopSink{}
	}
	s := &Session{
		cfg:       cfg,
		layout:    LayoutFrom(cfg.Bricks),
		sink:      sink,
		highScore: highScore,
	}
	s.reset()
	s.sink.ShowHighScore(highScore)
	return s
}

// reset rebuilds the session from the config constants. The high score is
// the only value that survives.
func (s *Session) reset() {
	field := s.cfg.Field
	s.ball = Ball{
		X:      field.Width / 2,
		Y:      field.Height - s.cfg.Ball.StartOffsetY,
		DX:     s.cfg.Ball.DX,
		DY:     s.cfg.Ball.DY,
		Radius: s.cfg.Ball.Radius,
	}
	s.paddle = Paddle{
		X:      (field.Width - s.cfg.Paddle.Width) / 2,
		Width:  s.cfg.Paddle.Width,
		Height: s.cfg.Paddle.Height,
	}
	s.grid = NewGrid(s.layout)
	s.intents.Clear()
	s.score = 0
	s.phase = core.PhaseRunning
	s.lostTicks = 0
	s.tick = 0
	s.restartRequested = false
	s.sink.ShowScore(0)
}

// Restart ends the current session and begins a new one immediately.
func (s *Session) Restart() {
	ended := s.score
	abandoned := s.phase == core.PhaseRunning
	s.reset()
	s.emit(core.Event{Kind: core.EventRestarted, Score: ended, Abandoned: abandoned})
}

// RequestRestart asks for a restart at the start of the next step.
// Repeated requests before that step collapse into one.
func (s *Session) RequestRestart() {
	s.restartRequested = true
}

// SetIntent updates a directional intent. Non-directional actions are ignored.
func (s *Session) SetIntent(a core.Action, held bool) {
	s.intents.Set(a, held)
}

// Intents returns the current intent flags.
func (s *Session) Intents() core.Intents {
	return s.intents
}

// DragTo centers the paddle on x, clamped to the field. This bypasses the
// intent flags.
func (s *Session) DragTo(x float64) {
	s.paddle.X = x - s.paddle.Width/2
	s.paddle.Clamp(s.cfg.Field.Width)
}

// SetHighScore replaces the known high score and updates the display.
func (s *Session) SetHighScore(high int) {
	s.highScore = high
	s.sink.ShowHighScore(high)
}

// Config returns the configuration the session was built from.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score
}

// Phase returns the current state machine phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Step advances the simulation by one tick and draws the frame into dst.
// dst may be nil for headless stepping.
func (s *Session) Step(dst Surface) core.StepResult {
	if s.restartRequested {
		s.Restart()
	}

	s.tick++

	if s.phase == core.PhaseLost {
		s.Render(dst)
		s.lostTicks--
		if s.lostTicks <= 0 {
			s.Restart()
		}
		return s.result()
	}

	s.Render(dst)

	s.collideBricks()
	if s.collidePaddle() {
		s.lose()
		if s.phase == core.PhaseLost && dst != nil {
			s.renderLost(dst)
		}
		return s.result()
	}

	field := s.cfg.Field
	b := &s.ball

	// Side walls
	if b.X+b.DX > field.Width-b.Radius || b.X+b.DX < b.Radius {
		b.BounceX()
	}

	// Ceiling
	if b.Y+b.DY < b.Radius {
		b.BounceY()
	}

	b.Move()

	s.movePaddle()

	return s.result()
}

// collideBricks scans bricks column by column and reflects the ball off
// the ones it overlaps. The collision policy decides whether the scan stops
// at the first hit.
func (s *Session) collideBricks() {
	box := s.ball.Bounds()
	rules := s.cfg.Rules

	for col := 0; col < s.layout.Columns; col++ {
		for row := 0; row < s.layout.Rows; row++ {
			if !s.grid.Active(row, col) {
				continue
			}
			if !box.Intersects(s.layout.BrickRect(row, col)) {
				continue
			}

			s.ball.BounceY()
			s.grid.Destroy(row, col)
			s.score += rules.PointsPerBrick
			s.sink.ShowScore(s.score)
			s.ball.Escalate(rules.SpeedStep, rules.MaxSpeed)
			s.emit(core.Event{Kind: core.EventBrickDestroyed, Score: s.score, Row: row, Col: col})

			if rules.CollisionPolicy != config.PolicyAll {
				return
			}
		}
	}
}

// collidePaddle handles the ball reaching the paddle plane. It returns true
// when the ball missed the paddle.
func (s *Session) collidePaddle() bool {
	b := &s.ball
	p := &s.paddle

	if b.Y+b.DY <= s.cfg.Field.Height-p.Height-b.Radius {
		return false
	}

	if !p.Spans(b.X) {
		return true
	}

	b.BounceY()
	b.DX = p.ImpactOffset(b.X) * s.cfg.Rules.PaddleMaxDX
	return false
}

// movePaddle applies the held intents. Right wins when both are held.
func (s *Session) movePaddle() {
	p := &s.paddle
	fieldW := s.cfg.Field.Width
	step := s.cfg.Paddle.Step

	if s.intents.MoveRight && p.X < fieldW-p.Width {
		p.X += step
	} else if s.intents.MoveLeft && p.X > 0 {
		p.X -= step
	}
	p.Clamp(fieldW)
}

// lose ends the running session. With no restart delay the next session
// starts right away.
func (s *Session) lose() {
	s.phase = core.PhaseLost
	s.lostTicks = s.cfg.Rules.RestartDelay
	s.emit(core.Event{Kind: core.EventLost, Score: s.score})

	if s.lostTicks <= 0 {
		s.Restart()
	}
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// result packages the state and drains the events raised since the last step.
func (s *Session) result() core.StepResult {
	r := core.StepResult{State: s.State(), Events: s.events}
	s.events = nil
	return r
}

// Render draws the current state: bricks, ball, paddle and, when lost,
// the loss message.
func (s *Session) Render(dst Surface) {
	if dst == nil {
		return
	}

	dst.Clear()

	for col := 0; col < s.layout.Columns; col++ {
		for row := 0; row < s.layout.Rows; row++ {
			if !s.grid.Active(row, col) {
				continue
			}
			r := s.layout.BrickRect(row, col)
			dst.FillRect(r.X, r.Y, r.W, r.H, BrickColor)
		}
	}

	dst.FillCircle(s.ball.X, s.ball.Y, s.ball.Radius, BallColor)

	pr := s.paddle.Rect(s.cfg.Field.Height)
	dst.FillRect(pr.X, pr.Y, pr.W, pr.H, PaddleColor)

	if s.phase == core.PhaseLost {
		s.renderLost(dst)
	}
}

func (s *Session) renderLost(dst Surface) {
	dst.FillText(s.cfg.Field.Width/2, s.cfg.Field.Height/2, LostMessage, LostColor)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Phase:     s.phase,
	}
}
