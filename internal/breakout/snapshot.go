package breakout

import "math"

// Snapshot contains the complete session state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Phase     int
	LostTicks int

	BallX, BallY   float64
	BallDX, BallDY float64
	PaddleX        float64

	MoveLeft  bool
	MoveRight bool

	// Brick states flattened column-major: col*rows + row. 1 = active.
	BrickData []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	rows, cols := s.layout.Rows, s.layout.Columns
	bricks := make([]int, rows*cols)
	for col := range cols {
		for row := range rows {
			if s.grid.Active(row, col) {
				bricks[col*rows+row] = 1
			}
		}
	}

	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		HighScore: s.highScore,
		Phase:     int(s.phase),
		LostTicks: s.lostTicks,

		BallX:   s.ball.X,
		BallY:   s.ball.Y,
		BallDX:  s.ball.DX,
		BallDY:  s.ball.DY,
		PaddleX: s.paddle.X,

		MoveLeft:  s.intents.MoveLeft,
		MoveRight: s.intents.MoveRight,

		BrickData: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LostTicks) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + boolBit(snap.MoveLeft)
	h = h*31 + boolBit(snap.MoveRight)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
