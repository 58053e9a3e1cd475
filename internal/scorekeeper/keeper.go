// Package scorekeeper applies the high-score policy on top of a storage
// backend: read once at startup, record every finished session, write back
// when beaten.
package scorekeeper

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Keeper is safe for concurrent use; SSH sessions share one.
type Keeper struct {
	mu      sync.Mutex
	backend storage.Backend // nil = in-memory only
	high    int
	logger  *log.Logger
}

// New loads the high score from backend. Storage errors are logged and
// the keeper starts from 0. backend may be nil.
func New(backend storage.Backend, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &Keeper{backend: backend, logger: logger}

	if backend != nil {
		high, err := backend.LoadHighScore()
		if err != nil {
			logger.Warn("cannot load high score, starting from 0", "err", err)
		} else {
			k.high = high
		}
	}

	return k
}

// HighScore returns the best score known to the keeper.
func (k *Keeper) HighScore() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.high
}

// Finish records a finished session. It returns the resulting high score
// and whether this session set it.
func (k *Keeper) Finish(score int) (int, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.backend != nil {
		if err := k.backend.RecordScore(score); err != nil {
			k.logger.Warn("cannot record score", "score", score, "err", err)
		}
	}

	if score <= k.high {
		return k.high, false
	}

	k.high = score
	if k.backend != nil {
		if err := k.backend.SaveHighScore(score); err != nil {
			k.logger.Warn("cannot save high score", "high", score, "err", err)
		}
	}
	k.logger.Info("new high score", "high", score)

	return k.high, true
}

// Observe finishes every session that ended in events. It reports the
// current high score and whether it changed.
func (k *Keeper) Observe(events []core.Event) (int, bool) {
	improved := false
	for _, e := range events {
		if !e.EndsSession() {
			continue
		}
		if _, ok := k.Finish(e.Score); ok {
			improved = true
		}
	}
	return k.HighScore(), improved
}
