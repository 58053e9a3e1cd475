// Package storage persists the Breakout high score and the history of
// finished sessions.
package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HighScoreKey is the key under which every backend stores the high score.
const HighScoreKey = "highScore"

// Backend is the persistent store the score keeper talks to.
type Backend interface {
	// LoadHighScore returns the stored high score, or 0 when none was saved.
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	// RecordScore appends a finished session to the history, if the
	// backend keeps one.
	RecordScore(score int) error
	Close() error
}

// ScoreEntry represents a single finished session.
type ScoreEntry struct {
	ID        int64
	Score     int
	CreatedAt time.Time
}

// Stats contains aggregated statistics over the session history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Kind names a backend implementation.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindGdata  Kind = "gdata"
)

// ParseKind validates a backend name from the command line.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSQLite, KindGdata:
		return k, nil
	default:
		return "", fmt.Errorf("storage: unknown backend %q (want sqlite or gdata)", s)
	}
}

// decodeScore parses a string-encoded score. Garbage is reported rather
// than silently read as zero.
func decodeScore(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed %s value %q: %w", HighScoreKey, raw, err)
	}
	return v, nil
}

func encodeScore(score int) string {
	return strconv.Itoa(score)
}

// parseTimestamp handles both driver-decoded times and SQLite text columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// OpenBackend opens the backend named by kind. dbPath is used by the
// SQLite backend only.
func OpenBackend(kind Kind, dbPath string) (Backend, error) {
	switch kind {
	case KindSQLite:
		return Open(dbPath)
	case KindGdata:
		return OpenGdata("")
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}
