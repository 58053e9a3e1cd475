package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a fresh store, got %d", high)
	}
}

func TestStoreHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveHighScore(40); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := store.SaveHighScore(150); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 150 {
		t.Errorf("Expected 150, got %d", high)
	}

	// Stored as a string-encoded integer
	var raw string
	if err := store.db.QueryRow("SELECT value FROM kv WHERE key = ?", HighScoreKey).Scan(&raw); err != nil {
		t.Fatalf("raw query failed: %v", err)
	}
	if raw != "150" {
		t.Errorf("Expected raw value \"150\", got %q", raw)
	}
}

func TestStoreHighScoreMalformed(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", HighScoreKey, "lots"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if _, err := store.LoadHighScore(); err == nil {
		t.Error("Expected an error for a malformed high score")
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("Expected 90 after reopen, got %d", high)
	}
}

func TestStoreRecordAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if err := store.RecordScore(score); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if err := store.RecordScore(i * 10); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest score 190, got %d", scores[0].Score)
	}

	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Non-positive limit should default to 10, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{30, 60, 90} {
		if err := store.RecordScore(score); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 90 {
		t.Errorf("Expected high 90, got %d", stats.HighScore)
	}
	if stats.AvgScore != 60 {
		t.Errorf("Expected average 60, got %g", stats.AvgScore)
	}
	if stats.TotalScore != 180 {
		t.Errorf("Expected total 180, got %d", stats.TotalScore)
	}
}

func TestStoreClearScoresKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordScore(70); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if err := store.SaveHighScore(70); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
	high, _ := store.LoadHighScore()
	if high != 70 {
		t.Errorf("High score should survive clearing history, got %d", high)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.breakout/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".breakout", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}
