package storage

import (
	"fmt"
	"testing"
	"time"
)

func openTestGdata(t *testing.T) *GdataStore {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	store, err := OpenGdata(fmt.Sprintf("breakout_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return store
}

func TestGdataHighScoreMissingIsZero(t *testing.T) {
	store := openTestGdata(t)

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a fresh store, got %d", high)
	}
}

func TestGdataHighScoreRoundTrip(t *testing.T) {
	store := openTestGdata(t)

	if err := store.SaveHighScore(120); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected 120, got %d", high)
	}

	if err := store.RecordScore(10); err != nil {
		t.Errorf("RecordScore() should be a no-op, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"sqlite", KindSQLite, false},
		{" GDATA ", KindGdata, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
