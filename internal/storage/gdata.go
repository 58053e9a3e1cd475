package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataAppName = "breakout"
	gdataObject  = "breakout"
)

// GdataStore keeps the high score in the platform's application data
// directory through gdata. It has no session history.
type GdataStore struct {
	m *gdata.Manager
}

var _ Backend = (*GdataStore)(nil)

// OpenGdata opens the gdata storage for appName. An empty name uses the
// default application name.
func OpenGdata(appName string) (*GdataStore, error) {
	if appName == "" {
		appName = gdataAppName
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// LoadHighScore reads the high score property. A missing property is 0.
func (g *GdataStore) LoadHighScore() (int, error) {
	if !g.m.ObjectPropExists(gdataObject, HighScoreKey) {
		return 0, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, HighScoreKey)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	return decodeScore(string(data))
}

// SaveHighScore overwrites the high score property.
func (g *GdataStore) SaveHighScore(score int) error {
	if err := g.m.SaveObjectProp(gdataObject, HighScoreKey, []byte(encodeScore(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecordScore is a no-op: gdata holds only the high score entry.
func (g *GdataStore) RecordScore(int) error {
	return nil
}

// Close releases nothing; gdata writes are synchronous.
func (g *GdataStore) Close() error {
	return nil
}
