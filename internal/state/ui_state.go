// Package state keeps wizard display preferences between runs. Answers are
// never stored here; a form only leaves the process when it is submitted.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mark3labs/voiceintake/internal/logger"
)

// FileName is the preferences file inside the data directory.
const FileName = "ui-state.json"

// Preferences are the display choices a user toggles in the wizard.
type Preferences struct {
	// CompactProgress draws the progress indicator as a bar instead of
	// numbered step markers.
	CompactProgress bool `json:"compact_progress"`

	// HideSummary collapses the answer summary on the review screen,
	// leaving only the notes field.
	HideSummary bool `json:"hide_summary"`
}

// Store reads and writes Preferences under a data directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dataDir. Nothing touches the disk
// until Load or Save is called.
func NewStore(dataDir string) *Store {
	return &Store{dir: dataDir}
}

// Path returns the preferences file location.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load returns the saved preferences. A missing or unreadable file yields
// the zero value, which is the default look.
func (s *Store) Load() Preferences {
	var p Preferences
	data, err := os.ReadFile(s.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return p
	case err != nil:
		logger.Warn("Failed to read preferences: %v", err)
		return p
	}
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Warn("Ignoring malformed preferences in %s: %v", s.Path(), err)
		return Preferences{}
	}
	return p
}

// Save writes p, replacing the previous file in one rename so a crash
// never leaves half a file behind.
func (s *Store) Save(p Preferences) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	logger.Debug("Preferences saved to %s", s.Path())
	return nil
}

// Update loads the preferences, applies fn and saves the result.
func (s *Store) Update(fn func(*Preferences)) (Preferences, error) {
	p := s.Load()
	fn(&p)
	return p, s.Save(p)
}
