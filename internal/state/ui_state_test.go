package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, Preferences{}, s.Load())
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewStore(dir)

	want := Preferences{CompactProgress: true, HideSummary: true}
	require.NoError(t, s.Save(want))

	assert.FileExists(t, filepath.Join(dir, FileName))
	assert.Equal(t, want, NewStore(dir).Load())

	// Only the preferences file is left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "invalid json {{{"},
		{name: "wrong types", content: `{"compact_progress": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0644))
			assert.Equal(t, Preferences{}, NewStore(dir).Load())
		})
	}
}

func TestStore_Update(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(Preferences{CompactProgress: true}))

	got, err := s.Update(func(p *Preferences) { p.HideSummary = true })
	require.NoError(t, err)

	want := Preferences{CompactProgress: true, HideSummary: true}
	assert.Equal(t, want, got)
	assert.Equal(t, want, s.Load())
}

func TestStore_SaveFailsOnFileAsDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := NewStore(blocker).Save(Preferences{})
	assert.ErrorContains(t, err, "data directory")
}
