package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// statsFile is the on-disk layout. It must round-trip exactly through
// Save and load.
type statsFile struct {
	Days          map[string]DailyStats `json:"days"`
	CurrentStreak int                   `json:"currentStreak"`
	LongestStreak int                   `json:"longestStreak"`
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.refreshStreaks()
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("stats file unreadable, starting fresh")
		s.refreshStreaks()
		return
	}

	var f statsFile
	if err := json.Unmarshal(data, &f); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("stats file corrupt, starting fresh")
		s.refreshStreaks()
		return
	}

	if f.Days != nil {
		s.days = f.Days
	}
	s.longestStreak = f.LongestStreak

	// The current streak depends on today's date, so recompute rather
	// than trust the persisted value. The longest streak may only grow;
	// take whichever of the persisted value and the history is larger.
	if run := s.longestRun(); run > s.longestStreak {
		s.longestStreak = run
	}
	s.refreshStreaks()
}

// Save flushes the full store to disk. The file is written to a temp path
// in the same directory and renamed into place so a crash mid-write never
// leaves a truncated store behind.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	data, err := json.MarshalIndent(statsFile{
		Days:          s.days,
		CurrentStreak: s.currentStreak,
		LongestStreak: s.longestStreak,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write stats temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}
