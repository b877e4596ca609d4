package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/pomo/internal/timer"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// TimerConfig assembles the persisted timer config. Missing or garbled
// values fall back to the defaults; range enforcement stays with
// Config.Validate at start time.
func (s *Store) TimerConfig() timer.Config {
	cfg := timer.DefaultConfig()
	cfg.FocusMinutes = s.getInt("focus_minutes", cfg.FocusMinutes)
	cfg.ShortBreakMinutes = s.getInt("short_break_minutes", cfg.ShortBreakMinutes)
	cfg.LongBreakMinutes = s.getInt("long_break_minutes", cfg.LongBreakMinutes)
	cfg.CyclesBeforeLongBreak = s.getInt("cycles_before_long_break", cfg.CyclesBeforeLongBreak)
	return cfg
}

// SaveTimerConfig validates and persists the timer config. Out-of-range
// values are rejected, never clamped.
func (s *Store) SaveTimerConfig(cfg timer.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	values := map[string]int{
		"focus_minutes":            cfg.FocusMinutes,
		"short_break_minutes":      cfg.ShortBreakMinutes,
		"long_break_minutes":       cfg.LongBreakMinutes,
		"cycles_before_long_break": cfg.CyclesBeforeLongBreak,
	}
	for key, v := range values {
		if err := s.SetSetting(key, strconv.Itoa(v)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) getInt(key string, fallback int) int {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
