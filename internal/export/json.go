package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/stats"
)

type jsonExport struct {
	ExportedAt    string    `json:"exported_at"`
	Count         int       `json:"count"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	Days          []jsonDay `json:"days"`
}

type jsonDay struct {
	Date         string `json:"date"`
	Pomodoros    int    `json:"pomodoros"`
	FocusSeconds int64  `json:"focus_seconds"`
	Focus        string `json:"focus"`
	Breaks       int    `json:"breaks"`
}

// ToJSON writes the daily history plus streaks to path.
func ToJSON(days []stats.DailyStats, currentStreak, longestStreak int, path string) error {
	export := jsonExport{
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Count:         len(days),
		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,
	}

	for _, d := range days {
		export.Days = append(export.Days, jsonDay{
			Date:         d.Date,
			Pomodoros:    d.PomodoroCount,
			FocusSeconds: d.TotalFocusSeconds,
			Focus:        formatDuration(d.TotalFocusSeconds),
			Breaks:       d.BreaksTaken,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
