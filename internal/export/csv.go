package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/stats"
)

// ToCSV writes the daily history to path, one row per recorded day.
func ToCSV(days []stats.DailyStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Pomodoros", "Focus (s)", "Focus", "Breaks"}); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			d.Date,
			fmt.Sprintf("%d", d.PomodoroCount),
			fmt.Sprintf("%d", d.TotalFocusSeconds),
			formatDuration(d.TotalFocusSeconds),
			fmt.Sprintf("%d", d.BreaksTaken),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
