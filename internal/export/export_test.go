package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/pomo/internal/stats"
)

func sampleDays() []stats.DailyStats {
	return []stats.DailyStats{
		{Date: "2024-01-01", PomodoroCount: 4, TotalFocusSeconds: 6000, BreaksTaken: 3},
		{Date: "2024-01-02", PomodoroCount: 2, TotalFocusSeconds: 3000, BreaksTaken: 2},
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleDays(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2024-01-01" || rows[1][1] != "4" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[1][3] != "01:40:00" {
		t.Fatalf("unexpected formatted duration: %v", rows[1][3])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		t.Fatal("expected header row even with no days")
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ToJSON(sampleDays(), 2, 5, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out jsonExport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Days) != 2 {
		t.Fatalf("unexpected export: %+v", out)
	}
	if out.CurrentStreak != 2 || out.LongestStreak != 5 {
		t.Fatalf("streaks not exported: %+v", out)
	}
	if out.Days[0].Date != "2024-01-01" || out.Days[0].Pomodoros != 4 {
		t.Fatalf("unexpected first day: %+v", out.Days[0])
	}
}
