package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/pomo/internal/timer"
)

// today is the pinned clock for streak tests.
var today = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.json")
	return Open(path, WithClock(fixedClock))
}

func record(t *testing.T, s *Store, date string) {
	t.Helper()
	require.NoError(t, s.RecordSession(timer.SessionRecord{
		Date:            date,
		DurationSeconds: 25 * 60,
		CompletedAt:     today,
	}))
}

func dateOffset(days int) string {
	return today.AddDate(0, 0, days).Format(timer.DateLayout)
}

func TestRecordSession(t *testing.T) {
	s := newTestStore(t)
	record(t, s, "2024-01-01")

	d := s.Daily("2024-01-01")
	assert.Equal(t, 1, d.PomodoroCount)
	assert.Equal(t, int64(25*60), d.TotalFocusSeconds)
	assert.Equal(t, 0, d.BreaksTaken)
}

func TestRecordSessionNotIdempotent(t *testing.T) {
	s := newTestStore(t)
	record(t, s, "2024-01-01")
	record(t, s, "2024-01-01")

	d := s.Daily("2024-01-01")
	assert.Equal(t, 2, d.PomodoroCount)
	assert.Equal(t, int64(2*25*60), d.TotalFocusSeconds)
}

func TestRecordBreak(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.RecordBreak("2024-01-01"))
	require.NoError(t, s.RecordBreak("2024-01-01"))

	d := s.Daily("2024-01-01")
	assert.Equal(t, 2, d.BreaksTaken)
	assert.Equal(t, 0, d.PomodoroCount)
	// Breaks alone never start a streak.
	assert.Equal(t, 0, s.CurrentStreak())
}

func TestDailyZeroValued(t *testing.T) {
	s := newTestStore(t)
	d := s.Daily("1999-12-31")
	assert.Equal(t, DailyStats{Date: "1999-12-31"}, d)
}

func TestWeeklyEmptyStore(t *testing.T) {
	s := newTestStore(t)
	week := s.Weekly(today)

	require.Len(t, week, 7)
	assert.Equal(t, dateOffset(-6), week[0].Date)
	assert.Equal(t, dateOffset(0), week[6].Date)
	for _, d := range week {
		assert.Zero(t, d.PomodoroCount)
		assert.Zero(t, d.TotalFocusSeconds)
	}
}

func TestWeeklyOrderingAndGaps(t *testing.T) {
	s := newTestStore(t)
	record(t, s, dateOffset(0))
	record(t, s, dateOffset(-3))
	record(t, s, dateOffset(-3))

	week := s.Weekly(today)
	require.Len(t, week, 7)
	assert.Equal(t, 2, week[3].PomodoroCount)
	assert.Equal(t, 0, week[5].PomodoroCount)
	assert.Equal(t, 1, week[6].PomodoroCount)
}

func TestStreakFiveConsecutiveDays(t *testing.T) {
	s := newTestStore(t)
	for i := 4; i >= 0; i-- {
		record(t, s, dateOffset(-i))
	}
	assert.Equal(t, 5, s.CurrentStreak())
	assert.Equal(t, 5, s.LongestStreak())
}

func TestStreakGapResets(t *testing.T) {
	s := newTestStore(t)
	// A 3-day run, a skipped day, then today and yesterday.
	record(t, s, dateOffset(-6))
	record(t, s, dateOffset(-5))
	record(t, s, dateOffset(-4))
	record(t, s, dateOffset(-1))
	record(t, s, dateOffset(0))

	assert.Equal(t, 2, s.CurrentStreak())
	assert.Equal(t, 3, s.LongestStreak())
}

func TestStreakTodayEmptyKeepsYesterdayRun(t *testing.T) {
	s := newTestStore(t)
	record(t, s, dateOffset(-2))
	record(t, s, dateOffset(-1))

	// Today has no completions yet; the streak holds through yesterday.
	assert.Equal(t, 2, s.CurrentStreak())
}

func TestStreakZeroWhenTodayAndYesterdayEmpty(t *testing.T) {
	s := newTestStore(t)
	record(t, s, dateOffset(-3))
	record(t, s, dateOffset(-2))

	assert.Equal(t, 0, s.CurrentStreak())
	// The old run still counts toward the longest streak.
	assert.Equal(t, 2, s.LongestStreak())
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	s := newTestStore(t)
	record(t, s, dateOffset(-9))
	record(t, s, dateOffset(-8))
	record(t, s, dateOffset(-7))
	require.Equal(t, 3, s.LongestStreak())

	record(t, s, dateOffset(0))
	assert.Equal(t, 1, s.CurrentStreak())
	assert.Equal(t, 3, s.LongestStreak())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	s := Open(path, WithClock(fixedClock))
	record(t, s, dateOffset(-1))
	record(t, s, dateOffset(0))
	record(t, s, dateOffset(0))
	require.NoError(t, s.RecordBreak(dateOffset(0)))

	fresh := Open(path, WithClock(fixedClock))
	assert.Equal(t, s.Daily(dateOffset(0)), fresh.Daily(dateOffset(0)))
	assert.Equal(t, s.Daily(dateOffset(-1)), fresh.Daily(dateOffset(-1)))
	assert.Equal(t, s.CurrentStreak(), fresh.CurrentStreak())
	assert.Equal(t, s.LongestStreak(), fresh.LongestStreak())
	assert.Equal(t, s.History(), fresh.History())
}

func TestLoadMissingFile(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "nope", "stats.json"), WithClock(fixedClock))
	assert.Equal(t, 0, s.CurrentStreak())
	assert.Empty(t, s.History())
}

func TestLoadCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, WithClock(fixedClock))
	assert.Empty(t, s.History())

	// The store recovers: new sessions record and persist normally.
	record(t, s, dateOffset(0))
	fresh := Open(path, WithClock(fixedClock))
	assert.Equal(t, 1, fresh.Daily(dateOffset(0)).PomodoroCount)
}

func TestLoadRecomputesLongestFromHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	// A file whose persisted longestStreak undercounts its own history.
	f := statsFile{
		Days: map[string]DailyStats{
			dateOffset(-5): {Date: dateOffset(-5), PomodoroCount: 1},
			dateOffset(-4): {Date: dateOffset(-4), PomodoroCount: 2},
			dateOffset(-3): {Date: dateOffset(-3), PomodoroCount: 1},
		},
		LongestStreak: 1,
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s := Open(path, WithClock(fixedClock))
	assert.Equal(t, 3, s.LongestStreak())
	assert.Equal(t, 0, s.CurrentStreak())
}

func TestSaveIsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	s := Open(path, WithClock(fixedClock))
	record(t, s, dateOffset(0))

	// No temp file left behind after a successful save.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	// The file on disk parses and carries the streaks.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var f statsFile
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, 1, f.CurrentStreak)
	assert.Equal(t, 1, f.LongestStreak)
}

func TestHistorySortedOldestFirst(t *testing.T) {
	s := newTestStore(t)
	record(t, s, "2024-01-05")
	record(t, s, "2024-01-01")
	record(t, s, "2024-01-03")

	h := s.History()
	require.Len(t, h, 3)
	assert.Equal(t, "2024-01-01", h[0].Date)
	assert.Equal(t, "2024-01-03", h[1].Date)
	assert.Equal(t, "2024-01-05", h[2].Date)
}
