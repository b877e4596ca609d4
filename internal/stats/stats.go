// Package stats aggregates completed focus sessions into daily buckets,
// derives streaks, and persists the history as a single JSON file.
package stats

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/sadopc/pomo/internal/timer"
)

// DailyStats is the aggregate for one calendar day.
type DailyStats struct {
	Date              string `json:"date"`
	PomodoroCount     int    `json:"pomodoroCount"`
	TotalFocusSeconds int64  `json:"totalFocusSeconds"`
	BreaksTaken       int    `json:"breaksTaken"`
}

// Store holds the full statistics history. It is single-writer: every
// mutation is flushed to disk before returning, so a completed session
// survives an immediate process exit.
type Store struct {
	path string
	days map[string]DailyStats

	currentStreak int
	longestStreak int

	now func() time.Time
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for streak computation. Tests use
// this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for load warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open loads the store at path. A missing or corrupt file yields an empty
// store; persisted-state corruption is logged, never fatal.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		days: make(map[string]DailyStats),
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// RecordSession appends a completed focus session to its day bucket,
// refreshes the streaks, and persists. Not idempotent: the caller must
// invoke it exactly once per genuine completion.
func (s *Store) RecordSession(rec timer.SessionRecord) error {
	d := s.days[rec.Date]
	d.Date = rec.Date
	d.PomodoroCount++
	d.TotalFocusSeconds += int64(rec.DurationSeconds)
	s.days[rec.Date] = d

	s.refreshStreaks()
	return s.Save()
}

// RecordBreak counts a finished break against the given day and persists.
// Breaks do not affect streaks.
func (s *Store) RecordBreak(date string) error {
	d := s.days[date]
	d.Date = date
	d.BreaksTaken++
	s.days[date] = d
	return s.Save()
}

// Daily returns the bucket for the given date, zero-valued if absent.
func (s *Store) Daily(date string) DailyStats {
	if d, ok := s.days[date]; ok {
		return d
	}
	return DailyStats{Date: date}
}

// Weekly returns the 7 calendar days ending at end inclusive, oldest
// first, with zero-valued entries for days that have no sessions.
func (s *Store) Weekly(end time.Time) []DailyStats {
	week := make([]DailyStats, 0, 7)
	for i := 6; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		week = append(week, s.Daily(day.Format(timer.DateLayout)))
	}
	return week
}

// History returns every recorded day, oldest first.
func (s *Store) History() []DailyStats {
	days := make([]DailyStats, 0, len(s.days))
	for _, d := range s.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// CurrentStreak returns the number of consecutive calendar days with at
// least one completed session, ending today or yesterday. A so-far-empty
// "today" does not break a streak that ran through yesterday.
func (s *Store) CurrentStreak() int { return s.currentStreak }

// LongestStreak returns the longest streak ever observed. It never
// decreases.
func (s *Store) LongestStreak() int { return s.longestStreak }

func (s *Store) refreshStreaks() {
	s.currentStreak = s.computeCurrentStreak()
	if s.currentStreak > s.longestStreak {
		s.longestStreak = s.currentStreak
	}
}

func (s *Store) computeCurrentStreak() int {
	day := s.today()
	if s.pomodoros(day) == 0 {
		// Today is still in progress; anchor on yesterday instead.
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for s.pomodoros(day) > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestRun scans the whole history for the longest consecutive run of
// active days. Used on load so the persisted longest streak is at least
// what the history itself shows.
func (s *Store) longestRun() int {
	dates := make([]time.Time, 0, len(s.days))
	for key, d := range s.days {
		if d.PomodoroCount == 0 {
			continue
		}
		t, err := time.Parse(timer.DateLayout, key)
		if err != nil {
			continue
		}
		dates = append(dates, t)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 0, 0
	for i, d := range dates {
		if i > 0 && dates[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func (s *Store) pomodoros(day time.Time) int {
	return s.days[day.Format(timer.DateLayout)].PomodoroCount
}

func (s *Store) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
