package store

import "time"

// Session is one completed phase appended to the ledger. Focus sessions
// and breaks both get a row; statistics only count the focus ones.
type Session struct {
	ID          int64
	Phase       string // focus, short_break, long_break
	Date        string // calendar date the phase completed on
	Duration    int    // seconds
	CompletedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// SessionFilter is used to filter ledger rows in queries.
type SessionFilter struct {
	Phase string
	Date  string
	Limit int
}
