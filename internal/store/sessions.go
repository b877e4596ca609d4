package store

import (
	"fmt"
	"time"
)

// LogSession appends a completed phase to the ledger.
func (s *Store) LogSession(phase, date string, durationSecs int, completedAt time.Time) (*Session, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (phase, date, duration, completed_at) VALUES (?, ?, ?, ?)`,
		phase, date, durationSecs, completedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("log session: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetSession(id)
}

// GetSession returns one ledger row by id.
func (s *Store) GetSession(id int64) (*Session, error) {
	sess := &Session{}
	var completedAt string

	err := s.db.QueryRow(
		`SELECT id, phase, date, duration, completed_at FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.Phase, &sess.Date, &sess.Duration, &completedAt)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	sess.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	return sess, nil
}

// ListSessions returns ledger rows, most recent first.
func (s *Store) ListSessions(f SessionFilter) ([]Session, error) {
	query := `SELECT id, phase, date, duration, completed_at FROM sessions WHERE 1=1`
	var args []any

	if f.Phase != "" {
		query += ` AND phase = ?`
		args = append(args, f.Phase)
	}
	if f.Date != "" {
		query += ` AND date = ?`
		args = append(args, f.Date)
	}
	query += ` ORDER BY completed_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var completedAt string
		if err := rows.Scan(&sess.ID, &sess.Phase, &sess.Date, &sess.Duration, &completedAt); err != nil {
			return nil, err
		}
		sess.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// CountFocusByDate returns the number of focus completions logged for a
// calendar date. Used as a cross-check against the aggregate store.
func (s *Store) CountFocusByDate(date string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sessions WHERE phase = 'focus' AND date = ?`, date,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count focus sessions: %w", err)
	}
	return n, nil
}
