// Package db provides SQLite-backed persistence for the drill: a small
// key-value table holding the mistake ledger blob and a history of
// finished practice sessions.
package db

import "time"

// PracticeSession is one finished drill run.
type PracticeSession struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Total     int
	Correct   int
}

// Accuracy returns the session's rounded percentage score.
func (p PracticeSession) Accuracy() int {
	if p.Total == 0 {
		return 0
	}
	return int(float64(p.Correct)/float64(p.Total)*100 + 0.5)
}
