package quiz

import "math"

// Stats tracks attempts for the lifetime of the running session. It is
// never persisted directly; the app snapshots it into session history on
// exit.
type Stats struct {
	Total   int
	Correct int
}

// RecordAttempt counts one answered question.
func (s *Stats) RecordAttempt(correct bool) {
	s.Total++
	if correct {
		s.Correct++
	}
}

// Accuracy returns the rounded percentage score. ok is false before any
// attempt has been recorded.
func (s Stats) Accuracy() (pct int, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100)), true
}
