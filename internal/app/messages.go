package app

// AdvanceMsg moves to the next question after the post-answer delay. Seq
// identifies the question the timer was armed for; a stale Seq is ignored
// so a question change cancels any pending advance.
type AdvanceMsg struct {
	Seq int
}

// ClearNoticeMsg clears a transient notice after a timeout.
type ClearNoticeMsg struct{}
