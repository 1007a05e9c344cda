package app

// Key binding constants used in handleKey.
const (
	KeyQuit       = "q"
	KeyQuitUpper  = "Q"
	KeyCtrlC      = "ctrl+c"
	KeyToggleMode = "m"
	KeyCycleRange = "r"
	KeyOption1    = "1"
	KeyOption2    = "2"
	KeyOption3    = "3"
	KeyOption4    = "4"
)
