package domain

import "fmt"

// TimerPhase is the coarse state of the timer as seen by a user
type TimerPhase string

const (
	PhaseCountdown TimerPhase = "countdown"
	PhaseFlow      TimerPhase = "flow"
	PhaseIdle      TimerPhase = "idle"
)

// TimerState is a snapshot of the timer aggregate
type TimerState struct {
	Elapsed          int // Focus seconds accrued in the current interval
	Flowing          bool
	Mode             Mode
	Remaining        int // Countdown value, stays at 0 while flowing
	Running          bool
	SelectedCategory *CategoryRef
}

// Phase maps the flags onto idle, countdown, or flow
func (s TimerState) Phase() TimerPhase {
	switch {
	case !s.Running:
		return PhaseIdle
	case s.Flowing:
		return PhaseFlow
	default:
		return PhaseCountdown
	}
}

// Clock formats the value a timer display should show.
// While flowing the countdown is exhausted, so the accrued time is shown instead.
func (s TimerState) Clock() string {
	if s.Flowing {
		return FormatClock(s.Elapsed)
	}
	return FormatClock(s.Remaining)
}

// CategoryName returns the attributed category or the default name
func (s TimerState) CategoryName() string {
	if s.SelectedCategory == nil || s.SelectedCategory.Name == "" {
		return UncategorizedName
	}
	return s.SelectedCategory.Name
}

// FormatClock renders seconds as MM:SS; minutes are not capped at 59
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
