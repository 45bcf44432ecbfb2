package domain

import (
	"fmt"
	"strings"
)

// Mode represents the kind of interval the timer is counting
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeLongBreak  Mode = "longBreak"
	ModeShortBreak Mode = "shortBreak"
)

// Default nominal durations in seconds
const (
	DefaultFocusSeconds      = 25 * 60
	DefaultLongBreakSeconds  = 15 * 60
	DefaultShortBreakSeconds = 5 * 60
)

// Modes lists the modes in display order
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

// IsBreak reports whether the mode is one of the break modes
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Label returns a human readable name for the mode
func (m Mode) Label() string {
	switch m {
	case ModeFocus:
		return "Focus"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(m)
	}
}

// ParseMode converts a user supplied name into a Mode.
// Accepts the canonical names plus snake_case and short aliases.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "focus", "work":
		return ModeFocus, nil
	case "shortbreak", "short_break", "short":
		return ModeShortBreak, nil
	case "longbreak", "long_break", "long":
		return ModeLongBreak, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// Durations holds the nominal countdown length of each mode, in seconds
type Durations struct {
	Focus      int
	LongBreak  int
	ShortBreak int
}

// DefaultDurations returns the classic 25/5/15 minute schedule
func DefaultDurations() Durations {
	return Durations{
		Focus:      DefaultFocusSeconds,
		LongBreak:  DefaultLongBreakSeconds,
		ShortBreak: DefaultShortBreakSeconds,
	}
}

// Nominal returns the countdown length for the given mode
func (d Durations) Nominal(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Focus
	}
}

// Validate checks that every mode has a positive duration
func (d Durations) Validate() error {
	for _, mode := range Modes {
		if d.Nominal(mode) < 1 {
			return fmt.Errorf("duration for %s must be at least 1 second, got %d", mode, d.Nominal(mode))
		}
	}
	return nil
}
