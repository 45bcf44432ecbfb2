package domain

import (
	"fmt"
	"time"
)

// TimeFilter restricts which sessions a summary includes
type TimeFilter string

const (
	FilterAll   TimeFilter = "all"
	FilterDay   TimeFilter = "day"
	FilterMonth TimeFilter = "month"
	FilterWeek  TimeFilter = "week"
)

// ParseTimeFilter converts a name into a TimeFilter, empty meaning all
func ParseTimeFilter(name string) (TimeFilter, error) {
	switch TimeFilter(name) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterDay, FilterWeek, FilterMonth:
		return TimeFilter(name), nil
	}
	return "", fmt.Errorf("invalid time filter %q (expected all, day, week or month)", name)
}

// Includes reports whether a session at ts passes the filter at now.
// Day compares local calendar dates, week is the last 7 days and month the last calendar month.
func (f TimeFilter) Includes(ts, now time.Time) bool {
	switch f {
	case FilterDay:
		y1, m1, d1 := ts.Local().Date()
		y2, m2, d2 := now.Local().Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case FilterWeek:
		return ts.After(now.AddDate(0, 0, -7))
	case FilterMonth:
		return ts.After(now.AddDate(0, -1, 0))
	default:
		return true
	}
}

// CategoryTotal is the focus time attributed to one category
type CategoryTotal struct {
	Color   string
	Name    string
	Seconds int
}

// TallyMarks splits elapsed minutes into groups of five
type TallyMarks struct {
	FullSets  int
	Remaining int
}

// Tally converts elapsed seconds into tally marks, one mark per whole minute
func Tally(elapsedSeconds int) TallyMarks {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	minutes := elapsedSeconds / 60
	return TallyMarks{FullSets: minutes / 5, Remaining: minutes % 5}
}

// FormatDuration renders seconds as "Xm Ys", or "0s" when empty
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
