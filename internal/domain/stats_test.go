package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected TallyMarks
	}{
		{"nothing", 0, TallyMarks{}},
		{"under a minute", 59, TallyMarks{}},
		{"four minutes", 4*60 + 30, TallyMarks{Remaining: 4}},
		{"five minutes", 5 * 60, TallyMarks{FullSets: 1}},
		{"twenty seven minutes", 27 * 60, TallyMarks{FullSets: 5, Remaining: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tally(tt.seconds))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "0m 45s", FormatDuration(45))
	assert.Equal(t, "2m 5s", FormatDuration(125))
	assert.Equal(t, "25m 0s", FormatDuration(1500))
}

func TestParseTimeFilter(t *testing.T) {
	f, err := ParseTimeFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseTimeFilter("week")
	require.NoError(t, err)
	assert.Equal(t, FilterWeek, f)

	_, err = ParseTimeFilter("year")
	assert.Error(t, err)
}

func TestTimeFilter_Includes(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		filter   TimeFilter
		ts       time.Time
		expected bool
	}{
		{"all includes anything", FilterAll, now.AddDate(-3, 0, 0), true},
		{"day same date", FilterDay, time.Date(2025, 3, 15, 0, 5, 0, 0, time.Local), true},
		{"day previous date", FilterDay, time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local), false},
		{"week six days ago", FilterWeek, now.AddDate(0, 0, -6), true},
		{"week eight days ago", FilterWeek, now.AddDate(0, 0, -8), false},
		{"month three weeks ago", FilterMonth, now.AddDate(0, 0, -21), true},
		{"month two months ago", FilterMonth, now.AddDate(0, -2, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Includes(tt.ts, now))
		})
	}
}
