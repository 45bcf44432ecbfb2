package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"focus", ModeFocus},
		{"Focus", ModeFocus},
		{"work", ModeFocus},
		{"shortBreak", ModeShortBreak},
		{"short_break", ModeShortBreak},
		{"short", ModeShortBreak},
		{"longBreak", ModeLongBreak},
		{"long_break", ModeLongBreak},
		{" long ", ModeLongBreak},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	_, err := ParseMode("nap")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestDurations_Nominal(t *testing.T) {
	d := DefaultDurations()

	assert.Equal(t, 1500, d.Nominal(ModeFocus))
	assert.Equal(t, 300, d.Nominal(ModeShortBreak))
	assert.Equal(t, 900, d.Nominal(ModeLongBreak))
}

func TestDurations_Validate(t *testing.T) {
	assert.NoError(t, DefaultDurations().Validate())
	assert.Error(t, Durations{Focus: 10, ShortBreak: 0, LongBreak: 10}.Validate())
}

func TestMode_IsBreak(t *testing.T) {
	assert.False(t, ModeFocus.IsBreak())
	assert.True(t, ModeShortBreak.IsBreak())
	assert.True(t, ModeLongBreak.IsBreak())
}
