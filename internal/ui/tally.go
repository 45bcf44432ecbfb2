package ui

import (
	"strings"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/theme"
)

const (
	tallySet  = "卌"
	tallyMark = "|"
)

// RenderTally draws one mark per focused minute, grouped in fives
func RenderTally(marks domain.TallyMarks) string {
	if marks.FullSets == 0 && marks.Remaining == 0 {
		return ""
	}
	parts := make([]string, 0, marks.FullSets+1)
	for i := 0; i < marks.FullSets; i++ {
		parts = append(parts, tallySet)
	}
	if marks.Remaining > 0 {
		parts = append(parts, strings.Repeat(tallyMark, marks.Remaining))
	}
	return theme.TallyStyle.Render(strings.Join(parts, " "))
}
