package sound

import (
	"fmt"
	"io"
	"os"
)

// Event names understood by the player
const (
	EventBreakFinished = "break_finished"
	EventFlowStarted   = "flow_started"
)

// Player implements ports.SoundPlayer
type Player struct {
	bell io.Writer
}

// NewPlayer creates a new sound player that rings the terminal bell on stdout
// when no system sound is available
func NewPlayer() *Player {
	return &Player{bell: os.Stdout}
}

// NewPlayerWithBell creates a player whose fallback bell goes to w
func NewPlayerWithBell(w io.Writer) *Player {
	return &Player{bell: w}
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if playForEvent(eventType) {
		return nil
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	if p.bell == nil {
		return nil
	}
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
