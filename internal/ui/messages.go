package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/flowpomo/internal/services"
)

// timerEventMsg carries a timer event into the update loop
type timerEventMsg services.TimerEvent

// timerClosedMsg is sent once the engine stops publishing events
type timerClosedMsg struct{}

// waitForTimerEvent blocks on the next timer event
func waitForTimerEvent(events <-chan services.TimerEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return timerClosedMsg{}
		}
		return timerEventMsg(event)
	}
}
