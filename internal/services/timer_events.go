package services

import (
	"time"

	"github.com/renato0307/flowpomo/internal/domain"
)

// TimerEventType defines the type of timer event
type TimerEventType string

const (
	EventBreakFinished TimerEventType = "break_finished"
	EventCommitted     TimerEventType = "committed"
	EventFlowStarted   TimerEventType = "flow_started"
	EventModeChanged   TimerEventType = "mode_changed"
	EventPaused        TimerEventType = "paused"
	EventReset         TimerEventType = "reset"
	EventStarted       TimerEventType = "started"
	EventTick          TimerEventType = "tick"
)

// TimerEvent is a timer update delivered to observers
type TimerEvent struct {
	At     time.Time
	Record *domain.SessionRecord // Set for EventCommitted
	State  domain.TimerState
	Type   TimerEventType
}
