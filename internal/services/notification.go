package services

import (
	"context"

	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// NotificationService plays sounds for timer events
type NotificationService struct {
	enabled     bool
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(soundPlayer ports.SoundPlayer, enabled bool) *NotificationService {
	return &NotificationService{
		enabled:     enabled && soundPlayer != nil,
		soundPlayer: soundPlayer,
	}
}

// ShouldPlaySound determines if a sound should be played for the event type
func (s *NotificationService) ShouldPlaySound(eventType TimerEventType) bool {
	if !s.enabled {
		return false
	}
	switch eventType {
	case EventFlowStarted, EventBreakFinished:
		return true // The user is not watching the clock when these happen
	default:
		return false
	}
}

// HandleEvent plays the sound mapped to the event, if any
func (s *NotificationService) HandleEvent(event TimerEvent) error {
	if !s.ShouldPlaySound(event.Type) {
		return nil
	}
	logging.Logger.Debug("Playing sound for event", "event", event.Type)
	return s.soundPlayer.PlaySoundForEvent(string(event.Type))
}

// Watch handles events until the channel closes or ctx is cancelled
func (s *NotificationService) Watch(ctx context.Context, events <-chan TimerEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := s.HandleEvent(event); err != nil {
				logging.Logger.Warn("Failed to play sound", "event", event.Type, "error", err)
			}
		}
	}
}
