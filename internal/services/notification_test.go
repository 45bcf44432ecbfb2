package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	portsmocks "github.com/renato0307/flowpomo/internal/ports/mocks"
)

func TestNotificationService_ShouldPlaySound(t *testing.T) {
	tests := []struct {
		eventType TimerEventType
		expected  bool
	}{
		{EventBreakFinished, true},
		{EventFlowStarted, true},
		{EventCommitted, false},
		{EventModeChanged, false},
		{EventPaused, false},
		{EventReset, false},
		{EventStarted, false},
		{EventTick, false},
	}

	service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), true)
	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ShouldPlaySound(tt.eventType))
		})
	}
}

func TestNotificationService_Disabled(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	service := NewNotificationService(player, false)

	err := service.HandleEvent(TimerEvent{Type: EventFlowStarted})

	assert.NoError(t, err)
	player.AssertNotCalled(t, "PlaySoundForEvent", "flow_started")
}

func TestNotificationService_HandleEvent(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent("break_finished").Return(errors.New("no audio"))
	service := NewNotificationService(player, true)

	err := service.HandleEvent(TimerEvent{Type: EventBreakFinished})

	assert.EqualError(t, err, "no audio")
}

func TestNotificationService_WatchStopsWhenChannelCloses(t *testing.T) {
	player := portsmocks.NewMockSoundPlayer(t)
	player.EXPECT().PlaySoundForEvent("flow_started").Return(nil).Once()
	service := NewNotificationService(player, true)

	events := make(chan TimerEvent, 3)
	events <- TimerEvent{Type: EventTick}
	events <- TimerEvent{Type: EventFlowStarted}
	events <- TimerEvent{Type: EventTick}
	close(events)

	done := make(chan struct{})
	go func() {
		service.Watch(context.Background(), events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not return after channel closed")
	}
}
