package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/domain"
	portsmocks "github.com/renato0307/flowpomo/internal/ports/mocks"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func focusState(elapsed int, category *domain.CategoryRef) domain.TimerState {
	return domain.TimerState{
		Elapsed:          elapsed,
		Mode:             domain.ModeFocus,
		Running:          true,
		SelectedCategory: category,
	}
}

func TestSessionRecorder_Commit(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	sink := portsmocks.NewMockSessionSink(t)
	identity := portsmocks.NewMockIdentityProvider(t)
	identity.EXPECT().UserID().Return("u1", true)

	var persisted domain.SessionRecord
	sink.EXPECT().AppendSession(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, record domain.SessionRecord) {
			persisted = record
		}).
		Return(nil)

	recorder := NewSessionRecorder(sink, identity, fixedClock{now: now})
	record, ok := recorder.Commit(focusState(125, &domain.CategoryRef{Name: "Reading", Color: "#48BB78"}))
	recorder.Close()

	require.True(t, ok)
	require.NotNil(t, record)
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, "Reading", record.Category)
	assert.Equal(t, 125, record.Duration)
	assert.Equal(t, now.UnixMilli(), record.Timestamp)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, *record, persisted)
}

func TestSessionRecorder_DefaultsToUncategorized(t *testing.T) {
	sink := portsmocks.NewMockSessionSink(t)
	identity := portsmocks.NewMockIdentityProvider(t)
	identity.EXPECT().UserID().Return("u1", true)
	sink.EXPECT().AppendSession(mock.Anything, mock.MatchedBy(func(r domain.SessionRecord) bool {
		return r.Category == domain.UncategorizedName
	})).Return(nil)

	recorder := NewSessionRecorder(sink, identity, nil)
	_, ok := recorder.Commit(focusState(10, nil))
	recorder.Close()

	assert.True(t, ok)
}

func TestSessionRecorder_PolicyFilters(t *testing.T) {
	tests := []struct {
		name      string
		state     domain.TimerState
		userID    string
		signedIn  bool
		askedUser bool
	}{
		{
			name:      "no signed in user",
			state:     focusState(50, nil),
			askedUser: true,
		},
		{
			name:      "empty user id",
			state:     focusState(50, nil),
			signedIn:  true,
			askedUser: true,
		},
		{
			name:     "short break",
			state:    domain.TimerState{Mode: domain.ModeShortBreak, Elapsed: 50},
			userID:   "u1",
			signedIn: true,
		},
		{
			name:     "long break",
			state:    domain.TimerState{Mode: domain.ModeLongBreak, Elapsed: 50},
			userID:   "u1",
			signedIn: true,
		},
		{
			name:     "zero elapsed",
			state:    focusState(0, nil),
			userID:   "u1",
			signedIn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := portsmocks.NewMockSessionSink(t)
			identity := portsmocks.NewMockIdentityProvider(t)
			if tt.askedUser {
				identity.EXPECT().UserID().Return(tt.userID, tt.signedIn)
			}

			recorder := NewSessionRecorder(sink, identity, nil)
			record, ok := recorder.Commit(tt.state)
			recorder.Close()

			assert.False(t, ok)
			assert.Nil(t, record)
			sink.AssertNotCalled(t, "AppendSession", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionRecorder_SinkFailureIsSwallowed(t *testing.T) {
	sink := portsmocks.NewMockSessionSink(t)
	identity := portsmocks.NewMockIdentityProvider(t)
	identity.EXPECT().UserID().Return("u1", true)
	sink.EXPECT().AppendSession(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	recorder := NewSessionRecorder(sink, identity, nil)
	record, ok := recorder.Commit(focusState(30, nil))
	recorder.Close()

	assert.True(t, ok)
	assert.Equal(t, 30, record.Duration)
}

func TestSessionRecorder_CommitDoesNotWaitForSink(t *testing.T) {
	sink := portsmocks.NewMockSessionSink(t)
	identity := portsmocks.NewMockIdentityProvider(t)
	identity.EXPECT().UserID().Return("u1", true)

	release := make(chan struct{})
	sink.EXPECT().AppendSession(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, record domain.SessionRecord) error {
			<-release
			return nil
		})

	recorder := NewSessionRecorder(sink, identity, nil)
	timer := NewTimerService(domain.DefaultDurations(), recorder, nil)
	timer.Start()
	tickN(timer, 5)

	done := make(chan struct{})
	go func() {
		timer.Reset()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reset blocked on the session sink")
	}

	close(release)
	recorder.Close()
}

func TestSessionRecorder_NilIdentityNeverRecords(t *testing.T) {
	sink := portsmocks.NewMockSessionSink(t)

	recorder := NewSessionRecorder(sink, nil, nil)
	_, ok := recorder.Commit(focusState(30, nil))

	assert.False(t, ok)
}

func TestSessionRecorder_NilClockUsesWallClock(t *testing.T) {
	sink := portsmocks.NewMockSessionSink(t)
	identity := portsmocks.NewMockIdentityProvider(t)
	identity.EXPECT().UserID().Return("u1", true)
	sink.EXPECT().AppendSession(mock.Anything, mock.Anything).Return(nil)

	before := time.Now().UnixMilli()
	recorder := NewSessionRecorder(sink, identity, nil)
	record, ok := recorder.Commit(focusState(30, nil))
	recorder.Close()
	after := time.Now().UnixMilli()

	require.True(t, ok)
	assert.GreaterOrEqual(t, record.Timestamp, before)
	assert.LessOrEqual(t, record.Timestamp, after)
}
