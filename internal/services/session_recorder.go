package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// DefaultWriteTimeout bounds a single background session write
const DefaultWriteTimeout = 10 * time.Second

// SessionRecorder converts finished focus intervals into session records
type SessionRecorder struct {
	clock        ports.Clock
	identity     ports.IdentityProvider
	inflight     sync.WaitGroup
	sink         ports.SessionSink
	writeTimeout time.Duration
}

// NewSessionRecorder creates a new SessionRecorder.
// A nil clock falls back to the system time.
func NewSessionRecorder(sink ports.SessionSink, identity ports.IdentityProvider, clock ports.Clock) *SessionRecorder {
	if clock == nil {
		clock = ports.ClockFunc(time.Now)
	}
	return &SessionRecorder{
		clock:        clock,
		identity:     identity,
		sink:         sink,
		writeTimeout: DefaultWriteTimeout,
	}
}

// Commit builds a record for the interval and hands it to the sink in the background.
// Returns false without error when the interval is not recordable: no signed in user,
// a break mode, or less than one second of focus.
func (r *SessionRecorder) Commit(state domain.TimerState) (*domain.SessionRecord, bool) {
	if state.Mode != domain.ModeFocus || state.Elapsed < 1 {
		return nil, false
	}

	if r.identity == nil || r.sink == nil {
		return nil, false
	}
	userID, ok := r.identity.UserID()
	if !ok || userID == "" {
		logging.Logger.Debug("Skipping commit, no signed in user", "elapsed", state.Elapsed)
		return nil, false
	}

	record := domain.SessionRecord{
		Category:  state.CategoryName(),
		Duration:  state.Elapsed,
		ID:        uuid.New().String(),
		Timestamp: r.clock.Now().UnixMilli(),
		UserID:    userID,
	}

	logging.Logger.Info("Committing focus session",
		"id", record.ID,
		"category", record.Category,
		"duration", record.Duration)

	r.inflight.Add(1)
	go r.write(record)

	return &record, true
}

// Close waits for pending writes to finish
func (r *SessionRecorder) Close() {
	r.inflight.Wait()
}

func (r *SessionRecorder) write(record domain.SessionRecord) {
	defer r.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.sink.AppendSession(ctx, record); err != nil {
		logging.Logger.Error("Failed to persist session",
			"id", record.ID,
			"duration", record.Duration,
			"error", err)
		return
	}
	logging.Logger.Debug("Session persisted", "id", record.ID)
}
