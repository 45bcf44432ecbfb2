package services

import (
	"sync"
	"time"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
)

// IntervalCommitter turns a finished interval into a session record
type IntervalCommitter interface {
	Commit(state domain.TimerState) (*domain.SessionRecord, bool)
}

// SelectionReader exposes the category attributed to the current interval
type SelectionReader interface {
	Selected() *domain.CategoryRef
}

// TimerService is the countdown/flow state machine for one user session
type TimerService struct {
	mu        sync.Mutex
	committer IntervalCommitter
	durations domain.Durations
	events    []chan TimerEvent
	runState  chan struct{}
	selection SelectionReader

	elapsed   int
	flowing   bool
	mode      domain.Mode
	remaining int
	running   bool
}

// NewTimerService creates an idle focus timer loaded with the nominal focus duration.
// selection may be nil when categories are not tracked.
func NewTimerService(durations domain.Durations, committer IntervalCommitter, selection SelectionReader) *TimerService {
	return &TimerService{
		committer: committer,
		durations: durations,
		mode:      domain.ModeFocus,
		remaining: durations.Nominal(domain.ModeFocus),
		runState:  make(chan struct{}, 1),
		selection: selection,
	}
}

// Subscribe registers a new observer channel.
// Observers that fall behind miss events rather than blocking the timer.
func (t *TimerService) Subscribe(buffer int) <-chan TimerEvent {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan TimerEvent, buffer)
	t.mu.Lock()
	t.events = append(t.events, ch)
	t.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes an observer channel
func (t *TimerService) Unsubscribe(ch <-chan TimerEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.events {
		if existing == ch {
			t.events = append(t.events[:i], t.events[i+1:]...)
			close(existing)
			return
		}
	}
}

// RunStateChanged signals whenever running flips; the signal coalesces,
// so receivers must re-read State.
func (t *TimerService) RunStateChanged() <-chan struct{} {
	return t.runState
}

// State returns a snapshot of the timer
func (t *TimerService) State() domain.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Start resumes the clock. Starting a dead countdown that is not flowing is a no-op.
func (t *TimerService) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining <= 0 && !t.flowing {
		logging.Logger.Debug("Ignoring start on exhausted countdown", "mode", t.mode)
		return false
	}
	if t.running {
		return true
	}

	t.running = true
	t.signalRunStateLocked()
	t.emitLocked(EventStarted, nil)
	return true
}

// Pause stops the clock; calling it again changes nothing
func (t *TimerService) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	t.running = false
	t.signalRunStateLocked()
	t.emitLocked(EventPaused, nil)
}

// Tick advances the timer by one second
func (t *TimerService) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	if t.mode == domain.ModeFocus {
		t.elapsed++
	}

	if t.flowing {
		t.emitLocked(EventTick, nil)
		return
	}

	if t.remaining <= 1 {
		if t.mode == domain.ModeFocus {
			t.flowing = true
			t.remaining = 0
			logging.Logger.Info("Focus countdown finished, entering flow", "elapsed", t.elapsed)
			t.emitLocked(EventFlowStarted, nil)
			return
		}

		logging.Logger.Info("Break finished, reloading", "mode", t.mode)
		t.resetLocked()
		t.emitLocked(EventBreakFinished, nil)
		return
	}

	t.remaining--
	t.emitLocked(EventTick, nil)
}

// Reset ends the current interval and reloads the current mode
func (t *TimerService) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resetLocked()
	t.emitLocked(EventReset, nil)
}

// SwitchMode ends the current interval and loads another mode.
// Switching to the mode already active still commits and reloads.
func (t *TimerService) SwitchMode(mode domain.Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.commitLocked()
	t.clearIntervalLocked()
	t.mode = mode
	t.remaining = t.durations.Nominal(mode)
	logging.Logger.Debug("Switched mode", "mode", mode, "remaining", t.remaining)
	t.emitLocked(EventModeChanged, nil)
}

// Close stops delivering events and closes every observer channel
func (t *TimerService) Close() {
	t.mu.Lock()
	events := t.events
	t.events = nil
	t.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (t *TimerService) resetLocked() {
	t.commitLocked()
	t.clearIntervalLocked()
	t.remaining = t.durations.Nominal(t.mode)
}

// commitLocked reads elapsed for the record while the lock is held,
// so no tick lands between the commit and the clear that follows.
func (t *TimerService) commitLocked() {
	if t.committer == nil {
		return
	}
	record, ok := t.committer.Commit(t.snapshotLocked())
	if ok {
		t.emitLocked(EventCommitted, record)
	}
}

func (t *TimerService) clearIntervalLocked() {
	wasRunning := t.running
	t.elapsed = 0
	t.flowing = false
	t.running = false
	if wasRunning {
		t.signalRunStateLocked()
	}
}

func (t *TimerService) snapshotLocked() domain.TimerState {
	var selected *domain.CategoryRef
	if t.selection != nil {
		selected = t.selection.Selected()
	}
	return domain.TimerState{
		Elapsed:          t.elapsed,
		Flowing:          t.flowing,
		Mode:             t.mode,
		Remaining:        t.remaining,
		Running:          t.running,
		SelectedCategory: selected,
	}
}

func (t *TimerService) signalRunStateLocked() {
	select {
	case t.runState <- struct{}{}:
	default:
	}
}

func (t *TimerService) emitLocked(eventType TimerEventType, record *domain.SessionRecord) {
	if len(t.events) == 0 {
		return
	}
	event := TimerEvent{
		At:     time.Now(),
		Record: record,
		State:  t.snapshotLocked(),
		Type:   eventType,
	}
	for _, ch := range t.events {
		select {
		case ch <- event:
		default:
		}
	}
}
