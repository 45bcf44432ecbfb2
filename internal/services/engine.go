package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
)

// EngineDeps are the collaborators an engine talks to
type EngineDeps struct {
	Categories ports.CategorySource // Optional
	Clock      ports.Clock          // Optional, defaults to system time
	Identity   ports.IdentityProvider
	Sink       ports.SessionSink
}

// EngineConfig tunes a single engine
type EngineConfig struct {
	CommitOnClose bool // Commit the running interval when the engine is closed
	Durations     domain.Durations
	TickInterval  time.Duration
}

// Engine owns the timer, recorder, selector and clock driver of one user session
type Engine struct {
	cancel        context.CancelFunc
	closeOnce     sync.Once
	commitOnClose bool
	done          chan struct{}
	recorder      *SessionRecorder
	selector      *CategorySelector
	timer         *TimerService
}

// NewEngine wires an engine and starts its clock driver.
// The driver stops when ctx is cancelled or Close is called.
func NewEngine(ctx context.Context, deps EngineDeps, cfg EngineConfig) (*Engine, error) {
	durations := cfg.Durations
	if durations == (domain.Durations{}) {
		durations = domain.DefaultDurations()
	}
	if err := durations.Validate(); err != nil {
		return nil, fmt.Errorf("invalid durations: %w", err)
	}

	selector, err := NewCategorySelector(ctx, deps.Categories)
	if err != nil {
		return nil, err
	}

	recorder := NewSessionRecorder(deps.Sink, deps.Identity, deps.Clock)
	timer := NewTimerService(durations, recorder, selector)

	driverCtx, cancel := context.WithCancel(ctx)
	e := &Engine{
		cancel:        cancel,
		commitOnClose: cfg.CommitOnClose,
		done:          make(chan struct{}),
		recorder:      recorder,
		selector:      selector,
		timer:         timer,
	}

	driver := NewClockDriver(timer, cfg.TickInterval)
	go func() {
		defer close(e.done)
		driver.Run(driverCtx)
	}()

	logging.Logger.Info("Engine started",
		"focus", durations.Focus,
		"short_break", durations.ShortBreak,
		"long_break", durations.LongBreak)

	return e, nil
}

// Timer returns the engine's state machine
func (e *Engine) Timer() *TimerService {
	return e.timer
}

// Selector returns the engine's category selector
func (e *Engine) Selector() *CategorySelector {
	return e.selector
}

// State is a shortcut for Timer().State()
func (e *Engine) State() domain.TimerState {
	return e.timer.State()
}

// Close stops the clock, optionally commits the open interval, and waits for writes
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.cancel()
		<-e.done

		if e.commitOnClose {
			e.timer.Reset()
		}

		e.selector.Close()
		e.timer.Close()
		e.recorder.Close()
		logging.Logger.Info("Engine closed")
	})
}
