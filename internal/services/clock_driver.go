package services

import (
	"context"
	"time"

	"github.com/renato0307/flowpomo/internal/logging"
)

// DefaultTickInterval is the wall clock length of one timer second
const DefaultTickInterval = time.Second

// ClockDriver delivers ticks to a timer while it is running
type ClockDriver struct {
	interval time.Duration
	timer    *TimerService
}

// NewClockDriver creates a driver for timer; interval <= 0 uses DefaultTickInterval
func NewClockDriver(timer *TimerService, interval time.Duration) *ClockDriver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &ClockDriver{
		interval: interval,
		timer:    timer,
	}
}

// Run ticks the timer until ctx is cancelled.
// The ticker only exists while the timer is running, and ticks are
// delivered from this goroutine alone so they never overlap.
func (d *ClockDriver) Run(ctx context.Context) {
	var ticker *time.Ticker
	var tickC <-chan time.Time

	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer stop()

	sync := func() {
		running := d.timer.State().Running
		switch {
		case running && ticker == nil:
			ticker = time.NewTicker(d.interval)
			tickC = ticker.C
			logging.Logger.Debug("Clock driver started ticking", "interval", d.interval)
		case !running && ticker != nil:
			stop()
			logging.Logger.Debug("Clock driver stopped ticking")
		}
	}
	sync()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.timer.RunStateChanged():
			sync()
		case <-tickC:
			d.timer.Tick()
		}
	}
}
