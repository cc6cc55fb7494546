package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"trainer/internal/modules/countdown/domain"
	countdownout "trainer/internal/modules/countdown/port/out"
	"trainer/internal/platform/clock"
	apperrors "trainer/internal/platform/errors"
)

type Options struct {
	Duration     time.Duration
	TickInterval time.Duration
}

// Engine owns the countdown state. It is not safe for concurrent use: every
// call must come from the same event loop that delivers ticks.
type Engine struct {
	clock     clock.Clock
	scheduler countdownout.Scheduler
	renderer  countdownout.Renderer
	notifier  countdownout.Notifier
	log       zerolog.Logger

	duration time.Duration
	period   time.Duration

	state      domain.TimerState
	baseline   time.Time
	lastHandle domain.TickHandle
	endTimes   domain.EndTimeLog
}

func NewEngine(
	clk clock.Clock,
	scheduler countdownout.Scheduler,
	renderer countdownout.Renderer,
	notifier countdownout.Notifier,
	logger zerolog.Logger,
	options Options,
) *Engine {
	if options.Duration < time.Second {
		options.Duration = domain.DefaultDuration
	}
	if options.TickInterval <= 0 {
		options.TickInterval = domain.DefaultTickInterval
	}
	return &Engine{
		clock:     clk,
		scheduler: scheduler,
		renderer:  renderer,
		notifier:  notifier,
		log:       logger.With().Str("component", "countdown").Logger(),
		duration:  options.Duration.Truncate(time.Second),
		period:    options.TickInterval,
	}
}

// Start resumes from the current elapsed time. Calling it while running does nothing.
func (e *Engine) Start() {
	if e.state.Running {
		return
	}
	e.baseline = e.clock.Now().Add(-e.state.Elapsed)
	e.lastHandle++
	e.state.Handle = e.lastHandle
	e.state.Running = true
	e.log.Debug().Uint64("handle", uint64(e.state.Handle)).Dur("elapsed", e.state.Elapsed).Msg("countdown started")
	e.schedule()
}

// Tick applies one scheduled update. Ticks for a handle that is no longer live
// are dropped and reported as not accepted.
func (e *Engine) Tick(handle domain.TickHandle) bool {
	if !e.state.Running || handle == domain.NoTick || handle != e.state.Handle {
		return false
	}
	now := e.clock.Now()
	e.state.Elapsed = now.Sub(e.baseline)
	if e.state.Elapsed < 0 {
		e.state.Elapsed = 0
	}

	remaining := domain.RemainingSeconds(e.duration, e.state.Elapsed)
	if remaining <= 0 {
		e.cancel()
		e.state.Elapsed = 0
		e.render(domain.TargetDisplay, domain.ZeroDisplay)
		e.log.Debug().Msg("countdown expired")
		if e.notifier != nil {
			e.notifier.Expired(now)
		}
		return true
	}

	e.render(domain.TargetDisplay, domain.Format(remaining))
	e.schedule()
	return true
}

// Stop pauses a running countdown and records the stop instant.
func (e *Engine) Stop() {
	if !e.state.Running {
		return
	}
	now := e.clock.Now()
	e.state.Elapsed = now.Sub(e.baseline)
	e.cancel()
	e.endTimes.Append(now)
	e.render(domain.TargetResult, "Stopped at: "+domain.FormatClock(now))
	e.log.Debug().Time("at", now).Int("stops", e.endTimes.Len()).Msg("countdown stopped")
}

// Reset cancels any tick, zeroes elapsed time and forgets recorded stops.
func (e *Engine) Reset() {
	e.cancel()
	e.state.Elapsed = 0
	e.endTimes.Clear()
	e.render(domain.TargetDisplay, domain.Format(int(e.duration/time.Second)))
	e.render(domain.TargetResult, "")
	e.log.Debug().Msg("countdown reset")
}

// Toggle stops a running countdown or starts an idle one.
func (e *Engine) Toggle() {
	if e.state.Running {
		e.Stop()
		return
	}
	e.Start()
}

// Interrupt cancels the tick and zeroes elapsed time without recording a stop.
func (e *Engine) Interrupt() {
	e.cancel()
	e.state.Elapsed = 0
}

// Zero blanks the display.
func (e *Engine) Zero() {
	e.render(domain.TargetDisplay, domain.ZeroDisplay)
}

// SetDuration changes the countdown target. A running countdown picks it up on
// its next tick; an idle one re-renders immediately.
func (e *Engine) SetDuration(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of seconds", apperrors.ErrInvalidInput)
	}
	e.duration = time.Duration(seconds) * time.Second
	if !e.state.Running {
		e.render(domain.TargetDisplay, domain.Format(domain.RemainingSeconds(e.duration, e.state.Elapsed)))
	}
	return nil
}

func (e *Engine) Snapshot() domain.Snapshot {
	remaining := domain.RemainingSeconds(e.duration, e.state.Elapsed)
	if remaining < 0 {
		remaining = 0
	}
	return domain.Snapshot{
		Duration:  e.duration,
		Elapsed:   e.state.Elapsed,
		Remaining: remaining,
		Running:   e.state.Running,
		Handle:    e.state.Handle,
		EndTimes:  e.endTimes.Entries(),
	}
}

func (e *Engine) cancel() {
	e.state.Handle = domain.NoTick
	e.state.Running = false
}

func (e *Engine) schedule() {
	if e.scheduler == nil {
		return
	}
	e.scheduler.Schedule(e.state.Handle, e.period)
}

func (e *Engine) render(target domain.Target, text string) {
	if e.renderer == nil {
		return
	}
	e.renderer.Render(target, text)
}
