package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"trainer/internal/modules/countdown/domain"
	"trainer/internal/modules/countdown/dto"
	countdownin "trainer/internal/modules/countdown/port/in"
	countdownout "trainer/internal/modules/countdown/port/out"
	"trainer/internal/modules/countdown/service"
	"trainer/internal/platform/clock"
	apperrors "trainer/internal/platform/errors"
)

type Interactor struct {
	engine *service.Engine
	clock  clock.Clock
	queue  countdownout.TickQueue
}

// NewInteractor wires the engine. queue is only needed by Run and may be nil
// when ticks are delivered by an external event loop.
func NewInteractor(engine *service.Engine, clk clock.Clock, queue countdownout.TickQueue) countdownin.Usecase {
	return &Interactor{engine: engine, clock: clk, queue: queue}
}

func (i *Interactor) Start()     { i.engine.Start() }
func (i *Interactor) Stop()      { i.engine.Stop() }
func (i *Interactor) Reset()     { i.engine.Reset() }
func (i *Interactor) Toggle()    { i.engine.Toggle() }
func (i *Interactor) Interrupt() { i.engine.Interrupt() }
func (i *Interactor) Zero()      { i.engine.Zero() }

func (i *Interactor) Tick(handle uint64) bool {
	return i.engine.Tick(domain.TickHandle(handle))
}

// SetDuration accepts raw user text and requires a positive whole number of seconds.
func (i *Interactor) SetDuration(raw string) error {
	seconds, err := parsePositive(raw)
	if err != nil {
		return err
	}
	return i.engine.SetDuration(seconds)
}

func (i *Interactor) Snapshot() dto.SnapshotOutput {
	return toSnapshotOutput(i.engine.Snapshot())
}

// Run starts the countdown and drives ticks from the clock until it expires or
// ctx is cancelled. Cancellation stops the countdown, which records the stop.
func (i *Interactor) Run(ctx context.Context) (dto.RunOutput, error) {
	if i.queue == nil {
		return dto.RunOutput{}, fmt.Errorf("countdown tick queue is not configured")
	}
	i.engine.Start()
	for {
		handle, after, ok := i.queue.Next()
		if !ok {
			snap := i.engine.Snapshot()
			return dto.RunOutput{Expired: true, Elapsed: snap.Elapsed, EndTimes: formatEndTimes(snap)}, nil
		}
		select {
		case <-ctx.Done():
			i.engine.Stop()
			snap := i.engine.Snapshot()
			return dto.RunOutput{Elapsed: snap.Elapsed, EndTimes: formatEndTimes(snap)}, nil
		case <-i.clock.After(after):
			i.engine.Tick(handle)
		}
	}
}

func parsePositive(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidInput, raw)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %d must be greater than 0", apperrors.ErrInvalidInput, value)
	}
	return value, nil
}

// Format renders raw non-negative seconds as HH:MM:SS.
func (i *Interactor) Format(raw string) (string, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return "", fmt.Errorf("%w: %q is not a non-negative number of seconds", apperrors.ErrInvalidInput, raw)
	}
	return domain.Format(value), nil
}

func toSnapshotOutput(snap domain.Snapshot) dto.SnapshotOutput {
	return dto.SnapshotOutput{
		Duration:  snap.Duration,
		Elapsed:   snap.Elapsed,
		Remaining: snap.Remaining,
		Display:   domain.Format(snap.Remaining),
		Running:   snap.Running,
		LiveTick:  uint64(snap.Handle),
		EndTimes:  formatEndTimes(snap),
	}
}

func formatEndTimes(snap domain.Snapshot) []string {
	out := make([]string, 0, len(snap.EndTimes))
	for _, at := range snap.EndTimes {
		out = append(out, domain.FormatClock(at))
	}
	return out
}
