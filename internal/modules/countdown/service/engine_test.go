package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"trainer/internal/modules/countdown/domain"
	"trainer/internal/modules/countdown/service"
	apperrors "trainer/internal/platform/errors"
)

type scheduled struct {
	handle domain.TickHandle
	after  time.Duration
}

type fakeScheduler struct {
	calls []scheduled
}

func (f *fakeScheduler) Schedule(handle domain.TickHandle, after time.Duration) {
	f.calls = append(f.calls, scheduled{handle: handle, after: after})
}

func (f *fakeScheduler) last() scheduled {
	return f.calls[len(f.calls)-1]
}

type fakeRenderer struct {
	writes map[domain.Target][]string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{writes: map[domain.Target][]string{}}
}

func (f *fakeRenderer) Render(target domain.Target, text string) {
	f.writes[target] = append(f.writes[target], text)
}

func (f *fakeRenderer) last(target domain.Target) string {
	w := f.writes[target]
	if len(w) == 0 {
		return ""
	}
	return w[len(w)-1]
}

type fakeNotifier struct {
	expired []time.Time
}

func (f *fakeNotifier) Expired(at time.Time) {
	f.expired = append(f.expired, at)
}

type fixture struct {
	clock     *clockwork.FakeClock
	scheduler *fakeScheduler
	renderer  *fakeRenderer
	notifier  *fakeNotifier
	engine    *service.Engine
}

func newFixture(duration time.Duration) fixture {
	f := fixture{
		clock:     clockwork.NewFakeClockAt(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)),
		scheduler: &fakeScheduler{},
		renderer:  newFakeRenderer(),
		notifier:  &fakeNotifier{},
	}
	f.engine = service.NewEngine(f.clock, f.scheduler, f.renderer, f.notifier, zerolog.Nop(), service.Options{
		Duration:     duration,
		TickInterval: 100 * time.Millisecond,
	})
	return f
}

// advance moves the clock one period and delivers the latest scheduled tick.
func (f fixture) advance() bool {
	f.clock.Advance(100 * time.Millisecond)
	return f.engine.Tick(f.scheduler.last().handle)
}

func TestStartSchedulesFirstTick(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Start()

	if len(f.scheduler.calls) != 1 {
		t.Fatalf("expected one scheduled tick, got %d", len(f.scheduler.calls))
	}
	if f.scheduler.calls[0].after != 100*time.Millisecond {
		t.Fatalf("expected 100ms period, got %s", f.scheduler.calls[0].after)
	}
	snap := f.engine.Snapshot()
	if !snap.Running || snap.Handle == domain.NoTick {
		t.Fatalf("expected running with live handle, got %+v", snap)
	}
}

func TestStartIsIdempotentWhileRunning(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Start()
	handle := f.engine.Snapshot().Handle
	for i := 0; i < 5; i++ {
		f.advance()
	}
	f.engine.Start()

	if f.engine.Snapshot().Handle != handle {
		t.Fatalf("second start must keep the live handle")
	}
	// one initial schedule plus one per accepted tick
	if len(f.scheduler.calls) != 6 {
		t.Fatalf("expected 6 schedules, got %d", len(f.scheduler.calls))
	}
	if f.engine.Snapshot().Elapsed != 500*time.Millisecond {
		t.Fatalf("expected elapsed 500ms, got %s", f.engine.Snapshot().Elapsed)
	}
}

func TestTickRendersRemainingAndExpires(t *testing.T) {
	t.Parallel()
	f := newFixture(2 * time.Second)
	f.engine.Start()

	for i := 0; i < 10; i++ {
		if !f.advance() {
			t.Fatalf("tick %d should be accepted", i)
		}
	}
	if got := f.renderer.last(domain.TargetDisplay); got != "00:00:01" {
		t.Fatalf("expected 00:00:01 after one second, got %q", got)
	}
	for i := 0; i < 9; i++ {
		f.advance()
	}
	if len(f.notifier.expired) != 0 {
		t.Fatalf("should not expire before two seconds")
	}
	f.advance()

	if len(f.notifier.expired) != 1 {
		t.Fatalf("expected one expiry notification, got %d", len(f.notifier.expired))
	}
	if got := f.renderer.last(domain.TargetDisplay); got != domain.ZeroDisplay {
		t.Fatalf("expected zero display on expiry, got %q", got)
	}
	snap := f.engine.Snapshot()
	if snap.Running || snap.Elapsed != 0 || snap.Handle != domain.NoTick {
		t.Fatalf("expected idle zeroed state after expiry, got %+v", snap)
	}
	calls := len(f.scheduler.calls)
	f.clock.Advance(100 * time.Millisecond)
	if f.engine.Tick(f.scheduler.last().handle) {
		t.Fatalf("tick after expiry must be dropped")
	}
	if len(f.scheduler.calls) != calls {
		t.Fatalf("expired countdown must not reschedule")
	}
}

func TestStopRecordsEndTimeAndDropsStaleTick(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Start()
	f.advance()
	f.advance()
	pending := f.scheduler.last().handle

	f.clock.Advance(50 * time.Millisecond)
	f.engine.Stop()

	snap := f.engine.Snapshot()
	if snap.Running {
		t.Fatalf("expected stopped")
	}
	if len(snap.EndTimes) != 1 || !snap.EndTimes[0].Equal(f.clock.Now()) {
		t.Fatalf("expected one end time at now, got %v", snap.EndTimes)
	}
	if snap.Elapsed != 250*time.Millisecond {
		t.Fatalf("expected elapsed 250ms, got %s", snap.Elapsed)
	}
	want := "Stopped at: " + domain.FormatClock(f.clock.Now())
	if got := f.renderer.last(domain.TargetResult); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if f.engine.Tick(pending) {
		t.Fatalf("tick scheduled before stop must be dropped")
	}

	f.engine.Stop()
	if len(f.engine.Snapshot().EndTimes) != 1 {
		t.Fatalf("stop while idle must not record")
	}
}

func TestStartAfterStopResumesElapsed(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Start()
	for i := 0; i < 15; i++ {
		f.advance()
	}
	f.engine.Stop()
	f.clock.Advance(time.Hour)

	f.engine.Start()
	f.advance()
	if got := f.engine.Snapshot().Elapsed; got != 1600*time.Millisecond {
		t.Fatalf("expected resumed elapsed 1.6s, got %s", got)
	}
	if got := f.renderer.last(domain.TargetDisplay); got != "00:00:09" {
		t.Fatalf("expected 00:00:09, got %q", got)
	}
}

func TestResetRendersFullDurationAndClearsLog(t *testing.T) {
	t.Parallel()
	f := newFixture(90 * time.Second)
	f.engine.Start()
	f.advance()
	f.engine.Stop()
	f.engine.Start()
	f.advance()

	f.engine.Reset()

	if got := f.renderer.last(domain.TargetDisplay); got != "00:01:30" {
		t.Fatalf("expected full duration after reset, got %q", got)
	}
	if got := f.renderer.last(domain.TargetResult); got != "" {
		t.Fatalf("expected cleared result, got %q", got)
	}
	snap := f.engine.Snapshot()
	if len(snap.EndTimes) != 0 || snap.Elapsed != 0 || snap.Running {
		t.Fatalf("expected pristine state, got %+v", snap)
	}
}

func TestInterruptCancelsWithoutRecording(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Start()
	f.advance()
	stale := f.scheduler.last().handle

	f.engine.Interrupt()

	snap := f.engine.Snapshot()
	if snap.Running || snap.Elapsed != 0 || len(snap.EndTimes) != 0 {
		t.Fatalf("unexpected state after interrupt: %+v", snap)
	}
	if f.engine.Tick(stale) {
		t.Fatalf("interrupted tick must be dropped")
	}
}

func TestRapidRestartsLeaveSingleLiveTick(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Interrupt()
	f.engine.Start()
	f.engine.Interrupt()
	f.engine.Start()

	accepted := 0
	for _, call := range f.scheduler.calls {
		if f.engine.Tick(call.handle) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly one live tick, got %d", accepted)
	}
}

func TestToggleStartsAndStops(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Toggle()
	if !f.engine.Snapshot().Running {
		t.Fatalf("toggle should start")
	}
	f.engine.Toggle()
	snap := f.engine.Snapshot()
	if snap.Running || len(snap.EndTimes) != 1 {
		t.Fatalf("toggle should stop and record, got %+v", snap)
	}
}

func TestSetDurationValidatesAndRerendersWhenIdle(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	if err := f.engine.SetDuration(0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if err := f.engine.SetDuration(-4); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if f.engine.Snapshot().Duration != 10*time.Second {
		t.Fatalf("rejected duration must not change state")
	}
	if err := f.engine.SetDuration(3725); err != nil {
		t.Fatalf("set duration: %v", err)
	}
	if got := f.renderer.last(domain.TargetDisplay); got != "01:02:05" {
		t.Fatalf("expected rerender, got %q", got)
	}
}

func TestZeroRendersBlankDisplay(t *testing.T) {
	t.Parallel()
	f := newFixture(10 * time.Second)
	f.engine.Zero()
	if got := f.renderer.last(domain.TargetDisplay); got != domain.ZeroDisplay {
		t.Fatalf("expected zero display, got %q", got)
	}
}

func TestEngineToleratesMissingCollaborators(t *testing.T) {
	t.Parallel()
	clk := clockwork.NewFakeClock()
	engine := service.NewEngine(clk, nil, nil, nil, zerolog.Nop(), service.Options{Duration: time.Second})
	engine.Start()
	clk.Advance(time.Second)
	if !engine.Tick(engine.Snapshot().Handle) {
		t.Fatalf("tick should be accepted without collaborators")
	}
	engine.Stop()
	engine.Reset()
	engine.Zero()
}
