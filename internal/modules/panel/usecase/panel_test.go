package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	countdownadapter "trainer/internal/modules/countdown/adapter/out"
	countdowndomain "trainer/internal/modules/countdown/domain"
	countdownin "trainer/internal/modules/countdown/port/in"
	countdownservice "trainer/internal/modules/countdown/service"
	countdownusecase "trainer/internal/modules/countdown/usecase"
	paneladapter "trainer/internal/modules/panel/adapter/out"
	"trainer/internal/modules/panel/dto"
	panelin "trainer/internal/modules/panel/port/in"
	"trainer/internal/modules/panel/service"
	"trainer/internal/modules/panel/usecase"
	apperrors "trainer/internal/platform/errors"
)

type recordingScheduler struct {
	handles []countdowndomain.TickHandle
}

func (r *recordingScheduler) Schedule(handle countdowndomain.TickHandle, _ time.Duration) {
	r.handles = append(r.handles, handle)
}

type harness struct {
	clock     *clockwork.FakeClock
	scheduler *recordingScheduler
	board     *countdownadapter.Board
	countdown countdownin.Usecase
	panel     panelin.Usecase
}

func newHarness(t *testing.T, seeds ...service.Seed) harness {
	t.Helper()
	h := harness{
		clock:     clockwork.NewFakeClock(),
		scheduler: &recordingScheduler{},
		board:     countdownadapter.NewBoard("00:00:10", nil, zerolog.Nop()),
	}
	engine := countdownservice.NewEngine(h.clock, h.scheduler, h.board, h.board, zerolog.Nop(), countdownservice.Options{
		Duration:     10 * time.Second,
		TickInterval: 100 * time.Millisecond,
	})
	h.countdown = countdownusecase.NewInteractor(engine, h.clock, nil)
	p, err := service.NewPanel(seeds, zerolog.Nop())
	if err != nil {
		t.Fatalf("new panel: %v", err)
	}
	h.panel = usecase.NewInteractor(p, paneladapter.NewCountdownBridge(h.countdown))
	return h
}

func (h harness) liveTicks() int {
	accepted := 0
	for _, handle := range h.scheduler.handles {
		if h.countdown.Snapshot().LiveTick == uint64(handle) {
			accepted++
		}
	}
	return accepted
}

func TestDefaultLayoutIsEmptyMainSection(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	sections := h.panel.Sections()
	if len(sections) != 1 || sections[0].Key != "main" || len(sections[0].Buttons) != 0 {
		t.Fatalf("unexpected default layout: %+v", sections)
	}
}

func TestActivateCycleDrivesCountdown(t *testing.T) {
	t.Parallel()
	h := newHarness(t, service.Seed{Name: "Main", Buttons: 1})
	ref := dto.ActivateInput{SectionKey: "main", ButtonID: 1}

	wantValues := []int{5, 4, 3, 2, 1}
	for i, want := range wantValues {
		h.clock.Advance(700 * time.Millisecond)
		out, err := h.panel.Activate(ref)
		if err != nil {
			t.Fatalf("activate %d: %v", i, err)
		}
		if out.Button.Value != want || !out.Button.Armed || out.Command != "restart" {
			t.Fatalf("activate %d: unexpected output %+v", i, out)
		}
		snap := h.countdown.Snapshot()
		if !snap.Running || snap.Elapsed != 0 {
			t.Fatalf("activate %d: countdown should restart from zero, got %+v", i, snap)
		}
	}

	out, err := h.panel.Activate(ref)
	if err != nil {
		t.Fatalf("final activate: %v", err)
	}
	if out.Button.Value != 5 || out.Button.Armed || out.Command != "halt" {
		t.Fatalf("expected button reset to unarmed 5, got %+v", out)
	}
	snap := h.countdown.Snapshot()
	if snap.Running {
		t.Fatalf("countdown must not start when a button reaches zero")
	}
	if h.board.Display() != countdowndomain.ZeroDisplay {
		t.Fatalf("expected blank display, got %q", h.board.Display())
	}
	if len(snap.EndTimes) != 0 {
		t.Fatalf("button activations must not record end times, got %v", snap.EndTimes)
	}
}

func TestActivateUnknownButtonLeavesCountdownAlone(t *testing.T) {
	t.Parallel()
	h := newHarness(t, service.Seed{Name: "Main", Buttons: 1})
	h.countdown.Start()
	live := h.countdown.Snapshot().LiveTick

	if _, err := h.panel.Activate(dto.ActivateInput{SectionKey: "main", ButtonID: 7}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if h.countdown.Snapshot().LiveTick != live {
		t.Fatalf("failed activation must not interrupt the countdown")
	}
}

func TestRapidActivationsLeaveOneLiveTick(t *testing.T) {
	t.Parallel()
	h := newHarness(t, service.Seed{Name: "Main", Buttons: 2})
	if _, err := h.panel.Activate(dto.ActivateInput{SectionKey: "main", ButtonID: 1}); err != nil {
		t.Fatalf("activate first: %v", err)
	}
	if _, err := h.panel.Activate(dto.ActivateInput{SectionKey: "main", ButtonID: 2}); err != nil {
		t.Fatalf("activate second: %v", err)
	}
	if got := h.liveTicks(); got != 1 {
		t.Fatalf("expected exactly one live tick, got %d", got)
	}
	first := h.scheduler.handles[0]
	if h.countdown.Tick(uint64(first)) {
		t.Fatalf("tick from the first activation must be dropped")
	}
}

func TestGenerateRejectsInvalidCounts(t *testing.T) {
	t.Parallel()
	h := newHarness(t, service.Seed{Name: "Main", Buttons: 2})
	if _, err := h.panel.Activate(dto.ActivateInput{SectionKey: "main", ButtonID: 1}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	for _, raw := range []string{"-3", "abc", "0"} {
		if _, err := h.panel.Generate(dto.GenerateInput{SectionKey: "main", Count: raw}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("Generate(%q): expected invalid input, got %v", raw, err)
		}
	}
	buttons := h.panel.Sections()[0].Buttons
	if len(buttons) != 2 || !buttons[0].Armed {
		t.Fatalf("rejected generate must leave buttons untouched, got %+v", buttons)
	}

	out, err := h.panel.Generate(dto.GenerateInput{SectionKey: "main", Count: "4"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out.Buttons) != 4 || out.Buttons[0].Armed || out.Buttons[3].ID != 4 {
		t.Fatalf("expected four fresh buttons, got %+v", out.Buttons)
	}
}

func TestAddAndDeleteSections(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	added, err := h.panel.AddSection(dto.AddSectionInput{Name: "Cool Down", Count: "3"})
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if added.Key != "cool-down" || len(added.Buttons) != 3 {
		t.Fatalf("unexpected section %+v", added)
	}
	if _, err := h.panel.AddSection(dto.AddSectionInput{Name: "cool down", Count: "1"}); !errors.Is(err, apperrors.ErrDuplicateSection) {
		t.Fatalf("expected duplicate section, got %v", err)
	}
	if _, err := h.panel.AddSection(dto.AddSectionInput{Name: "Sprint", Count: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid count, got %v", err)
	}
	if err := h.panel.DeleteSection("main"); err != nil {
		t.Fatalf("delete main: %v", err)
	}
	if err := h.panel.DeleteSection("cool-down"); !errors.Is(err, apperrors.ErrLastSection) {
		t.Fatalf("expected last section error, got %v", err)
	}
	if got := h.panel.Sections(); len(got) != 1 || got[0].Key != "cool-down" {
		t.Fatalf("unexpected sections after delete: %+v", got)
	}
}
