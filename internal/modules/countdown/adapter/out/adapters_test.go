package out_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	countdownadapter "trainer/internal/modules/countdown/adapter/out"
	"trainer/internal/modules/countdown/domain"
	"trainer/internal/modules/countdown/dto"
)

type recordingNotifier struct{ calls int }

func (r *recordingNotifier) Expired(time.Time) { r.calls++ }

func TestLoopSchedulerKeepsOnlyLatestTick(t *testing.T) {
	t.Parallel()
	queue := countdownadapter.NewLoopScheduler()

	_, _, ok := queue.Next()
	assert.False(t, ok)

	queue.Schedule(1, 100*time.Millisecond)
	queue.Schedule(2, 50*time.Millisecond)
	handle, after, ok := queue.Next()
	require.True(t, ok)
	assert.Equal(t, domain.TickHandle(2), handle)
	assert.Equal(t, 50*time.Millisecond, after)

	_, _, ok = queue.Next()
	assert.False(t, ok, "next must pop the pending tick")
}

func TestTeaSchedulerDrainsTickMessages(t *testing.T) {
	t.Parallel()
	sched := countdownadapter.NewTeaScheduler()
	assert.Nil(t, sched.Drain())

	sched.Schedule(7, time.Millisecond)
	sched.Schedule(8, time.Millisecond)
	assert.Equal(t, 2, sched.Pending())

	cmd := sched.Drain()
	require.NotNil(t, cmd)
	assert.Equal(t, 0, sched.Pending())

	var handles []uint64
	collectTicks(t, cmd, &handles)
	assert.ElementsMatch(t, []uint64{7, 8}, handles)
}

func collectTicks(t *testing.T, cmd tea.Cmd, handles *[]uint64) {
	t.Helper()
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, inner := range msg {
			collectTicks(t, inner, handles)
		}
	case dto.TickMsg:
		*handles = append(*handles, msg.Handle)
	default:
		t.Fatalf("unexpected message %T", msg)
	}
}

func TestBoardTracksTargetsAndSwallowsUnknown(t *testing.T) {
	t.Parallel()
	next := &recordingNotifier{}
	board := countdownadapter.NewBoard("00:00:10", next, zerolog.Nop())
	assert.Equal(t, "00:00:10", board.Display())

	board.Render(domain.TargetDisplay, "00:00:09")
	board.Render(domain.Target("sidebar"), "ignored")
	assert.Equal(t, "00:00:09", board.Display())
	assert.Equal(t, "", board.Result())

	at := time.Date(2026, 10, 18, 14, 30, 5, 0, time.Local)
	board.Expired(at)
	assert.Equal(t, 1, board.Expirations())
	assert.Equal(t, "Finished at: 14:30:05", board.Result())
	assert.Equal(t, 1, next.calls)
}

func TestWriterRendererLineMode(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := countdownadapter.NewWriterRenderer(&buf, false)
	r.Render(domain.TargetDisplay, "00:00:10")
	r.Render(domain.TargetDisplay, "00:00:10")
	r.Render(domain.TargetDisplay, "00:00:09")
	r.Render(domain.TargetResult, "")
	r.Render(domain.TargetResult, "Stopped at: 09:00:00")
	r.Render(domain.Target("unknown"), "nope")
	assert.Equal(t, "00:00:10\n00:00:09\nStopped at: 09:00:00\n", buf.String())
}

func TestWriterRendererInPlaceMode(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := countdownadapter.NewWriterRenderer(&buf, true)
	r.Render(domain.TargetDisplay, "00:00:02")
	r.Render(domain.TargetDisplay, "00:00:01")
	r.Render(domain.TargetResult, "Stopped at: 09:00:00")
	assert.Equal(t, "\r00:00:02\r00:00:01\nStopped at: 09:00:00\n", buf.String())
}

func TestWriterRendererNilWriterIsNoop(t *testing.T) {
	t.Parallel()
	r := countdownadapter.NewWriterRenderer(nil, false)
	assert.NotPanics(t, func() { r.Render(domain.TargetDisplay, "00:00:01") })
}

func TestLogNotifierWritesFinishedLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := countdownadapter.NewLogNotifier(zerolog.New(&buf))
	n.Expired(time.Now())
	assert.Contains(t, buf.String(), "timer finished")
}

func TestBellNotifierRingsAndForwards(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	next := &recordingNotifier{}
	countdownadapter.NewBellNotifier(&buf, next).Expired(time.Now())
	assert.Equal(t, "\a", buf.String())
	assert.Equal(t, 1, next.calls)

	countdownadapter.NewBellNotifier(nil, nil).Expired(time.Now())
}
