package domain

import (
	"fmt"
	"time"
)

const (
	DefaultDuration     = 10 * time.Second
	DefaultTickInterval = 100 * time.Millisecond
	ZeroDisplay         = "00:00:00"
	ClockLayout         = "15:04:05"
)

// TickHandle identifies one scheduled tick chain. NoTick means nothing is scheduled.
type TickHandle uint64

const NoTick TickHandle = 0

// Target names a render surface.
type Target string

const (
	TargetDisplay Target = "display"
	TargetResult  Target = "result"
)

// TimerState is owned by the engine and mutated only by its operations.
type TimerState struct {
	Elapsed time.Duration
	Running bool
	Handle  TickHandle
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Remaining int
	Running   bool
	Handle    TickHandle
	EndTimes  []time.Time
}

// Format renders whole seconds as HH:MM:SS. Negative input is clamped to zero.
func Format(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// RemainingSeconds is the whole-second countdown value shown for elapsed time.
// Partial seconds of elapsed time do not count yet.
func RemainingSeconds(duration, elapsed time.Duration) int {
	return int(duration/time.Second) - int(elapsed/time.Second)
}

// EndTimeLog records when the countdown was stopped. Append-only until cleared.
type EndTimeLog struct {
	entries []time.Time
}

func (l *EndTimeLog) Append(at time.Time) {
	l.entries = append(l.entries, at)
}

func (l *EndTimeLog) Clear() {
	l.entries = nil
}

func (l EndTimeLog) Len() int {
	return len(l.entries)
}

func (l EndTimeLog) Entries() []time.Time {
	return append([]time.Time(nil), l.entries...)
}

func (l EndTimeLog) Last() (time.Time, bool) {
	if len(l.entries) == 0 {
		return time.Time{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// FormatClock renders a stop instant in local wall-clock time.
func FormatClock(at time.Time) string {
	return at.Local().Format(ClockLayout)
}
