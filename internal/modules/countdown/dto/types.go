package dto

import "time"

type SnapshotOutput struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Remaining int
	Display   string
	Running   bool
	LiveTick  uint64
	EndTimes  []string
}

// TickMsg is delivered back to the engine when a scheduled tick fires.
type TickMsg struct {
	Handle uint64
	At     time.Time
}

type RunOutput struct {
	Expired  bool
	Elapsed  time.Duration
	EndTimes []string
}
