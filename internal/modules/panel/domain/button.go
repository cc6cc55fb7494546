package domain

const (
	// MaxValue is the value every counter starts from and returns to.
	MaxValue = 5
	// MaxButtons bounds one section's generate request.
	MaxButtons = 100
)

// Command tells the countdown what an activation asks for.
type Command int

const (
	CommandNone Command = iota
	// CommandRestart starts the countdown again from zero.
	CommandRestart
	// CommandHalt leaves the countdown stopped and blanks the display.
	CommandHalt
)

func (c Command) String() string {
	switch c {
	case CommandRestart:
		return "restart"
	case CommandHalt:
		return "halt"
	default:
		return "none"
	}
}

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCounting Phase = "counting"
)

// CounterButton counts down 5 -> 0 one activation at a time. The first
// activation only arms it; reaching 0 resets it to an unarmed 5.
type CounterButton struct {
	ID    int
	Value int
	Armed bool
}

func NewButton(id int) CounterButton {
	return CounterButton{ID: id, Value: MaxValue}
}

// Activate applies one click and returns the countdown command it implies.
func (b *CounterButton) Activate() Command {
	if b.Value == MaxValue && !b.Armed {
		b.Armed = true
	} else if b.Value > 0 {
		b.Value--
	}

	if b.Value == 0 {
		b.Armed = false
		b.Value = MaxValue
		return CommandHalt
	}
	return CommandRestart
}

func (b CounterButton) Phase() Phase {
	if b.Armed {
		return PhaseCounting
	}
	return PhaseIdle
}
