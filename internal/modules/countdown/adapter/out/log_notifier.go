package out

import (
	"time"

	"github.com/rs/zerolog"

	countdownout "trainer/internal/modules/countdown/port/out"
)

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) countdownout.Notifier {
	return LogNotifier{log: logger}
}

func (n LogNotifier) Expired(at time.Time) {
	n.log.Info().Str("component", "countdown").Time("at", at).Msg("timer finished")
}
