package out

import (
	countdownin "trainer/internal/modules/countdown/port/in"
	panelout "trainer/internal/modules/panel/port/out"
)

type CountdownBridge struct {
	countdown countdownin.Usecase
}

func NewCountdownBridge(countdown countdownin.Usecase) panelout.Countdown {
	return &CountdownBridge{countdown: countdown}
}

func (b *CountdownBridge) Interrupt() { b.countdown.Interrupt() }
func (b *CountdownBridge) Start()     { b.countdown.Start() }
func (b *CountdownBridge) Zero()      { b.countdown.Zero() }
