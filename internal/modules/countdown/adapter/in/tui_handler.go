package in

import (
	"trainer/internal/modules/countdown/dto"
	countdownin "trainer/internal/modules/countdown/port/in"
)

type TUIHandler struct {
	usecase countdownin.Usecase
}

func NewTUIHandler(usecase countdownin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start()                       { h.usecase.Start() }
func (h TUIHandler) Stop()                        { h.usecase.Stop() }
func (h TUIHandler) Reset()                       { h.usecase.Reset() }
func (h TUIHandler) Toggle()                      { h.usecase.Toggle() }
func (h TUIHandler) Tick(msg dto.TickMsg) bool    { return h.usecase.Tick(msg.Handle) }
func (h TUIHandler) SetDuration(raw string) error { return h.usecase.SetDuration(raw) }
func (h TUIHandler) Snapshot() dto.SnapshotOutput { return h.usecase.Snapshot() }
