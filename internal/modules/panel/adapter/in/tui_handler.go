package in

import (
	"trainer/internal/modules/panel/dto"
	panelin "trainer/internal/modules/panel/port/in"
)

type TUIHandler struct {
	usecase panelin.Usecase
}

func NewTUIHandler(usecase panelin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Sections() []dto.SectionOutput {
	return h.usecase.Sections()
}

func (h TUIHandler) Generate(sectionKey, count string) (dto.SectionOutput, error) {
	return h.usecase.Generate(dto.GenerateInput{SectionKey: sectionKey, Count: count})
}

func (h TUIHandler) AddSection(name, count string) (dto.SectionOutput, error) {
	return h.usecase.AddSection(dto.AddSectionInput{Name: name, Count: count})
}

func (h TUIHandler) DeleteSection(key string) error {
	return h.usecase.DeleteSection(key)
}

func (h TUIHandler) Activate(sectionKey string, buttonID int) (dto.ActivateOutput, error) {
	return h.usecase.Activate(dto.ActivateInput{SectionKey: sectionKey, ButtonID: buttonID})
}
