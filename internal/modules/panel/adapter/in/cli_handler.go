package in

import (
	"trainer/internal/modules/panel/dto"
	panelin "trainer/internal/modules/panel/port/in"
)

type CLIHandler struct {
	usecase panelin.Usecase
}

func NewCLIHandler(usecase panelin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sections() []dto.SectionOutput {
	return h.usecase.Sections()
}
