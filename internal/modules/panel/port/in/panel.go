package in

import "trainer/internal/modules/panel/dto"

type Usecase interface {
	Sections() []dto.SectionOutput
	Generate(input dto.GenerateInput) (dto.SectionOutput, error)
	AddSection(input dto.AddSectionInput) (dto.SectionOutput, error)
	DeleteSection(key string) error
	Activate(input dto.ActivateInput) (dto.ActivateOutput, error)
}
