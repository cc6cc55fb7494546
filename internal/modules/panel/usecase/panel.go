package usecase

import (
	"trainer/internal/modules/panel/domain"
	"trainer/internal/modules/panel/dto"
	panelin "trainer/internal/modules/panel/port/in"
	panelout "trainer/internal/modules/panel/port/out"
	"trainer/internal/modules/panel/service"
)

type Interactor struct {
	panel     *service.Panel
	countdown panelout.Countdown
}

func NewInteractor(panel *service.Panel, countdown panelout.Countdown) panelin.Usecase {
	return &Interactor{panel: panel, countdown: countdown}
}

func (i *Interactor) Sections() []dto.SectionOutput {
	sections := i.panel.Sections()
	out := make([]dto.SectionOutput, 0, len(sections))
	for _, s := range sections {
		out = append(out, toSectionOutput(s))
	}
	return out
}

func (i *Interactor) Generate(input dto.GenerateInput) (dto.SectionOutput, error) {
	section, err := i.panel.Generate(input.SectionKey, input.Count)
	if err != nil {
		return dto.SectionOutput{}, err
	}
	return toSectionOutput(section), nil
}

func (i *Interactor) AddSection(input dto.AddSectionInput) (dto.SectionOutput, error) {
	section, err := i.panel.AddSection(input.Name, input.Count)
	if err != nil {
		return dto.SectionOutput{}, err
	}
	return toSectionOutput(section), nil
}

func (i *Interactor) DeleteSection(key string) error {
	return i.panel.DeleteSection(key)
}

// Activate cancels whatever countdown is pending before the button changes,
// then restarts it from zero or halts it with a blank display.
func (i *Interactor) Activate(input dto.ActivateInput) (dto.ActivateOutput, error) {
	if _, err := i.panel.Lookup(input.SectionKey, input.ButtonID); err != nil {
		return dto.ActivateOutput{}, err
	}
	i.countdown.Interrupt()

	cmd, button, err := i.panel.Activate(input.SectionKey, input.ButtonID)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	switch cmd {
	case domain.CommandRestart:
		i.countdown.Start()
	case domain.CommandHalt:
		i.countdown.Zero()
	}
	return dto.ActivateOutput{Button: toButtonOutput(button), Command: cmd.String()}, nil
}

func toSectionOutput(s domain.Section) dto.SectionOutput {
	buttons := make([]dto.ButtonOutput, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		buttons = append(buttons, toButtonOutput(b))
	}
	return dto.SectionOutput{Key: s.Key, Name: s.Name, Buttons: buttons}
}

func toButtonOutput(b domain.CounterButton) dto.ButtonOutput {
	return dto.ButtonOutput{ID: b.ID, Value: b.Value, Armed: b.Armed, Phase: string(b.Phase())}
}
