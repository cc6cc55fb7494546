package in

import (
	"context"

	"trainer/internal/modules/countdown/dto"
	countdownin "trainer/internal/modules/countdown/port/in"
)

type CLIHandler struct {
	usecase countdownin.Usecase
}

func NewCLIHandler(usecase countdownin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, durationSeconds string) (dto.RunOutput, error) {
	if durationSeconds != "" {
		if err := h.usecase.SetDuration(durationSeconds); err != nil {
			return dto.RunOutput{}, err
		}
	}
	return h.usecase.Run(ctx)
}

func (h CLIHandler) Format(rawSeconds string) (string, error) {
	return h.usecase.Format(rawSeconds)
}
