package in

import (
	"context"

	"trainer/internal/modules/account/dto"
	accountin "trainer/internal/modules/account/port/in"
)

type TUIHandler struct {
	usecase accountin.Usecase
}

func NewTUIHandler(usecase accountin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) RequireAuth(ctx context.Context) (dto.ActiveUserOutput, error) {
	return h.usecase.RequireAuth(ctx)
}

func (h TUIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}
