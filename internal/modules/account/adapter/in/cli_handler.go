package in

import (
	"context"

	"trainer/internal/modules/account/dto"
	accountin "trainer/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Signup(ctx context.Context, username, email, password, confirm string) (dto.UserOutput, error) {
	return h.usecase.Signup(ctx, dto.SignupInput{Username: username, Email: email, Password: password, Confirm: confirm})
}

func (h CLIHandler) Login(ctx context.Context, username, password string) (dto.ActiveUserOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (dto.ActiveUserOutput, error) {
	return h.usecase.Current(ctx)
}
