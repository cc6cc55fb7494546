package in

import (
	"context"

	"trainer/internal/modules/account/dto"
)

type Usecase interface {
	Signup(ctx context.Context, input dto.SignupInput) (dto.UserOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.ActiveUserOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.ActiveUserOutput, error)
	RequireAuth(ctx context.Context) (dto.ActiveUserOutput, error)
}
