package usecase

import (
	"context"
	"errors"
	"fmt"

	"trainer/internal/modules/account/domain"
	"trainer/internal/modules/account/dto"
	accountin "trainer/internal/modules/account/port/in"
	accountout "trainer/internal/modules/account/port/out"
	"trainer/internal/modules/account/service"
	apperrors "trainer/internal/platform/errors"
)

type Interactor struct {
	svc    *service.AccountService
	active accountout.ActiveUserStore
}

func NewInteractor(svc *service.AccountService, active accountout.ActiveUserStore) accountin.Usecase {
	return &Interactor{svc: svc, active: active}
}

func (i *Interactor) Signup(ctx context.Context, input dto.SignupInput) (dto.UserOutput, error) {
	user, err := i.svc.Register(ctx, domain.Signup{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Confirm:  input.Confirm,
	})
	if err != nil {
		return dto.UserOutput{}, err
	}
	return dto.UserOutput{ID: user.ID, Username: user.Username, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.ActiveUserOutput, error) {
	active, err := i.svc.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return dto.ActiveUserOutput{}, err
	}
	if err := i.active.SaveActive(ctx, active); err != nil {
		return dto.ActiveUserOutput{}, err
	}
	return toActiveOutput(active), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.active.ClearActive(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.ActiveUserOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return dto.ActiveUserOutput{}, err
	}
	return toActiveOutput(active), nil
}

// RequireAuth gates the interactive session on a signed-in user.
func (i *Interactor) RequireAuth(ctx context.Context) (dto.ActiveUserOutput, error) {
	out, err := i.Current(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveUser) {
			return dto.ActiveUserOutput{}, fmt.Errorf("%w: run `trainer account login` first", err)
		}
		return dto.ActiveUserOutput{}, err
	}
	return out, nil
}

func toActiveOutput(active domain.ActiveUser) dto.ActiveUserOutput {
	return dto.ActiveUserOutput{
		Username:   active.Username,
		Name:       active.Name,
		LoggedInAt: active.LoggedInAt,
		Greeting:   fmt.Sprintf("Welcome, %s!", active.Name),
	}
}
