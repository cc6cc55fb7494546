package out

import (
	"context"

	"trainer/internal/modules/account/domain"
)

type UserStore interface {
	Create(ctx context.Context, user domain.User) error
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type ActiveUserStore interface {
	SaveActive(ctx context.Context, user domain.ActiveUser) error
	LoadActive(ctx context.Context) (domain.ActiveUser, error)
	ClearActive(ctx context.Context) error
}
