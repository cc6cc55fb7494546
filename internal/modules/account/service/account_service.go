package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"trainer/internal/modules/account/domain"
	accountout "trainer/internal/modules/account/port/out"
	"trainer/internal/platform/clock"
	apperrors "trainer/internal/platform/errors"
	"trainer/internal/platform/id"
)

type AccountService struct {
	clock    clock.Clock
	idGen    id.Generator
	users    accountout.UserStore
	hashCost int
	log      zerolog.Logger
}

// NewAccountService hashes passwords with bcrypt at hashCost; zero selects bcrypt.DefaultCost.
func NewAccountService(clk clock.Clock, idGen id.Generator, users accountout.UserStore, hashCost int, logger zerolog.Logger) *AccountService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &AccountService{
		clock:    clk,
		idGen:    idGen,
		users:    users,
		hashCost: hashCost,
		log:      logger.With().Str("component", "account").Logger(),
	}
}

func (s *AccountService) Register(ctx context.Context, signup domain.Signup) (domain.User, error) {
	signup.Username = domain.NormalizeUsername(signup.Username)
	if err := signup.Validate(); err != nil {
		return domain.User{}, err
	}
	exists, err := s.exists(ctx, signup.Username)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, fmt.Errorf("%w: username already exists, please choose another one", apperrors.ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(signup.Password), s.hashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		ID:           s.idGen.New(),
		Username:     signup.Username,
		Email:        signup.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	s.log.Info().Str("username", user.Username).Msg("account created")
	return user, nil
}

// Authenticate accepts the built-in demo account or a stored user whose hash matches.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.ActiveUser, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return domain.ActiveUser{}, fmt.Errorf("%w: please fill in all fields", apperrors.ErrInvalidInput)
	}
	if domain.IsDemo(username) {
		if password != domain.DemoPassword {
			return domain.ActiveUser{}, apperrors.ErrInvalidCredentials
		}
		return s.activate(username), nil
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ActiveUser{}, apperrors.ErrInvalidCredentials
		}
		return domain.ActiveUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return domain.ActiveUser{}, apperrors.ErrInvalidCredentials
	}
	return s.activate(user.Username), nil
}

func (s *AccountService) activate(username string) domain.ActiveUser {
	return domain.ActiveUser{Username: username, Name: username, LoggedInAt: s.clock.Now().UTC()}
}

func (s *AccountService) exists(ctx context.Context, username string) (bool, error) {
	if domain.IsDemo(username) {
		return true, nil
	}
	return s.users.Exists(ctx, username)
}
