package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trainer/internal/modules/account/domain"
	accountout "trainer/internal/modules/account/port/out"
	apperrors "trainer/internal/platform/errors"
)

type FileActiveUserStore struct {
	path string
}

func NewFileActiveUserStore(path string) accountout.ActiveUserStore {
	return &FileActiveUserStore{path: path}
}

func (s *FileActiveUserStore) SaveActive(_ context.Context, user domain.ActiveUser) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active user dir: %w", err)
	}
	payload, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active user: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write active user: %w", err)
	}
	return nil
}

func (s *FileActiveUserStore) LoadActive(_ context.Context) (domain.ActiveUser, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveUser{}, apperrors.ErrNoActiveUser
		}
		return domain.ActiveUser{}, fmt.Errorf("read active user: %w", err)
	}
	active := domain.ActiveUser{}
	if err := json.Unmarshal(payload, &active); err != nil {
		return domain.ActiveUser{}, fmt.Errorf("decode active user: %w", err)
	}
	if active.Username == "" {
		return domain.ActiveUser{}, apperrors.ErrNoActiveUser
	}
	return active, nil
}

func (s *FileActiveUserStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active user: %w", err)
	}
	return nil
}
