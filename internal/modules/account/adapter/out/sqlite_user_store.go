package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trainer/internal/modules/account/domain"
	apperrors "trainer/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(dbPath string) (*SQLiteUserStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteUserStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteUserStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Create inserts a user. A taken username reports ErrUserExists.
func (s *SQLiteUserStore) Create(ctx context.Context, user domain.User) error {
	const stmt = `
INSERT INTO users (id, username, email, password_hash, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(username) DO NOTHING;
`
	res, err := s.db.ExecContext(ctx, stmt,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", apperrors.ErrUserExists, user.Username)
	}
	return nil
}

func (s *SQLiteUserStore) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`
	var (
		user      domain.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
		}
		return domain.User{}, fmt.Errorf("query user: %w", err)
	}
	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse created_at: %w", err)
	}
	user.CreatedAt = parsed
	return user, nil
}

func (s *SQLiteUserStore) Exists(ctx context.Context, username string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&count); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteUserStore) Close() error {
	return s.db.Close()
}
