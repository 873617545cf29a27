package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// User is an account row.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var userColumns = []string{"id", "email", "password_hash", "created_at"}

// CreateUser inserts a new account. Emails are compared case-insensitively.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (User, error) {
	u := User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}

	insert := sq.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.PasswordHash, u.CreatedAt.Format(time.RFC3339))
	if _, err := s.exec(ctx, insert); err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && isConstraint(se.Code()) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("store.CreateUser: %w", err)
	}

	s.log.Info("created user", zap.String("user_id", u.ID))
	return u, nil
}

// UserByEmail looks up an account by email.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	query, args, err := sq.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": normalizeEmail(email)}).
		ToSql()
	if err != nil {
		return User{}, fmt.Errorf("store.UserByEmail build: %w", err)
	}

	var (
		u         User
		createdAt string
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("store.UserByEmail: %w", err)
	}
	if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return User{}, fmt.Errorf("store.UserByEmail created_at: %w", err)
	}
	return u, nil
}

func isConstraint(code int) bool {
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
