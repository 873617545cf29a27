package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lingvo/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "test.sqlite"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.CreateUser(ctx, " Player@Example.com ", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "player@example.com", u.Email)

	got, err := s.UserByEmail(ctx, "PLAYER@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	_, err = s.CreateUser(ctx, "player@example.com", "other")
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.UserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	u, err := s.CreateUser(ctx, "a@example.com", "hash")
	require.NoError(t, err)
	other, err := s.CreateUser(ctx, "b@example.com", "hash")
	require.NoError(t, err)

	records := []game.ResultRecord{
		{UserID: u.ID, Date: "2024-03-02", Language: "en", Attempts: 4, Won: true},
		{UserID: u.ID, Date: "2024-03-01", Language: "en", Attempts: 3, Won: true},
		{UserID: u.ID, Date: "2024-03-01", Language: "es", Attempts: game.LossAttempts, Won: false},
		{UserID: other.ID, Date: "2024-03-01", Language: "en", Attempts: 1, Won: true},
	}
	for _, r := range records {
		require.NoError(t, s.UpsertResult(ctx, r))
	}

	// Resubmitting the same day and language overwrites the earlier result.
	require.NoError(t, s.UpsertResult(ctx, game.ResultRecord{UserID: u.ID, Date: "2024-03-02", Language: "en", Attempts: game.LossAttempts, Won: false}))

	got, err := s.ResultsForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []game.ResultRecord{
		{UserID: u.ID, Date: "2024-03-01", Language: "en", Attempts: 3, Won: true},
		{UserID: u.ID, Date: "2024-03-02", Language: "en", Attempts: game.LossAttempts, Won: false},
		{UserID: u.ID, Date: "2024-03-01", Language: "es", Attempts: game.LossAttempts, Won: false},
	}, got)

	stats := game.ComputeStats(got, []game.Language{"en", "es", "fr"})
	assert.Equal(t, 2, stats["en"].Total)
	assert.Equal(t, 1, stats["en"].Wins)
	assert.Equal(t, 1, stats["en"].MaxStreak)

	none, err := s.ResultsForUser(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpsertResultRejectsUnknownUser(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	err := s.UpsertResult(context.Background(), game.ResultRecord{UserID: "ghost", Date: "2024-03-01", Language: "en", Attempts: 2, Won: true})
	require.Error(t, err)
}
