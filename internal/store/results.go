package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"lingvo/internal/game"
)

// UpsertResult stores r, replacing attempts and outcome if the user already
// has a result for that date and language.
func (s *Store) UpsertResult(ctx context.Context, r game.ResultRecord) error {
	insert := sq.Insert("results").
		Columns("user_id", "date", "language", "attempts", "won").
		Values(r.UserID, r.Date, string(r.Language), r.Attempts, r.Won).
		Suffix("ON CONFLICT (user_id, date, language) DO UPDATE SET attempts = excluded.attempts, won = excluded.won")
	if _, err := s.exec(ctx, insert); err != nil {
		return fmt.Errorf("store.UpsertResult: %w", err)
	}
	s.log.Debug("saved result",
		zap.String("user_id", r.UserID),
		zap.String("date", r.Date),
		zap.String("language", string(r.Language)),
		zap.Int("attempts", r.Attempts),
		zap.Bool("won", r.Won))
	return nil
}

// ResultsForUser returns a snapshot of every result stored for userID.
func (s *Store) ResultsForUser(ctx context.Context, userID string) ([]game.ResultRecord, error) {
	query, args, err := sq.Select("user_id", "date", "language", "attempts", "won").
		From("results").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("language", "date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("store.ResultsForUser build: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store.ResultsForUser: %w", err)
	}
	defer rows.Close()

	records := []game.ResultRecord{}
	for rows.Next() {
		var (
			r    game.ResultRecord
			lang string
		)
		if err := rows.Scan(&r.UserID, &r.Date, &lang, &r.Attempts, &r.Won); err != nil {
			return nil, fmt.Errorf("store.ResultsForUser scan: %w", err)
		}
		r.Language = game.Language(lang)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.ResultsForUser rows: %w", err)
	}
	return records, nil
}
