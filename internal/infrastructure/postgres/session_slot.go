package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

// SessionSlot keeps the persisted identity in one row of session_slots.
type SessionSlot struct {
	pool *pgxpool.Pool
	key  string
}

var _ repository.SessionSlot = (*SessionSlot)(nil)

func NewSessionSlot(pool *pgxpool.Pool, key string) *SessionSlot {
	return &SessionSlot{pool: pool, key: key}
}

func (s *SessionSlot) Load(ctx context.Context) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM session_slots WHERE key = $1`, s.key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load session slot %q: %w", s.key, err)
	}
	return value, true, nil
}

func (s *SessionSlot) Save(ctx context.Context, value string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO session_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		s.key, value)
	if err != nil {
		return fmt.Errorf("save session slot %q: %w", s.key, err)
	}
	return nil
}

func (s *SessionSlot) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM session_slots WHERE key = $1`, s.key); err != nil {
		return fmt.Errorf("clear session slot %q: %w", s.key, err)
	}
	return nil
}
