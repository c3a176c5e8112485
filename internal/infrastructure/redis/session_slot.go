package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

type slotRecord struct {
	Value   string    `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

// SessionSlot keeps the persisted identity under a single redis key.
type SessionSlot struct {
	rdb goredis.Cmdable
	key string
	ttl time.Duration
}

var _ repository.SessionSlot = (*SessionSlot)(nil)

// NewSessionSlot stores under key; a ttl of 0 keeps the value until cleared.
func NewSessionSlot(rdb goredis.Cmdable, key string, ttl time.Duration) *SessionSlot {
	return &SessionSlot{rdb: rdb, key: key, ttl: ttl}
}

func (s *SessionSlot) Load(ctx context.Context) (string, bool, error) {
	var rec slotRecord
	ok, err := helpers.RedisGetJSON(ctx, s.rdb, s.key, &rec)
	if err != nil {
		return "", false, fmt.Errorf("load session slot %q: %w", s.key, err)
	}
	return rec.Value, ok, nil
}

func (s *SessionSlot) Save(ctx context.Context, value string) error {
	rec := slotRecord{Value: value, SavedAt: time.Now().UTC()}
	if err := helpers.RedisSetJSON(ctx, s.rdb, s.key, rec, s.ttl); err != nil {
		return fmt.Errorf("save session slot %q: %w", s.key, err)
	}
	return nil
}

func (s *SessionSlot) Clear(ctx context.Context) error {
	if err := helpers.RedisDel(ctx, s.rdb, s.key); err != nil {
		return fmt.Errorf("clear session slot %q: %w", s.key, err)
	}
	return nil
}
