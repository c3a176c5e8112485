package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/oksasatya/digitalhub/pkg/helpers"
)

// Runs against a real database when TEST_DATABASE_URL is set.
func TestSessionSlot(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if err := RunMigrations(dsn, "../../../db/migrations", helpers.NewDiscardLogger()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, dsn, PoolOptions{MaxConns: 2, MinConns: 1, MaxConnLife: time.Minute})
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	slot := NewSessionSlot(pool, "test-"+t.Name())
	if err := slot.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, err := slot.Load(ctx); err != nil || ok {
		t.Fatalf("expected empty slot, ok=%v err=%v", ok, err)
	}
	for _, v := range []string{"first", "second"} {
		if err := slot.Save(ctx, v); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, ok, err := slot.Load(ctx)
	if err != nil || !ok || got != "second" {
		t.Fatalf("expected second, got %q ok=%v err=%v", got, ok, err)
	}
	if err := slot.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
}
