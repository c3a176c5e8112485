package repository

import (
	"context"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
)

// CollectionRepository is the CRUD contract of one backend resource collection.
type CollectionRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id entity.ID) (T, error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id entity.ID, payload T) (T, error)
	Delete(ctx context.Context, id entity.ID) error
}

type StartupRepository interface {
	CollectionRepository[entity.Startup]
}

// EventRepository adds participation changes. Join and Leave return the
// backend's canonical event after the change.
type EventRepository interface {
	CollectionRepository[entity.Event]
	Join(ctx context.Context, id entity.ID, email string) (entity.Event, error)
	Leave(ctx context.Context, id entity.ID, email string) (entity.Event, error)
}

type DiscussionRepository interface {
	CollectionRepository[entity.Discussion]
}

// AccountRepository covers registration and credential lookup.
type AccountRepository interface {
	Create(ctx context.Context, a entity.Account) (entity.Account, error)
	// Authenticate returns the first account matching email and password,
	// or ErrAuthentication when none does.
	Authenticate(ctx context.Context, email, password string) (entity.Account, error)
}

// SessionSlot is the single durable key holding the serialized current identity.
type SessionSlot interface {
	Load(ctx context.Context) (value string, ok bool, err error)
	Save(ctx context.Context, value string) error
	Clear(ctx context.Context) error
}
