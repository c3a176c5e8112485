package rest

import (
	"context"
	"sync"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

// EventCollection adds participation changes on top of CRUD.
//
// The backend has no atomic set-add, so Join and Leave read the event and
// patch its participant list. Changes issued through the same collection are
// serialized per event id; writers in other processes can still interleave.
type EventCollection struct {
	*Collection[entity.Event]
	locks keyedMutex
}

func NewEventCollection(c *Client) *EventCollection {
	return &EventCollection{Collection: NewCollection[entity.Event](c, EventsPath)}
}

type participantsPatch struct {
	Participants []string `json:"participants"`
}

// Join adds email to the participants. When email is already registered the
// event is returned as read, without a write.
func (e *EventCollection) Join(ctx context.Context, id entity.ID, email string) (entity.Event, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	ev, err := e.Get(ctx, id)
	if err != nil {
		return entity.Event{}, err
	}
	if ev.HasParticipant(email) {
		return ev, nil
	}
	return e.Patch(ctx, id, participantsPatch{Participants: entity.WithParticipant(ev.Participants, email)})
}

// Leave removes email from the participants. When email is not registered the
// event is returned as read, without a write.
func (e *EventCollection) Leave(ctx context.Context, id entity.ID, email string) (entity.Event, error) {
	unlock := e.locks.lock(id)
	defer unlock()

	ev, err := e.Get(ctx, id)
	if err != nil {
		return entity.Event{}, err
	}
	if !ev.HasParticipant(email) {
		return ev, nil
	}
	return e.Patch(ctx, id, participantsPatch{Participants: entity.WithoutParticipant(ev.Participants, email)})
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[entity.ID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(id entity.ID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[entity.ID]*refMutex)
	}
	m, ok := k.locks[id]
	if !ok {
		m = &refMutex{}
		k.locks[id] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

var _ repository.EventRepository = (*EventCollection)(nil)
