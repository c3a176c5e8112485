package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

var errBackendDown = &repository.TransportError{Method: "GET", Path: "/x", Message: "backend down"}

// stubCollection is an in-memory repository with per-call failure injection.
type stubCollection[T interface{ EntityID() entity.ID }] struct {
	mu      sync.Mutex
	items   []T
	nextID  int
	setID   func(*T, entity.ID)
	listErr error
	getErr  error
	err     error
	calls   int
}

func (s *stubCollection[T]) List(context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubCollection[T]) Get(_ context.Context, id entity.ID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.getErr != nil {
		var zero T
		return zero, s.getErr
	}
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("get %s: %w", id, repository.ErrNotFound)
}

func (s *stubCollection[T]) Create(_ context.Context, v T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	s.nextID++
	s.setID(&v, entity.ID(fmt.Sprintf("srv-%d", s.nextID)))
	s.items = append(s.items, v)
	return v, nil
}

func (s *stubCollection[T]) Update(_ context.Context, id entity.ID, v T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items[i] = v
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("update %s: %w", id, repository.ErrNotFound)
}

func (s *stubCollection[T]) Delete(_ context.Context, id entity.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubCollection[T]) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// gatedStartups holds List and Create until release receives a value.
type gatedStartups struct {
	*stubCollection[entity.Startup]
	entered chan string
	release chan struct{}
}

func (g *gatedStartups) List(ctx context.Context) ([]entity.Startup, error) {
	g.entered <- "list"
	<-g.release
	return g.stubCollection.List(ctx)
}

func (g *gatedStartups) Create(ctx context.Context, v entity.Startup) (entity.Startup, error) {
	g.entered <- "create"
	<-g.release
	return g.stubCollection.Create(ctx, v)
}

type stubEvents struct {
	*stubCollection[entity.Event]
}

func newStubEvents(items ...entity.Event) stubEvents {
	return stubEvents{&stubCollection[entity.Event]{
		items: items,
		setID: func(e *entity.Event, id entity.ID) { e.ID = id },
	}}
}

func (s stubEvents) Join(ctx context.Context, id entity.ID, email string) (entity.Event, error) {
	return s.patch(ctx, id, func(ev entity.Event) []string { return entity.WithParticipant(ev.Participants, email) })
}

func (s stubEvents) Leave(ctx context.Context, id entity.ID, email string) (entity.Event, error) {
	return s.patch(ctx, id, func(ev entity.Event) []string { return entity.WithoutParticipant(ev.Participants, email) })
}

func (s stubEvents) patch(ctx context.Context, id entity.ID, next func(entity.Event) []string) (entity.Event, error) {
	ev, err := s.Get(ctx, id)
	if err != nil {
		return entity.Event{}, err
	}
	ev.Participants = next(ev)
	return s.Update(ctx, id, ev)
}

func newStubStartups(items ...entity.Startup) *stubCollection[entity.Startup] {
	return &stubCollection[entity.Startup]{items: items, setID: func(s *entity.Startup, id entity.ID) { s.ID = id }}
}

func newStubDiscussions(items ...entity.Discussion) *stubCollection[entity.Discussion] {
	return &stubCollection[entity.Discussion]{items: items, setID: func(d *entity.Discussion, id entity.ID) { d.ID = id }}
}

type stubAccounts struct {
	accounts []entity.Account
	err      error
}

func (s *stubAccounts) Create(_ context.Context, a entity.Account) (entity.Account, error) {
	if s.err != nil {
		return entity.Account{}, s.err
	}
	a.ID = entity.ID(fmt.Sprintf("u-%d", len(s.accounts)+1))
	s.accounts = append(s.accounts, a)
	return a, nil
}

func (s *stubAccounts) Authenticate(_ context.Context, email, password string) (entity.Account, error) {
	if s.err != nil {
		return entity.Account{}, s.err
	}
	for _, a := range s.accounts {
		if a.Email == email && a.Password == password {
			return a, nil
		}
	}
	return entity.Account{}, fmt.Errorf("login %s: %w", email, repository.ErrAuthentication)
}

type memorySlot struct {
	raw   string
	set   bool
	saves int
}

func (m *memorySlot) Load(context.Context) (string, bool, error) { return m.raw, m.set, nil }

func (m *memorySlot) Save(_ context.Context, raw string) error {
	m.raw, m.set = raw, true
	m.saves++
	return nil
}

func (m *memorySlot) Clear(context.Context) error {
	m.raw, m.set = "", false
	return nil
}

// plainCodec stores "email|role|name".
type plainCodec struct{}

func (plainCodec) Encode(a entity.Account) (string, error) {
	return a.Email + "|" + string(a.Role) + "|" + a.Name, nil
}

func (plainCodec) Decode(s string) (entity.Account, error) {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	if len(parts) != 3 {
		return entity.Account{}, errors.New("malformed identity")
	}
	return entity.Account{Email: parts[0], Role: entity.Role(parts[1]), Name: parts[2]}, nil
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingNotifier) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}

type fixture struct {
	store       *Store
	startups    *stubCollection[entity.Startup]
	events      stubEvents
	discussions *stubCollection[entity.Discussion]
	accounts    *stubAccounts
	slot        *memorySlot
	notes       *recordingNotifier
}

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		startups:    newStubStartups(),
		events:      newStubEvents(),
		discussions: newStubDiscussions(),
		accounts: &stubAccounts{accounts: []entity.Account{
			{ID: "1", Name: "Admin", Email: "admin@x.ma", Password: "admin123", Role: entity.RoleAdmin},
			{ID: "2", Name: "Founder", Email: "founder@x.ma", Password: "startup123", Role: entity.RoleStartup},
			{ID: "3", Name: "Visitor", Email: "visitor@x.ma", Password: "visitor123", Role: entity.RoleVisitor},
		}},
		slot:  &memorySlot{},
		notes: &recordingNotifier{},
	}
	f.store = NewStore(Deps{
		Startups:     f.startups,
		Events:       f.events,
		Discussions:  f.discussions,
		Accounts:     f.accounts,
		SessionSlot:  f.slot,
		SessionCodec: plainCodec{},
		Notifier:     f.notes,
		Now:          func() time.Time { return fixedNow },
	})
	return f
}

func (f *fixture) login(t interface{ Fatalf(string, ...any) }, email, password string) entity.Account {
	acc, err := f.store.Session.Login(context.Background(), LoginInput{Email: email, Password: password})
	if err != nil {
		f.store.Session.ClearError()
		t.Fatalf("login %s: %v", email, err)
	}
	return acc
}
