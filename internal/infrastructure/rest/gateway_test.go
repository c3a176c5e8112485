package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

func TestListPreservesBackendOrder(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.seed("startups",
		map[string]any{"id": "3", "name": "Tours"},
		map[string]any{"id": 1, "name": "AI Labs"},
		map[string]any{"id": "2", "name": "PayGo"},
	)
	gw := NewGateway(cli)

	items, err := gw.Startups.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []entity.ID{"3", "1", "2"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("item %d: expected id %q, got %q", i, id, items[i].ID)
		}
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	_, cli := newFakeBackend(t)
	gw := NewGateway(cli)

	_, err := gw.Discussions.Get(context.Background(), "nope")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNonSuccessStatusIsTransportFailure(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.fail["GET /events"] = 500
	gw := NewGateway(cli)

	_, err := gw.Events.List(context.Background())
	if !errors.Is(err, repository.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	var te *repository.TransportError
	if !errors.As(err, &te) || te.Status != 500 || te.Message != "forced failure" {
		t.Fatalf("unexpected transport detail: %+v", te)
	}
}

func TestUnreachableBackendIsTransportFailure(t *testing.T) {
	cli, err := New("127.0.0.1:1")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = NewGateway(cli).Startups.List(context.Background())
	if !errors.Is(err, repository.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	_, cli := newFakeBackend(t)
	gw := NewGateway(cli)
	ctx := context.Background()

	created, err := gw.Startups.Create(ctx, entity.Startup{Name: "PayGo", Sector: entity.SectorFintech, Tags: []string{"pay"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected backend-assigned id")
	}

	created.Employees = 12
	updated, err := gw.Startups.Update(ctx, created.ID, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Employees != 12 || updated.Name != "PayGo" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := gw.Startups.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := gw.Startups.Get(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestJoinDoesNotDuplicate(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.seed("events", map[string]any{"id": "e1", "title": "Demo day", "participants": []any{"a@x.ma"}})
	gw := NewGateway(cli)
	ctx := context.Background()

	ev, err := gw.Events.Join(ctx, "e1", "b@x.ma")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(ev.Participants) != 2 || ev.Participants[1] != "b@x.ma" {
		t.Fatalf("unexpected participants: %v", ev.Participants)
	}

	ev, err = gw.Events.Join(ctx, "e1", "b@x.ma")
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if len(ev.Participants) != 2 {
		t.Fatalf("second join duplicated participant: %v", ev.Participants)
	}
	if fb.patches != 1 {
		t.Fatalf("expected a single patch, got %d", fb.patches)
	}
}

func TestLeaveAbsentParticipantLeavesListUnchanged(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.seed("events", map[string]any{"id": "e1", "participants": []any{"a@x.ma"}})
	gw := NewGateway(cli)

	ev, err := gw.Events.Leave(context.Background(), "e1", "ghost@x.ma")
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if len(ev.Participants) != 1 || ev.Participants[0] != "a@x.ma" {
		t.Fatalf("participants changed: %v", ev.Participants)
	}

	ev, err = gw.Events.Leave(context.Background(), "e1", "a@x.ma")
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if len(ev.Participants) != 0 {
		t.Fatalf("expected empty participants, got %v", ev.Participants)
	}
}

func TestConcurrentJoinsKeepEveryParticipant(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.seed("events", map[string]any{"id": "e1", "participants": []any{}})
	gw := NewGateway(cli)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := gw.Events.Join(context.Background(), "e1", fmt.Sprintf("u%d@x.ma", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("join: %v", err)
	}

	ev, err := gw.Events.Get(context.Background(), "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(ev.Participants) != n {
		t.Fatalf("expected %d participants, got %v", n, ev.Participants)
	}
}

func TestAuthenticate(t *testing.T) {
	fb, cli := newFakeBackend(t)
	fb.seed("users", map[string]any{"id": "1", "name": "Admin", "email": "admin@x.ma", "password": "admin123", "role": "admin"})
	gw := NewGateway(cli)
	ctx := context.Background()

	acc, err := gw.Accounts.Authenticate(ctx, "admin@x.ma", "admin123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if acc.Role != entity.RoleAdmin || acc.ID != "1" {
		t.Fatalf("unexpected account: %+v", acc)
	}

	_, err = gw.Accounts.Authenticate(ctx, "admin@x.ma", "wrong")
	if !errors.Is(err, repository.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
	if errors.Is(err, repository.ErrTransport) {
		t.Fatal("zero matches must not be a transport failure")
	}
}

func TestAuthenticateTakesFirstBackendMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") != "Admin@X.ma" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"email":"admin@x.ma","role":"admin"},{"id":2,"email":"admin@x.ma","role":"visiteur"}]`))
	}))
	defer srv.Close()
	cli, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	acc, err := NewAccountCollection(cli).Authenticate(context.Background(), "Admin@X.ma", "admin123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if acc.ID != "1" || acc.Role != entity.RoleAdmin {
		t.Fatalf("expected first match, got %+v", acc)
	}
}
