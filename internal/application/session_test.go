package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

func TestLoginPersistsIdentityWithoutPassword(t *testing.T) {
	f := newFixture()

	acc := f.login(t, "admin@x.ma", "admin123")

	if acc.Password != "" {
		t.Fatal("password must not be kept in the session")
	}
	st := f.store.Session.State()
	if st.Status != SessionAuthenticated || st.Account == nil || st.Account.Role != entity.RoleAdmin {
		t.Fatalf("unexpected session state: %+v", st)
	}
	if f.slot.raw != "admin@x.ma|admin|Admin" {
		t.Fatalf("unexpected persisted identity %q", f.slot.raw)
	}
}

func TestLoginRejectionLeavesAnonymousAndClearsSlot(t *testing.T) {
	f := newFixture()
	f.slot.raw, f.slot.set = "stale|admin|x", true

	_, err := f.store.Session.Login(context.Background(), LoginInput{Email: "admin@x.ma", Password: "nope"})
	if !errors.Is(err, repository.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
	st := f.store.Session.State()
	if st.Status != SessionAnonymous || st.Error != "invalid email or password" {
		t.Fatalf("unexpected session state: %+v", st)
	}
	if f.slot.set {
		t.Fatal("slot must be cleared after rejection")
	}

	f.store.Session.ClearError()
	if f.store.Session.State().Error != "" {
		t.Fatal("expected error cleared")
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	f := newFixture()
	_, err := f.store.Session.Login(context.Background(), LoginInput{Email: "admin@x.ma"})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Details["password"] == "" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestRegisterLogsInNewAccount(t *testing.T) {
	f := newFixture()
	acc, err := f.store.Session.Register(context.Background(), RegisterInput{
		Name: "New", Email: "new@x.ma", Password: "secret1", Role: entity.RoleInvestor,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acc.ID == "" || acc.Password != "" {
		t.Fatalf("unexpected account: %+v", acc)
	}
	if cur, ok := f.store.Session.Current(); !ok || cur.Email != "new@x.ma" {
		t.Fatalf("expected new account in session, got %+v", cur)
	}
}

func TestRegisterRejectsShortPasswordAndUnknownRole(t *testing.T) {
	f := newFixture()
	_, err := f.store.Session.Register(context.Background(), RegisterInput{
		Name: "New", Email: "new@x.ma", Password: "123", Role: "superuser",
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Details["password"] == "" || ve.Details["role"] == "" {
		t.Fatalf("expected password and role details, got %v", ve.Details)
	}
	if len(f.accounts.accounts) != 3 {
		t.Fatal("backend must not be called on invalid input")
	}
}

func TestLogoutClearsSessionAndSlot(t *testing.T) {
	f := newFixture()
	f.login(t, "admin@x.ma", "admin123")

	if err := f.store.Session.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := f.store.Session.Current(); ok {
		t.Fatal("expected anonymous session")
	}
	if f.slot.set {
		t.Fatal("slot must be cleared")
	}
}

func TestRestore(t *testing.T) {
	f := newFixture()
	f.slot.raw, f.slot.set = "founder@x.ma|startup|Founder", true

	if err := f.store.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	cur, ok := f.store.Session.Current()
	if !ok || cur.Email != "founder@x.ma" || cur.Role != entity.RoleStartup {
		t.Fatalf("unexpected restored account: %+v", cur)
	}
}

func TestRestoreDiscardsUnreadableSlot(t *testing.T) {
	f := newFixture()
	f.slot.raw, f.slot.set = "garbage", true

	if err := f.store.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, ok := f.store.Session.Current(); ok {
		t.Fatal("expected anonymous session")
	}
	if f.slot.set {
		t.Fatal("expected unreadable slot cleared")
	}
}
