package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

type SessionStatus string

const (
	SessionAnonymous     SessionStatus = "anonymous"
	SessionPending       SessionStatus = "pending"
	SessionAuthenticated SessionStatus = "authenticated"
)

// SessionState is a point-in-time copy of the session.
type SessionState struct {
	Status  SessionStatus   `json:"status"`
	Account *entity.Account `json:"account,omitempty"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
}

// IdentityCodec serializes the current identity for the durable slot.
type IdentityCodec interface {
	Encode(a entity.Account) (string, error)
	Decode(s string) (entity.Account, error)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,pwd"`
	Role     entity.Role `json:"role" validate:"required,role"`
}

// SessionSlice holds the authenticated identity, if any, and keeps it in the
// durable slot across restarts. A restored identity is trusted until logout.
type SessionSlice struct {
	mu       sync.Mutex
	account  *entity.Account
	inflight int
	err      string

	accounts repository.AccountRepository
	slot     repository.SessionSlot
	codec    IdentityCodec
	logger   *logrus.Logger
}

func newSessionSlice(accounts repository.AccountRepository, slot repository.SessionSlot, codec IdentityCodec, logger *logrus.Logger) *SessionSlice {
	return &SessionSlice{accounts: accounts, slot: slot, codec: codec, logger: logger}
}

// Current returns the authenticated account.
func (s *SessionSlice) Current() (entity.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return entity.Account{}, false
	}
	return *s.account, true
}

func (s *SessionSlice) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := SessionState{Status: SessionAnonymous, Loading: s.inflight > 0, Error: s.err}
	if s.account != nil {
		acc := *s.account
		st.Account = &acc
		st.Status = SessionAuthenticated
	}
	if s.inflight > 0 {
		st.Status = SessionPending
	}
	return st
}

func (s *SessionSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// Restore loads a previously persisted identity. An unreadable slot is
// cleared and the session stays anonymous.
func (s *SessionSlice) Restore(ctx context.Context) error {
	if s.slot == nil || s.codec == nil {
		return nil
	}
	raw, ok, err := s.slot.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	acc, err := s.codec.Decode(raw)
	if err != nil {
		s.logger.WithError(err).Warn("discarding unreadable persisted session")
		return s.slot.Clear(ctx)
	}
	s.mu.Lock()
	s.account = &acc
	s.mu.Unlock()
	s.logger.WithField("email", acc.Email).Info("session restored")
	return nil
}

// Login authenticates against the accounts collection. On success the first
// match becomes the session and is persisted; on failure the session is
// anonymous and the slot cleared.
func (s *SessionSlice) Login(ctx context.Context, in LoginInput) (entity.Account, error) {
	if err := validate(in); err != nil {
		return entity.Account{}, err
	}
	s.begin()
	acc, err := s.accounts.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		s.reject(ctx, "auth/login", err)
		return entity.Account{}, err
	}
	return s.fulfill(ctx, "auth/login", acc), nil
}

// Register creates the account and logs it in.
func (s *SessionSlice) Register(ctx context.Context, in RegisterInput) (entity.Account, error) {
	if err := validate(in); err != nil {
		return entity.Account{}, err
	}
	s.begin()
	acc, err := s.accounts.Create(ctx, entity.Account{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		s.reject(ctx, "auth/register", err)
		return entity.Account{}, err
	}
	return s.fulfill(ctx, "auth/register", acc), nil
}

// Logout forgets the identity locally and clears the durable slot.
func (s *SessionSlice) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.account = nil
	s.err = ""
	s.mu.Unlock()
	if s.slot == nil {
		return nil
	}
	if err := s.slot.Clear(ctx); err != nil {
		s.logger.WithError(err).Warn("clear session slot failed")
		return err
	}
	return nil
}

func (s *SessionSlice) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.err = ""
}

func (s *SessionSlice) reject(ctx context.Context, intent string, err error) {
	s.mu.Lock()
	if s.inflight > 0 {
		s.inflight--
	}
	s.account = nil
	s.err = failureDetail(err)
	s.mu.Unlock()
	s.logger.WithError(err).WithField("intent", intent).Warn("session intent rejected")
	if s.slot != nil {
		if cErr := s.slot.Clear(ctx); cErr != nil {
			s.logger.WithError(cErr).Warn("clear session slot failed")
		}
	}
}

func (s *SessionSlice) fulfill(ctx context.Context, intent string, acc entity.Account) entity.Account {
	acc = acc.WithoutSecret()
	s.persist(ctx, acc)
	s.mu.Lock()
	if s.inflight > 0 {
		s.inflight--
	}
	s.account = &acc
	s.mu.Unlock()
	s.logger.WithFields(logrus.Fields{"intent": intent, "email": acc.Email}).Debug("session authenticated")
	return acc
}

func (s *SessionSlice) persist(ctx context.Context, acc entity.Account) {
	if s.slot == nil || s.codec == nil {
		return
	}
	raw, err := s.codec.Encode(acc)
	if err == nil {
		err = s.slot.Save(ctx, raw)
	}
	if err != nil {
		s.logger.WithError(err).WithField("email", acc.Email).Warn("persist session failed")
	}
}
