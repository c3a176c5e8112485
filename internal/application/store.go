package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

// Deps are the collaborators of a Store.
type Deps struct {
	Startups    repository.StartupRepository
	Events      repository.EventRepository
	Discussions repository.DiscussionRepository
	Accounts    repository.AccountRepository

	SessionSlot  repository.SessionSlot
	SessionCodec IdentityCodec

	Images      ObjectUploader
	ImagePrefix string

	Notifier Notifier
	Logger   *logrus.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Store is the state of one host process: a session and one slice per
// entity kind. Slices only write their own state.
type Store struct {
	Session     *SessionSlice
	Startups    *StartupSlice
	Events      *EventSlice
	Discussions *DiscussionSlice
	Images      *ImageStore

	now func() time.Time
}

func NewStore(d Deps) *Store {
	logger := d.Logger
	if logger == nil {
		logger = helpers.NewDiscardLogger()
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}
	today := func() entity.Date { return entity.DateOf(now()) }
	out := outcomes{notifier: d.Notifier, now: now}
	prefix := d.ImagePrefix
	if prefix == "" {
		prefix = "images"
	}

	session := newSessionSlice(d.Accounts, d.SessionSlot, d.SessionCodec, logger)
	return &Store{
		Session: session,
		Startups: &StartupSlice{
			repo: d.Startups, session: session, out: out, logger: logger, today: today,
			filter: StartupFilter{Sector: entity.SectorAll},
		},
		Events: &EventSlice{
			repo: d.Events, session: session, out: out, logger: logger, today: today,
		},
		Discussions: &DiscussionSlice{
			repo: d.Discussions, session: session, out: out, logger: logger, today: today,
		},
		Images: &ImageStore{uploader: d.Images, prefix: prefix, logger: logger},
		now:    now,
	}
}

// Start restores the persisted session.
func (s *Store) Start(ctx context.Context) error {
	return s.Session.Restore(ctx)
}

// Today is the store clock's current calendar date.
func (s *Store) Today() entity.Date { return entity.DateOf(s.now()) }

// Refresh fetches every collection. Failures are already recorded per slice;
// the first one is returned.
func (s *Store) Refresh(ctx context.Context) error {
	var first error
	for _, fetch := range []func(context.Context) error{
		s.Startups.FetchAll, s.Events.FetchAll, s.Discussions.FetchAll,
	} {
		if err := fetch(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
