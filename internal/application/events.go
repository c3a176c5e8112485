package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

type EventInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Date        entity.Date `json:"date" validate:"required,datetime=2006-01-02"`
	Location    string      `json:"location" validate:"required"`
	Image       string      `json:"image"`
}

type EventSlice struct {
	c collection[entity.Event]

	repo    repository.EventRepository
	session *SessionSlice
	out     outcomes
	logger  *logrus.Logger
	today   func() entity.Date
}

func (s *EventSlice) State() SliceState[entity.Event] { return s.c.snapshot() }

func (s *EventSlice) ClearError() { s.c.clearError() }

// FetchAll replaces the items with the backend's list. On failure the
// previous items stay visible.
func (s *EventSlice) FetchAll(ctx context.Context) error {
	s.c.begin(true)
	items, err := s.repo.List(ctx)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "events/fetchAll").Warn("intent rejected")
		s.out.failure(ctx, "events/fetchAll", "Could not load events")
		return err
	}
	s.c.settle(replaceAll(items), "")
	return nil
}

// Create publishes an event with no participants and appends the backend's record.
func (s *EventSlice) Create(ctx context.Context, in EventInput) (entity.Event, error) {
	acc, ok := s.session.Current()
	if !ok {
		return entity.Event{}, ErrUnauthenticated
	}
	if !acc.Role.CanCreateEvent() {
		return entity.Event{}, ErrForbidden
	}
	if err := validate(in); err != nil {
		return entity.Event{}, err
	}
	payload := entity.Event{
		Title:        in.Title,
		Description:  in.Description,
		Date:         in.Date,
		Location:     in.Location,
		Image:        in.Image,
		Participants: []string{},
		CreatedBy:    acc.Email,
		CreatedAt:    s.today(),
	}

	s.c.begin(false)
	created, err := s.repo.Create(ctx, payload)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "events/create").Warn("intent rejected")
		s.out.failure(ctx, "events/create", "Could not create the event")
		return entity.Event{}, err
	}
	s.c.settle(appendItem(created), "")
	s.out.success(ctx, "events/create", "Event created")
	return created, nil
}

// Delete removes an event. Only admins may delete events.
func (s *EventSlice) Delete(ctx context.Context, id entity.ID) error {
	acc, ok := s.session.Current()
	if !ok {
		return ErrUnauthenticated
	}
	if !acc.Role.CanDeleteEvent() {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.c.fail(failureDetail(err))
		s.logger.WithError(err).WithField("intent", "events/delete").Warn("intent rejected")
		s.out.failure(ctx, "events/delete", "Could not delete the event")
		return err
	}
	s.c.reconcile(removeByID[entity.Event](id))
	s.out.success(ctx, "events/delete", "Event deleted")
	return nil
}

// Join registers the session account for the event. The slice takes the
// backend's returned event as is and never edits participants locally.
func (s *EventSlice) Join(ctx context.Context, id entity.ID) (entity.Event, error) {
	return s.participate(ctx, "events/join", id, s.repo.Join,
		"You are registered for the event", "Could not register for the event")
}

// Leave unregisters the session account from the event.
func (s *EventSlice) Leave(ctx context.Context, id entity.ID) (entity.Event, error) {
	return s.participate(ctx, "events/leave", id, s.repo.Leave,
		"You left the event", "Could not leave the event")
}

func (s *EventSlice) participate(
	ctx context.Context,
	intent string,
	id entity.ID,
	call func(context.Context, entity.ID, string) (entity.Event, error),
	okMsg, failMsg string,
) (entity.Event, error) {
	acc, ok := s.session.Current()
	if !ok {
		s.out.failure(ctx, intent, "Please log in to take part")
		return entity.Event{}, ErrUnauthenticated
	}
	ev, err := call(ctx, id, acc.Email)
	if err != nil {
		s.c.fail(failureDetail(err))
		s.logger.WithError(err).WithFields(logrus.Fields{"intent": intent, "event_id": id}).Warn("intent rejected")
		s.out.failure(ctx, intent, failMsg)
		return entity.Event{}, err
	}
	s.c.reconcile(replaceByID(ev))
	s.out.success(ctx, intent, okMsg)
	return ev, nil
}
