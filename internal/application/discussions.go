package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

const anonymousAuthor = "Anonyme"

type DiscussionInput struct {
	Content string `json:"content" validate:"required"`
}

type DiscussionSlice struct {
	c collection[entity.Discussion]

	repo    repository.DiscussionRepository
	session *SessionSlice
	out     outcomes
	logger  *logrus.Logger
	today   func() entity.Date
}

func (s *DiscussionSlice) State() SliceState[entity.Discussion] { return s.c.snapshot() }

func (s *DiscussionSlice) ClearError() { s.c.clearError() }

func (s *DiscussionSlice) FetchAll(ctx context.Context) error {
	s.c.begin(true)
	items, err := s.repo.List(ctx)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "discussions/fetchAll").Warn("intent rejected")
		s.out.failure(ctx, "discussions/fetchAll", "Could not load discussions")
		return err
	}
	s.c.settle(replaceAll(items), "")
	return nil
}

// Create posts a discussion signed with a snapshot of the session account
// and prepends the backend's record (newest first). Anonymous posts are
// signed "Anonyme" with the visitor role.
func (s *DiscussionSlice) Create(ctx context.Context, in DiscussionInput) (entity.Discussion, error) {
	if err := validate(in); err != nil {
		return entity.Discussion{}, err
	}
	payload := entity.Discussion{
		Author:  anonymousAuthor,
		Role:    entity.RoleVisitor,
		Content: in.Content,
		Date:    s.today(),
		Replies: 0,
	}
	if acc, ok := s.session.Current(); ok {
		if acc.Name != "" {
			payload.Author = acc.Name
		}
		payload.AuthorEmail = acc.Email
		payload.Role = acc.Role
	}

	s.c.begin(false)
	created, err := s.repo.Create(ctx, payload)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "discussions/create").Warn("intent rejected")
		s.out.failure(ctx, "discussions/create", "Could not create the discussion")
		return entity.Discussion{}, err
	}
	s.c.settle(prependItem(created), "")
	s.out.success(ctx, "discussions/create", "Discussion created")
	return created, nil
}

// Delete removes a discussion; admins and the author may do so. Deleting a
// discussion the backend no longer has is a no-op.
func (s *DiscussionSlice) Delete(ctx context.Context, id entity.ID) error {
	acc, ok := s.session.Current()
	if !ok {
		return ErrUnauthenticated
	}
	d, held := s.c.find(id)
	if !held {
		var err error
		if d, err = s.repo.Get(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			s.c.fail(failureDetail(err))
			s.logger.WithError(err).WithField("discussion_id", id).Warn("load discussion for ownership check failed")
			return err
		}
	}
	if !d.DeletableBy(acc) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.c.fail(failureDetail(err))
		s.logger.WithError(err).WithField("intent", "discussions/delete").Warn("intent rejected")
		s.out.failure(ctx, "discussions/delete", "Could not delete the discussion")
		return err
	}
	s.c.reconcile(removeByID[entity.Discussion](id))
	s.out.success(ctx, "discussions/delete", "Discussion deleted")
	return nil
}
