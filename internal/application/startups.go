package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/entity"
	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

type StartupInput struct {
	Name        string        `json:"name" validate:"required"`
	Sector      entity.Sector `json:"sector" validate:"required,sector"`
	Description string        `json:"description" validate:"required"`
	Logo        string        `json:"logo"`
	Location    string        `json:"location"`
	Employees   int           `json:"employees" validate:"gte=0"`
	Tags        []string      `json:"tags"`
	Image       string        `json:"image"`
}

// StartupFilter is the directory's search state.
type StartupFilter struct {
	SearchTerm string        `json:"searchTerm"`
	Sector     entity.Sector `json:"sector"`
}

type StartupSlice struct {
	c        collection[entity.Startup]
	filterMu sync.Mutex
	filter   StartupFilter

	repo    repository.StartupRepository
	session *SessionSlice
	out     outcomes
	logger  *logrus.Logger
	today   func() entity.Date
}

func (s *StartupSlice) State() SliceState[entity.Startup] { return s.c.snapshot() }

func (s *StartupSlice) ClearError() { s.c.clearError() }

func (s *StartupSlice) Filter() StartupFilter {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	return s.filter
}

func (s *StartupSlice) SetSearchTerm(term string) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	s.filter.SearchTerm = term
}

// SetSector selects a sector filter; entity.SectorAll disables it.
func (s *StartupSlice) SetSector(sector entity.Sector) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	s.filter.Sector = sector
}

// FetchAll replaces the items with the backend's list. On failure the
// previous items stay visible.
func (s *StartupSlice) FetchAll(ctx context.Context) error {
	s.c.begin(true)
	items, err := s.repo.List(ctx)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "startups/fetchAll").Warn("intent rejected")
		s.out.failure(ctx, "startups/fetchAll", "Could not load startups")
		return err
	}
	s.c.settle(replaceAll(items), "")
	return nil
}

// Create lists a new startup owned by the session account and appends the
// backend's record.
func (s *StartupSlice) Create(ctx context.Context, in StartupInput) (entity.Startup, error) {
	acc, ok := s.session.Current()
	if !ok {
		return entity.Startup{}, ErrUnauthenticated
	}
	if !acc.Role.CanCreateStartup() {
		return entity.Startup{}, ErrForbidden
	}
	if err := validate(in); err != nil {
		return entity.Startup{}, err
	}
	payload := entity.Startup{
		Name:        strings.TrimSpace(in.Name),
		Sector:      in.Sector,
		Description: in.Description,
		Logo:        in.Logo,
		Location:    in.Location,
		Employees:   in.Employees,
		Tags:        normalizeTags(in.Tags),
		Image:       in.Image,
		CreatedAt:   s.today(),
		CreatedBy:   acc.Email,
	}

	s.c.begin(false)
	created, err := s.repo.Create(ctx, payload)
	if err != nil {
		s.c.settle(nil, failureDetail(err))
		s.logger.WithError(err).WithField("intent", "startups/create").Warn("intent rejected")
		s.out.failure(ctx, "startups/create", "Could not create the startup")
		return entity.Startup{}, err
	}
	s.c.settle(appendItem(created), "")
	s.out.success(ctx, "startups/create", "Startup created")
	return created, nil
}

// Update replaces a startup's editable fields. Ownership, creation date and
// the featured flag are carried over from the stored record.
func (s *StartupSlice) Update(ctx context.Context, id entity.ID, in StartupInput) (entity.Startup, error) {
	current, err := s.authorizeManage(ctx, id)
	if err != nil {
		return entity.Startup{}, err
	}
	if err := validate(in); err != nil {
		return entity.Startup{}, err
	}
	payload := current
	payload.ID = id
	payload.Name = strings.TrimSpace(in.Name)
	payload.Sector = in.Sector
	payload.Description = in.Description
	payload.Logo = in.Logo
	payload.Location = in.Location
	payload.Employees = in.Employees
	payload.Tags = normalizeTags(in.Tags)
	payload.Image = in.Image

	updated, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		s.c.fail(failureDetail(err))
		s.logger.WithError(err).WithField("intent", "startups/update").Warn("intent rejected")
		s.out.failure(ctx, "startups/update", "Could not update the startup")
		return entity.Startup{}, err
	}
	s.c.reconcile(replaceByID(updated))
	s.out.success(ctx, "startups/update", "Startup updated")
	return updated, nil
}

// Delete removes a startup. Deleting a startup the backend no longer has is
// a no-op.
func (s *StartupSlice) Delete(ctx context.Context, id entity.ID) error {
	if _, err := s.authorizeManage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.c.fail(failureDetail(err))
		s.logger.WithError(err).WithField("intent", "startups/delete").Warn("intent rejected")
		s.out.failure(ctx, "startups/delete", "Could not delete the startup")
		return err
	}
	s.c.reconcile(removeByID[entity.Startup](id))
	s.out.success(ctx, "startups/delete", "Startup deleted")
	return nil
}

// authorizeManage returns the stored record once the session account may
// manage it. Records not held locally are read from the backend.
func (s *StartupSlice) authorizeManage(ctx context.Context, id entity.ID) (entity.Startup, error) {
	acc, ok := s.session.Current()
	if !ok {
		return entity.Startup{}, ErrUnauthenticated
	}
	st, held := s.c.find(id)
	if !held {
		var err error
		if st, err = s.repo.Get(ctx, id); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				s.c.fail(failureDetail(err))
				s.logger.WithError(err).WithField("startup_id", id).Warn("load startup for ownership check failed")
			}
			return entity.Startup{}, err
		}
	}
	if !st.ManageableBy(acc) {
		return entity.Startup{}, ErrForbidden
	}
	return st, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
