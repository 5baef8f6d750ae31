package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventflow-dev/eventflow/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: event date must be YYYY-MM-DD", common.ErrorValidation)
	}
	return nil
}

// Create stores a new event owned by the requesting user.
func (s *Service) Create(ctx context.Context, event *Event) (*Event, error) {
	if err := validateDate(event.EventDate); err != nil {
		return nil, err
	}

	event, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return s.repo.GetByID(ctx, event.ID)
}

// List returns all events with their venues.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return events, nil
}

// ListByCreator returns the events created by the given user.
func (s *Service) ListByCreator(ctx context.Context, userID int) ([]Event, error) {
	events, err := s.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return events, nil
}

// GetByID returns one event.
func (s *Service) GetByID(ctx context.Context, id int) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return event, nil
}

// canManage reports whether the user may mutate the event. Only the
// creator and admins can.
func canManage(event *Event, userID int, role string) bool {
	return event.CreatedBy == userID || role == "admin"
}

// Update replaces the mutable fields of an event. Users other than the
// creator (or an admin) get common.ErrorForbidden.
func (s *Service) Update(ctx context.Context, event *Event, userID int, role string) (*Event, error) {
	if err := validateDate(event.EventDate); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if !canManage(existing, userID, role) {
		return nil, common.ErrorForbidden
	}

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return s.repo.GetByID(ctx, event.ID)
}

// Delete removes an event under the same ownership rule as Update.
func (s *Service) Delete(ctx context.Context, id, userID int, role string) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(existing, userID, role) {
		return common.ErrorForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}
