package registrations

import (
	"context"
	"errors"

	"github.com/eventflow-dev/eventflow/internal/common"
	"github.com/eventflow-dev/eventflow/internal/server/events"
)

type EventGetter interface {
	GetByID(ctx context.Context, id int) (*events.Event, error)
}

type Service struct {
	repo   Repository
	events EventGetter
}

func NewService(repo Repository, events EventGetter) *Service {
	return &Service{repo: repo, events: events}
}

// Register signs a user up for an event. Registering twice for the same
// event returns common.ErrorAlreadyExists; a missing event returns
// common.ErrorNotFound.
func (s *Service) Register(ctx context.Context, eventID, userID int) (*Registration, error) {

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	exists, err := s.repo.Exists(ctx, eventID, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	reg, err := s.repo.Create(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return reg, nil
}

// ListByUser returns the user's registrations with event details.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]Details, error) {
	details, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return details, nil
}

// ListByEvent returns the roster for an event. Only the event's creator
// (or an admin) may see it.
func (s *Service) ListByEvent(ctx context.Context, eventID, requesterID int, role string) ([]Details, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if event.CreatedBy != requesterID && role != "admin" {
		return nil, common.ErrorForbidden
	}

	details, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return details, nil
}
