package venues

import (
	"context"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new venue owned by the requesting organizer.
func (s *Service) Create(ctx context.Context, name, location string, capacity, ownerID int) (*Venue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", common.ErrorValidation)
	}

	venue := &Venue{
		Name:     name,
		Location: location,
		Capacity: capacity,
		OwnerID:  ownerID,
	}

	venue, err := s.repo.Create(ctx, venue)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return venue, nil
}

// List returns every venue.
func (s *Service) List(ctx context.Context) ([]Venue, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return venues, nil
}
