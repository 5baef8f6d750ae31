package venues

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, venue *Venue) (*Venue, error)
	List(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, id int) (*Venue, error)
}
