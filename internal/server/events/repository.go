package events

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	ListByCreator(ctx context.Context, userID int) ([]Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int) error
}
