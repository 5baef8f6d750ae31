package registrations

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, eventID, userID int) (*Registration, error)
	Exists(ctx context.Context, eventID, userID int) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]Details, error)
	ListByEvent(ctx context.Context, eventID int) ([]Details, error)
}
