package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/common"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

const selectEvent = `
	SELECT e.id, e.title, e.description, to_char(e.event_date, 'YYYY-MM-DD'),
	       COALESCE(e.venue_id, 0), e.created_by,
	       v.id, v.name, v.location, v.capacity, v.owner_id
	FROM events e
	LEFT JOIN venues v ON v.id = e.venue_id
`

func scanEvent(row interface{ Scan(dest ...any) error }) (*Event, error) {
	e := &Event{}
	var (
		venueID  sql.NullInt64
		name     sql.NullString
		location sql.NullString
		capacity sql.NullInt64
		ownerID  sql.NullInt64
	)

	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.VenueID, &e.CreatedBy,
		&venueID, &name, &location, &capacity, &ownerID)
	if err != nil {
		return nil, err
	}

	if venueID.Valid {
		e.Venue = &venues.Venue{
			ID:       int(venueID.Int64),
			Name:     name.String,
			Location: location.String,
			Capacity: int(capacity.Int64),
			OwnerID:  int(ownerID.Int64),
		}
	}

	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, event *Event) (*Event, error) {

	query :=
		`INSERT INTO events (title, description, event_date, venue_id, created_by)
		 VALUES ($1, $2, $3, NULLIF($4, 0), $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Description, event.EventDate, event.VenueID, event.CreatedBy).Scan(&event.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return event, nil
}

func (r *PostgresRepository) list(ctx context.Context, where string, args ...any) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, selectEvent+where+" ORDER BY e.event_date", args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, *e)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]Event, error) {
	return r.list(ctx, "")
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, userID int) ([]Event, error) {
	return r.list(ctx, " WHERE e.created_by = $1", userID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Event, error) {
	event, err := scanEvent(r.db.QueryRowContext(ctx, selectEvent+" WHERE e.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	return event, nil
}

func (r *PostgresRepository) Update(ctx context.Context, event *Event) error {
	query :=
		`UPDATE events
		 SET title = $1, description = $2, event_date = $3, venue_id = NULLIF($4, 0)
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.EventDate, event.VenueID, event.ID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
