package venues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, venue *Venue) (*Venue, error) {

	query :=
		`INSERT INTO venues (name, location, capacity, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		venue.Name, venue.Location, venue.Capacity, venue.OwnerID).Scan(&venue.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return venue, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Venue, error) {
	query :=
		`SELECT id, name, location, capacity, owner_id FROM venues
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, v)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Venue, error) {
	query :=
		`SELECT id, name, location, capacity, owner_id FROM venues
		 WHERE id = $1
		 `

	venue := &Venue{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID, &venue.Name, &venue.Location, &venue.Capacity, &venue.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return venue, nil
}
