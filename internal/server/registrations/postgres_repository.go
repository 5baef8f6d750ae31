package registrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/common"
	"github.com/eventflow-dev/eventflow/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts the registration. The duplicate check and the insert run
// in one transaction so concurrent signups cannot register twice.
func (r *PostgresRepository) Create(ctx context.Context, eventID, userID int) (*Registration, error) {

	reg := &Registration{EventID: eventID, UserID: userID}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM registrations WHERE event_id = $1 AND user_id = $2)`
		if err := tx.QueryRowContext(ctx, check, eventID, userID).Scan(&exists); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		if exists {
			return common.ErrorAlreadyExists
		}

		query :=
			`INSERT INTO registrations (event_id, user_id)
			 VALUES ($1, $2)
			 RETURNING id, registered_at
			 `
		if err := tx.QueryRowContext(ctx, query, eventID, userID).Scan(&reg.ID, &reg.RegisteredAt); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, eventID, userID int) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM registrations WHERE event_id = $1 AND user_id = $2
		 )`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %v", err)
	}

	return exists, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Details, error) {
	query :=
		`SELECT r.id, e.id, e.title, e.description, to_char(e.event_date, 'YYYY-MM-DD'),
		        u.id, u.full_name, u.email, r.registered_at
		 FROM registrations r
		 JOIN events e ON e.id = r.event_id
		 JOIN users u ON u.id = r.user_id
		 WHERE r.user_id = $1
		 ORDER BY e.event_date
		 `
	return r.listDetails(ctx, query, userID)
}

func (r *PostgresRepository) ListByEvent(ctx context.Context, eventID int) ([]Details, error) {
	query :=
		`SELECT r.id, e.id, e.title, e.description, to_char(e.event_date, 'YYYY-MM-DD'),
		        u.id, u.full_name, u.email, r.registered_at
		 FROM registrations r
		 JOIN events e ON e.id = r.event_id
		 JOIN users u ON u.id = r.user_id
		 WHERE r.event_id = $1
		 ORDER BY r.registered_at
		 `
	return r.listDetails(ctx, query, eventID)
}

func (r *PostgresRepository) listDetails(ctx context.Context, query string, arg any) ([]Details, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []Details
	for rows.Next() {
		var d Details
		err := rows.Scan(&d.RegistrationID, &d.EventID, &d.Title, &d.Description,
			&d.EventDate, &d.UserID, &d.FullName, &d.Email, &d.RegisteredAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, d)
	}

	return result, rows.Err()
}
