package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/eventflow-dev/eventflow/internal/server/events"
	"github.com/eventflow-dev/eventflow/internal/server/migrations"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/users"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

type PostgresRepositoryManager struct {
	db            *sql.DB
	users         users.Repository
	venues        venues.Repository
	events        events.Repository
	registrations registrations.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Venues() venues.Repository {
	return m.venues
}

func (m *PostgresRepositoryManager) Events() events.Repository {
	return m.events
}

func (m *PostgresRepositoryManager) Registrations() registrations.Repository {
	return m.registrations
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	venueRepo, err := venues.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("venue repo creation error: %w", err)
	}

	eventRepo, err := events.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("event repo creation error: %w", err)
	}

	registrationRepo, err := registrations.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("registration repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:            db,
		users:         userRepo,
		venues:        venueRepo,
		events:        eventRepo,
		registrations: registrationRepo,
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
