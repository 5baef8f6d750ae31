package db

import (
	"database/sql"

	"github.com/eventflow-dev/eventflow/internal/server/events"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/users"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

// RepositoryManager bundles the repositories backed by one database
// connection.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Venues() venues.Repository
	Events() events.Repository
	Registrations() registrations.Repository
}
