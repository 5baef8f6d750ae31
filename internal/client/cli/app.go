// Package cli implements the interactive terminal client for eventflow.
// The REPL commands are the navigable views of the application; protected
// commands run through the session guard before dispatch.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eventflow-dev/eventflow/internal/client/api"
	"github.com/eventflow-dev/eventflow/internal/client/config"
	"github.com/eventflow-dev/eventflow/internal/client/session"
	"github.com/eventflow-dev/eventflow/internal/logging"

	_ "modernc.org/sqlite"
)

// Service is the API surface the commands need. The concrete api.Client
// satisfies it; tests can provide a lightweight stub.
type Service interface {
	Register(ctx context.Context, user api.NewUser) (*session.User, error)
	Login(ctx context.Context, creds api.Credentials) (string, error)
	ListEvents(ctx context.Context) ([]api.Event, error)
	GetEvent(ctx context.Context, id int) (*api.Event, error)
	CreateEvent(ctx context.Context, event api.Event) (*api.Event, error)
	UpdateEvent(ctx context.Context, id int, event api.Event) (*api.Event, error)
	DeleteEvent(ctx context.Context, id int) error
	ListVenues(ctx context.Context) ([]api.Venue, error)
	CreateVenue(ctx context.Context, venue api.Venue) (*api.Venue, error)
	RegisterForEvent(ctx context.Context, eventID, userID int) error
	ListUserRegistrations(ctx context.Context, userID int) ([]api.RegistrationDetails, error)
	ListOrganizerEvents(ctx context.Context) ([]api.Event, error)
	ListEventRegistrations(ctx context.Context, eventID int) ([]api.RegistrationDetails, error)
}

// tokenSourceFunc adapts a closure to api.TokenSource.
type tokenSourceFunc func() string

func (f tokenSourceFunc) Token() string { return f() }

type App struct {
	config  *config.Config
	log     logging.Logger
	api     Service
	session *session.Store
	fence   *fence
	reader  *bufio.Reader
	out     io.Writer

	// cachedEvents is view state for the events listing; it is only
	// updated by a fetch whose generation is still current.
	cachedEvents []api.Event
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := &App{
		config: c,
		log:    logger,
		fence:  &fence{},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	apiClient := api.New(
		c.APIBaseURL,
		tokenSourceFunc(func() string { return a.session.Token() }),
		a,
		func() { a.forceLogout(ctx) },
	)
	a.api = apiClient

	a.session = session.NewStore(apiClient, session.NewSQLiteStorage(db), logger)
	a.session.Restore(ctx)

	return a, nil
}

// Notify surfaces a transient notice from the transport layer.
func (a *App) Notify(msg string) {
	fmt.Fprintln(a.out, "!", msg)
}

// forceLogout is the hard session invalidation run on any 401: the session
// collapses to logged out and every in-flight view generation is voided.
func (a *App) forceLogout(ctx context.Context) {
	a.session.Logout(ctx)
	a.fence.Invalidate()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
