// Package server initializes and runs the eventflow API server. It wires
// the Postgres-backed repositories into the domain services, starts the
// HTTP server and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/eventflow-dev/eventflow/internal/logging"
	"github.com/eventflow-dev/eventflow/internal/server/config"
	"github.com/eventflow-dev/eventflow/internal/server/events"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/rest"
	"github.com/eventflow-dev/eventflow/internal/server/shared/db"
	"github.com/eventflow-dev/eventflow/internal/server/users"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	userService         *users.Service
	venueService        *venues.Service
	eventService        *events.Service
	registrationService *registrations.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), c)
	vs := venues.NewService(m.Venues())
	es := events.NewService(m.Events())
	rs := registrations.NewService(m.Registrations(), es)

	return &App{
		config:              c,
		logger:              logger,
		userService:         us,
		venueService:        vs,
		eventService:        es,
		registrationService: rs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := rest.NewServer(app.config.EndpointAddr, []byte(app.config.SecretKey), app.logger,
		app.userService, app.venueService, app.eventService, app.registrationService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
