// Package rest exposes the eventflow API over HTTP. Routing is handled by
// chi; responses are JSON, with errors carried in a {"message": ...} body.
package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eventflow-dev/eventflow/internal/logging"
	"github.com/eventflow-dev/eventflow/internal/server/events"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/users"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

type UserService interface {
	Register(ctx context.Context, fullName, email, password, role string) (*users.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id int) (*users.User, error)
}

type VenueService interface {
	Create(ctx context.Context, name, location string, capacity, ownerID int) (*venues.Venue, error)
	List(ctx context.Context) ([]venues.Venue, error)
}

type EventService interface {
	Create(ctx context.Context, event *events.Event) (*events.Event, error)
	List(ctx context.Context) ([]events.Event, error)
	ListByCreator(ctx context.Context, userID int) ([]events.Event, error)
	GetByID(ctx context.Context, id int) (*events.Event, error)
	Update(ctx context.Context, event *events.Event, userID int, role string) (*events.Event, error)
	Delete(ctx context.Context, id, userID int, role string) error
}

type RegistrationService interface {
	Register(ctx context.Context, eventID, userID int) (*registrations.Registration, error)
	ListByUser(ctx context.Context, userID int) ([]registrations.Details, error)
	ListByEvent(ctx context.Context, eventID, requesterID int, role string) ([]registrations.Details, error)
}

type Server struct {
	addr      string
	secretKey []byte
	log       logging.Logger
	validate  *validator.Validate

	users         UserService
	venues        VenueService
	events        EventService
	registrations RegistrationService

	httpServer *http.Server
}

func NewServer(addr string, secretKey []byte, log logging.Logger,
	us UserService, vs VenueService, es EventService, rs RegistrationService) *Server {
	return &Server{
		addr:          addr,
		secretKey:     secretKey,
		log:           log,
		validate:      validator.New(),
		users:         us,
		venues:        vs,
		events:        es,
		registrations: rs,
	}
}

// Router assembles the route tree. Reads of the event catalog are public;
// everything else runs behind the bearer-token middleware, with role
// gates matching what the client's views require.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(
		requestIDMiddleware,
		metricsMiddleware,
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/events", s.handleListEvents)
		r.Get("/events/{id}", s.handleGetEvent)

		// Public so the client's post-login profile resolution can run
		// before it holds a token.
		r.Get("/users/{id}", s.handleGetUser)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/users/{id}/registrations", s.handleListUserRegistrations)
			r.Post("/events/{id}/register", s.handleRegisterForEvent)

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole("organizer", "admin"))

				r.Post("/events", s.handleCreateEvent)
				r.Put("/events/{id}", s.handleUpdateEvent)
				r.Delete("/events/{id}", s.handleDeleteEvent)

				r.Get("/venues", s.handleListVenues)
				r.Post("/venues", s.handleCreateVenue)

				r.Get("/organizer/events", s.handleListOrganizerEvents)
				r.Get("/organizer/events/{id}/registrations", s.handleListEventRegistrations)
			})

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole("admin"))

				r.Get("/admin/registrations", s.handleAdminListRegistrations)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.log.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.httpServer.Shutdown(context.Background())
	}
}
