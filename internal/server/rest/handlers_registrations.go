package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
)

// handleRegisterForEvent signs the caller up for an event. A userId in
// the body is accepted for compatibility but the token identity wins.
func (s *Server) handleRegisterForEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := UserID(r.Context())

	reg, err := s.registrations.Register(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "registration created", "eventId", id, "userId", userID)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, registrationResponse{
		RegID:        reg.ID,
		UserID:       reg.UserID,
		EventID:      reg.EventID,
		RegisteredAt: reg.RegisteredAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// handleListUserRegistrations returns a user's registrations. Users can
// only see their own; admins can see anyone's.
func (s *Server) handleListUserRegistrations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	if id != UserID(r.Context()) && UserRole(r.Context()) != "admin" {
		writeMessage(w, r, http.StatusForbidden, "forbidden")
		return
	}

	list, err := s.registrations.ListByUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toDetailsResponses(list))
}

// handleAdminListRegistrations lists any event's registrations without an
// ownership check. The route is admin-gated.
func (s *Server) handleAdminListRegistrations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("eventId"))
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid or missing eventId")
		return
	}

	list, err := s.registrations.ListByEvent(r.Context(), id, UserID(r.Context()), UserRole(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toDetailsResponses(list))
}

func (s *Server) handleListEventRegistrations(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	list, err := s.registrations.ListByEvent(r.Context(), id, UserID(r.Context()), UserRole(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toDetailsResponses(list))
}
