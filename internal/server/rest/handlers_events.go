package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/eventflow-dev/eventflow/internal/server/events"
)

func eventID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toEventResponses(list))
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := s.events.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toEventResponse(event))
}

func (s *Server) decodeEvent(w http.ResponseWriter, r *http.Request) (*eventRequest, bool) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := s.validate.Struct(req); err != nil {
		writeMessage(w, r, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return &req, true
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeEvent(w, r)
	if !ok {
		return
	}

	created, err := s.events.Create(r.Context(), &events.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		VenueID:     req.VenueID,
		CreatedBy:   UserID(r.Context()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "event created", "eventId", created.ID, "createdBy", created.CreatedBy)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, toEventResponse(created))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	req, ok := s.decodeEvent(w, r)
	if !ok {
		return
	}

	updated, err := s.events.Update(r.Context(), &events.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		VenueID:     req.VenueID,
	}, UserID(r.Context()), UserRole(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, toEventResponse(updated))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := s.events.Delete(r.Context(), id, UserID(r.Context()), UserRole(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListOrganizerEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.events.ListByCreator(r.Context(), UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, toEventResponses(list))
}
