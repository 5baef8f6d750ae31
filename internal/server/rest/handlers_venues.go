package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	list, err := s.venues.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]venueResponse, 0, len(list))
	for i := range list {
		out = append(out, toVenueResponse(&list[i]))
	}
	render.JSON(w, r, out)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var req venueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeMessage(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.venues.Create(r.Context(), req.Name, req.Location, req.Capacity, UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "venue created", "venueId", created.ID, "ownerId", created.OwnerID)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, toVenueResponse(created))
}
