package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Role == "" {
		req.Role = "attendee"
	}
	if err := s.validate.Struct(req); err != nil {
		writeMessage(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := s.users.Register(r.Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		s.log.Warn(r.Context(), "registration failed", "email", req.Email, "error", err)
		writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "user registered", "userId", user.ID, "role", user.Role)
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, toUserResponse(user))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeMessage(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.log.Warn(r.Context(), "login failed", "email", req.Email)
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, tokenResponse{Token: token})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, toUserResponse(user))
}
