package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/eventflow-dev/eventflow/internal/common"
)

// Message is the body every error response carries.
type Message struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.WriteHeader(status)
	render.JSON(w, r, Message{Message: msg})
}

// writeError maps the service error sentinels onto HTTP statuses. Anything
// unrecognized is an internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, r, http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, r, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorForbidden):
		writeMessage(w, r, http.StatusForbidden, "forbidden")
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		writeMessage(w, r, http.StatusInternalServerError, "internal server error")
	}
}
