// Package handler contains the HTTP request handlers. Handlers are glue:
// they parse the request, call a service, and write the response. Business
// rules live in internal/service; handlers never touch the database.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/andresmz/exercise-tracker/internal/service"
)

// UserHandler serves the user registration and listing endpoints.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// HandleCreate registers a new user.
//
// HTTP: POST /api/users
// Body: username (JSON or form encoded)
//
// Responds with the created record {_id, username}, or 400 with
// {"error":"Username is required"} when the username is missing.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	values, err := bodyValues(r)
	if err != nil {
		h.logger.Warn("invalid create-user body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.users.Create(r.Context(), values["username"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleList returns every registered user.
//
// HTTP: GET /api/users
//
// The order is storage-native and carries no guarantee.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
