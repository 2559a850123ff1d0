package handler

import (
	"log/slog"
	"net/http"

	"github.com/andresmz/exercise-tracker/internal/service"
)

// ExerciseHandler serves the add-exercise and logs endpoints.
type ExerciseHandler struct {
	exercises *service.ExerciseService
	logger    *slog.Logger
}

func NewExerciseHandler(exercises *service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises, logger: logger}
}

// HandleAdd records an exercise against a user.
//
// HTTP: POST /api/users/{id}/exercises
// Body: description, duration, date? (JSON or form encoded)
//
// duration and date are passed through as raw text — the service coerces
// them and never rejects a malformed value. The only client error here is
// an unknown user: 404 {"error":"User not found"}.
func (h *ExerciseHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	values, err := bodyValues(r)
	if err != nil {
		h.logger.Warn("invalid add-exercise body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.exercises.Add(r.Context(), userID,
		values["description"], values["duration"], values["date"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleLogs returns a user's activity log, optionally filtered.
//
// HTTP: GET /api/users/{id}/logs?from=&to=&limit=
//
// from/to are calendar dates (inclusive bounds); limit truncates after
// filtering. All three are optional and arrive as raw query text.
func (h *ExerciseHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	q := r.URL.Query()

	view, err := h.exercises.Logs(r.Context(), userID,
		q.Get("from"), q.Get("to"), q.Get("limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
