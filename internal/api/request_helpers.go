package api

import (
	"log/slog"
	"net/http"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pathUUID parses the UUID path parameter paramName. A missing or malformed
// value can never match a stored record, so it is answered like a lookup miss:
// a 404 carrying notFoundMessage is written and ok is false.
func pathUUID(w http.ResponseWriter, r *http.Request, paramName, notFoundMessage string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusNotFound, notFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}
