// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/internal/database"
	"github.com/perkwatch/perkwatch/internal/log"
)

// ErrorResponse is the wire shape of an error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteError writes a JSON error response, mapping domain errors to status
// codes. Unknown records get 404 with a fixed detail; everything else is a
// 500 carrying the error message.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	detail := err.Error()

	if errors.Is(err, competitor.ErrNotFound) || errors.Is(err, database.ErrNotFound) {
		status = http.StatusNotFound
		detail = "Competitor not found"
	}

	if logger != nil {
		logger.Error("request error",
			"correlation_id", log.CorrelationID(r.Context()),
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
