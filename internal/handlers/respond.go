// Package handlers holds the HTTP surface. Every handler struct gets
// its stores (and the hub where it publishes events) injected at
// startup; responses use {"message": ...} / {"error": ...} envelopes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/glemuel/chabrush/internal/apperr"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func respondMessage(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// respondError maps the error to its status. Internal failures are
// logged with their cause and masked from the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		msg = "Internal server error"
	} else {
		slog.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.InvalidArg("No data provided")
	}
	return nil
}
