package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fantasy-squad-service/internal/app/squads"
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/http/middleware"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps the error taxonomy onto HTTP statuses: local
// validation failures are 422, a missing token is 401, upstream failures
// carry the backend's own message at 502.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, providers.ErrNotAuthenticated):
		writeError(w, r, http.StatusUnauthorized, "not authenticated", logger)
	case errors.Is(err, domain.ErrDuplicatePlayer),
		errors.Is(err, domain.ErrTeamLimitExceeded),
		errors.Is(err, domain.ErrFormationInvalid),
		errors.Is(err, domain.ErrBudgetExceeded),
		errors.Is(err, squads.ErrNothingToConfirm):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), logger)
	case errors.Is(err, domain.ErrUnknownSlot),
		errors.Is(err, squads.ErrUnknownPlayer):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		if upErr, ok := providers.AsUpstreamError(err); ok && upErr.Message != "" {
			writeError(w, r, http.StatusBadGateway, upErr.Message, logger)
			return
		}
		writeError(w, r, http.StatusBadGateway, "upstream request failed", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method != method {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}
