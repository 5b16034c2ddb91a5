package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"fantasy-squad-service/internal/http/requestutil"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/store"
)

// AdminHandler serves operator-only endpoints, gated by a static token.
type AdminHandler struct {
	provider providers.PoolProvider
	pool     *store.MemoryStore
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables all
// admin routes.
func NewAdminHandler(provider providers.PoolProvider, pool *store.MemoryStore, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		provider: provider,
		pool:     pool,
		token:    token,
		logger:   logger,
	}
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	presented := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.token)) == 1
}

// RefreshPool forces an immediate player-pool fetch, bypassing the poll
// interval.
func (h *AdminHandler) RefreshPool(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.authorized(r) {
		writeError(w, r, http.StatusUnauthorized, "not authorized", logger)
		return
	}

	players, err := h.provider.FetchPlayers(r.Context())
	if err != nil {
		logging.Error(logger, "manual pool refresh failed", err)
		writeServiceError(w, r, err, logger)
		return
	}
	h.pool.SetPlayers(players)

	gw, err := h.provider.FetchGameweek(r.Context())
	if err != nil {
		logging.Warn(logger, "gameweek refresh failed", slog.Any("err", err))
	} else {
		h.pool.SetGameweek(gw)
	}

	logging.Info(logger, "pool refreshed", slog.Int(logging.FieldCount, len(players)))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "refreshed",
		"players": len(players),
	}, logger)
}
