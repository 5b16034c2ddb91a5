package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fantasy-squad-service/internal/app/chips"
	"fantasy-squad-service/internal/app/squads"
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/cache"
	"fantasy-squad-service/internal/http/requestutil"
	"fantasy-squad-service/internal/logging"
	"fantasy-squad-service/internal/poller"
	"fantasy-squad-service/internal/providers"
	"fantasy-squad-service/internal/snapshots"
	"fantasy-squad-service/internal/store"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	squads    *squads.Service
	chips     *chips.Service
	pool      *store.MemoryStore
	details   providers.DetailsProvider
	cache     *cache.PlayerDetailsCache
	snapStore snapshots.Store
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler. The cache and snapshot store may be nil.
func NewHandler(squadSvc *squads.Service, chipSvc *chips.Service, pool *store.MemoryStore, details providers.DetailsProvider, detailsCache *cache.PlayerDetailsCache, snapStore snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		squads:    squadSvc,
		chips:     chipSvc,
		pool:      pool,
		details:   details,
		cache:     detailsCache,
		snapStore: snapStore,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
// The service is ready once the poller has warmed the player pool.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Players returns the current player pool snapshot.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	players := h.pool.ListPlayers()
	writeJSON(w, http.StatusOK, map[string]any{
		"players": players,
		"count":   len(players),
	}, h.logger)
}

// PlayerDetails proxies the upstream per-player detail payload, cached
// when Redis is configured.
func (h *Handler) PlayerDetails(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	idRaw := strings.TrimPrefix(r.URL.Path, "/players/")
	idRaw = strings.TrimSuffix(idRaw, "/details")
	id, err := strconv.Atoi(idRaw)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	if _, ok := h.pool.GetPlayer(id); !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}

	if payload, ok := h.cache.Get(r.Context(), id); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	}

	payload, err := h.details.FetchPlayerDetails(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	if err := h.cache.Set(r.Context(), id, payload); err != nil {
		logging.Warn(logger, "details cache write failed", slog.Any("err", err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// Chips returns the caller's chip status.
func (h *Handler) Chips(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	status, err := h.chips.Status(r.Context(), requestutil.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, status, logger)
}

// ActivateChip forwards a chip activation upstream.
func (h *Handler) ActivateChip(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var body struct {
		Chip string `json:"chip"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	chip := domain.ChipName(strings.ToUpper(strings.TrimSpace(body.Chip)))
	if err := h.chips.Activate(r.Context(), requestutil.BearerToken(r), chip); err != nil {
		if errors.Is(err, chips.ErrUnknownChip) {
			writeError(w, r, http.StatusBadRequest, err.Error(), logger)
			return
		}
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "activated"}, logger)
}
