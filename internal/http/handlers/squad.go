package handlers

import (
	"net/http"
	"strconv"

	"fantasy-squad-service/internal/app/squads"
	"fantasy-squad-service/internal/domain"
	"fantasy-squad-service/internal/http/requestutil"
	"fantasy-squad-service/internal/store"
	"fantasy-squad-service/internal/transfers"
)

func pendingCount(sess store.SquadSession) int {
	return transfers.Compute(sess.Initial, sess.Working).Count()
}

// Squad returns the caller's current editing session, loading it from
// upstream on first touch.
func (h *Handler) Squad(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	sess, err := h.squads.Load(r.Context(), requestutil.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// FillSlot places a pool player into a squad slot.
func (h *Handler) FillSlot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var body struct {
		Position string `json:"position"`
		Index    int    `json:"index"`
		PlayerID int    `json:"playerId"`
		Benched  bool   `json:"benched"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	sess, err := h.squads.FillSlot(r.Context(), requestutil.BearerToken(r), domain.Position(body.Position), body.Index, body.PlayerID, body.Benched)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// ClearSlot vacates a squad slot. Clearing a vacant slot is a no-op.
func (h *Handler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var body struct {
		Position string `json:"position"`
		Index    int    `json:"index"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	sess, err := h.squads.ClearSlot(r.Context(), requestutil.BearerToken(r), domain.Position(body.Position), body.Index)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// ResetSquad discards local edits and reloads the confirmed squad.
func (h *Handler) ResetSquad(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	sess, err := h.squads.Reset(r.Context(), requestutil.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// PreviewTransfers returns the pending diff, its cost, and whether the
// squad may be confirmed.
func (h *Handler) PreviewTransfers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	preview, err := h.squads.Preview(r.Context(), requestutil.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, preview, logger)
}

// ConfirmTransfers commits the pending transfers upstream.
func (h *Handler) ConfirmTransfers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	sess, err := h.squads.ConfirmTransfers(r.Context(), requestutil.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// SubmitTeam submits the full squad, used for first-time team creation.
func (h *Handler) SubmitTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var body struct {
		TeamName string `json:"teamName"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	sess, err := h.squads.SubmitTeam(r.Context(), requestutil.BearerToken(r), body.TeamName)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(sess, pendingCount(sess)), logger)
}

// SquadHistory serves a past confirmed squad from the on-disk snapshot
// archive. Only gameweeks inside the retention window are available.
func (h *Handler) SquadHistory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	token := requestutil.BearerToken(r)
	if token == "" {
		writeError(w, r, http.StatusUnauthorized, "not authenticated", logger)
		return
	}
	if h.snapStore == nil {
		writeError(w, r, http.StatusNotFound, "snapshot archive not configured", logger)
		return
	}

	gw, err := strconv.Atoi(r.URL.Query().Get("gw"))
	if err != nil || gw <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid gameweek", logger)
		return
	}

	snapshot, err := h.snapStore.LoadSquad(squads.UserKey(token), gw)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "no snapshot for gameweek", logger)
		return
	}
	writeJSON(w, http.StatusOK, snapshot, logger)
}

// Points returns a gameweek's scoring display, including the effective
// captain derived from the backend's totals.
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	gw := h.pool.Gameweek().ID
	if raw := r.URL.Query().Get("gw"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, r, http.StatusBadRequest, "invalid gameweek", logger)
			return
		}
		gw = parsed
	}
	if gw <= 0 {
		writeError(w, r, http.StatusBadRequest, "gameweek not known yet", logger)
		return
	}

	view, err := h.squads.Points(r.Context(), requestutil.BearerToken(r), gw)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, view, logger)
}
