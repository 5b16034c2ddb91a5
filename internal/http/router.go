package http

import (
	nethttp "net/http"

	"fantasy-squad-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin handler is
// optional; when nil the admin routes are not registered.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)

	mux.HandleFunc("/players", h.Players)
	mux.HandleFunc("/players/", h.PlayerDetails)

	mux.HandleFunc("/squad", h.Squad)
	mux.HandleFunc("/squad/slots", h.FillSlot)
	mux.HandleFunc("/squad/slots/clear", h.ClearSlot)
	mux.HandleFunc("/squad/reset", h.ResetSquad)
	mux.HandleFunc("/squad/preview", h.PreviewTransfers)
	mux.HandleFunc("/squad/submit", h.SubmitTeam)
	mux.HandleFunc("/squad/transfers/confirm", h.ConfirmTransfers)
	mux.HandleFunc("/squad/points", h.Points)
	mux.HandleFunc("/squad/history", h.SquadHistory)

	mux.HandleFunc("/chips", h.Chips)
	mux.HandleFunc("/chips/activate", h.ActivateChip)

	if admin != nil {
		mux.HandleFunc("/admin/pool/refresh", admin.RefreshPool)
	}

	return mux
}
