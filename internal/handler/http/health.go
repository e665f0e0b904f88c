package http

import (
	"net/http"

	"github.com/voddeck/voddeck/internal/logger"
)

// headRoot answers HEAD / with a bare 200 for uptime monitors.
func (h *Handler) headRoot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// pingDB reports whether the database answers a ping.
func (h *Handler) pingDB(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.db == nil {
		log.Error().Msg("ping requested but no database is configured")
		http.Error(w, "no database configured", http.StatusInternalServerError)
		return
	}

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		http.Error(w, "error pinging DB", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("database is awake"))
}
