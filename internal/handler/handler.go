package handler

import (
	"net/http"

	"github.com/ebnn/backend/internal/repository"
)

// Handler carries the dependencies shared by the non-workflow endpoints.
type Handler struct {
	db          repository.DB
	frontendURL string
}

// New creates a Handler. db may be nil when the subscriber backend has
// nothing to ping.
func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the frontend origin. Only genuine preflight requests (OPTIONS
// with Access-Control-Request-Method) are answered here; any other OPTIONS
// request reaches the endpoint and gets its 405.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
