package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the database handle the base handler needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db          Pinger
	frontendURL string
}

func New(db Pinger, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
