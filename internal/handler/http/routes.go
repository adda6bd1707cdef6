package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/blobs", h.putBlob)
		r.Get("/blobs/{reference}", h.getBlob)

		r.Route("/owners/{ownerID}/commitments", func(r chi.Router) {
			r.Post("/", h.recordCommitment)
			r.Get("/", h.listCommitments)
		})
	})

	router.Get("/healthz", h.health)

	return router
}
