package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Route visibility is declared here, at
// registration time: the first group carries no authorization middleware and
// is reachable with no, a malformed, or a revoked Authorization header; the
// second group passes every request through the auth middleware before any
// handler runs.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.status)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/auth/logout", h.logout)
		r.Get("/transactions", h.listTransactions)
		r.Post("/transactions/search", h.searchTransactions)
	})

	return router
}
