package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/voddeck/voddeck/models"
)

// Init builds the router with the full middleware chain.
//
// Middleware order matters: withMetrics is registered first (outermost) so
// its deferred observation also covers responses produced by Recoverer, and
// the in-progress gauge is balanced on every exit path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/signup", h.signup)
		r.Post("/api/v1/auth/login", h.login)
		r.Post("/api/v1/auth/logout", h.logout)

		r.Get("/ping-db", h.pingDB)
		r.Head("/", h.headRoot)
		r.Method("GET", "/metrics", h.collector.Handler())
	})

	// routes behind the session gateway
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/auth/authCheck", h.authCheck)

		r.Route("/api/v1/movie", func(r chi.Router) {
			r.Get("/trending", h.trending(models.MediaTypeMovie))
			r.Get("/{id}/trailers", h.trailers(models.MediaTypeMovie))
			r.Get("/{id}/details", h.details(models.MediaTypeMovie))
			r.Get("/{id}/similar", h.similar(models.MediaTypeMovie))
			r.Get("/{category}", h.category(models.MediaTypeMovie))
		})

		r.Route("/api/v1/tv", func(r chi.Router) {
			r.Get("/trending", h.trending(models.MediaTypeTV))
			r.Get("/{id}/trailers", h.trailers(models.MediaTypeTV))
			r.Get("/{id}/details", h.details(models.MediaTypeTV))
			r.Get("/{id}/similar", h.similar(models.MediaTypeTV))
			r.Get("/{category}", h.category(models.MediaTypeTV))
		})

		r.Get("/api/v1/search/{searchType}/{query}", h.search)
	})

	return router
}
