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

	// identity resolution never rejects: requests without a valid token run
	// as anonymous and the services decide what anonymous callers may do
	router.Use(h.withIdentity)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Get("/users", h.listUsers)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.feed)
			r.Post("/", h.createPost)
			r.Get("/mine", h.listMine)
			r.Get("/{postID}", h.getPost)
			r.Post("/{postID}/publish", h.publishPost)
		})
	})

	return router
}
