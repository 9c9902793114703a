package router

import (
	"net/http"

	"contentHub/internal/auth"
	"contentHub/internal/config"
	handlers "contentHub/internal/handler"
	appmw "contentHub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New builds the route table. Registration, login and health are public;
// everything else under /api passes the session gate.
func New(h *handlers.Handlers, verifier auth.TokenVerifier, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(appmw.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	r.Use(appmw.CORSMiddleware)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health", handlers.HealthHandler)

	if cfg.Storage.Driver == "local" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.Storage.LocalDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(appmw.SessionGate(verifier))

			r.Get("/protected", h.Protected)
			r.Get("/me", h.GetCurrentUser)
			r.Get("/getusers", h.GetUsers)
			r.Get("/stats", h.Stats)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ListCategories)
				r.Post("/add", h.AddCategory)
				r.Get("/show/{id}", h.ShowCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/posts", h.GetPosts)
				r.Get("/show/{id}", h.GetPost)
				r.Post("/add", h.CreatePost)
				r.Put("/edit/{id}", h.UpdatePost)
				r.Delete("/delete/{id}", h.DeletePost)
				r.Post("/addcomment", h.AddComment)
			})

			r.Route("/books", func(r chi.Router) {
				r.Get("/", h.GetBooks)
				r.Get("/{id}", h.GetBook)
				r.Post("/add", h.CreateBook)
				r.Put("/{id}", h.UpdateBook)
				r.Delete("/{id}", h.DeleteBook)
			})
		})
	})

	return r
}
