package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amanv05/second-brain-backend/internal/api/handlers"
	"github.com/amanv05/second-brain-backend/internal/auth"
	"github.com/amanv05/second-brain-backend/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	contentService services.ContentServiceProvider,
	shareService services.ShareServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	contentHandler := handlers.NewContentHandler(contentService)
	shareHandler := handlers.NewShareHandler(shareService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)

		// Public share resolution is the one deliberately unauthenticated
		// read of another user's content.
		r.Get("/brain/{shareToken}", shareHandler.Resolve)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())

			r.Route("/content", func(r chi.Router) {
				r.Post("/", contentHandler.Create)
				r.Get("/", contentHandler.List)
				r.Delete("/", contentHandler.Delete)
			})

			r.Post("/brain/share", shareHandler.SetShare)
		})
	})

	return r
}
