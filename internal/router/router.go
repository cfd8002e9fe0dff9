package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-blog-api/internal/config"
	"go-blog-api/internal/handler"
	"go-blog-api/internal/middleware"
)

type Handlers struct {
	Auth *handler.AuthHandler
	User *handler.UserHandler
	Post *handler.PostHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers, health http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", handlers.Auth.Register)
			auth.Post("/login", handlers.Auth.Login)
			auth.With(authMiddleware.RequireAuth).Post("/logout", handlers.Auth.Logout)
		})

		api.Route("/users", func(users chi.Router) {
			users.With(authMiddleware.RequireAuth).Get("/profile", handlers.User.GetProfile)
			users.With(authMiddleware.RequireAuth).Put("/profile", handlers.User.UpdateProfile)
			users.With(authMiddleware.RequireAuth).Delete("/profile", handlers.User.DeleteAccount)
			users.Get("/{id}", handlers.User.GetPublicUser)
		})

		api.Route("/posts", func(posts chi.Router) {
			posts.Get("/", handlers.Post.List)
			posts.With(authMiddleware.RequireAuth).Get("/my-posts", handlers.Post.MyPosts)
		})
	})

	return r
}
