package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/board-service/internal/api/http/handlers"
	"github.com/spec-kit/board-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Posts          *handlers.PostsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Read paths are public; every mutation
// requires a verified bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/sign-up", cfg.Auth.Signup)
	authGroup.Post("/sign-in", cfg.Auth.Signin)

	app.Get("/posts", cfg.Posts.List)
	app.Get("/posts/search", cfg.Posts.Search)
	app.Get("/posts/:postId", cfg.Posts.Get)
	app.Get("/posts/:postId/comments", cfg.Comments.ListByPost)
	app.Get("/comments/:commentId", cfg.Comments.Get)
	app.Get("/users/:userId/posts", cfg.Posts.ListByUser)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/posts", cfg.Posts.Create)
	protected.Put("/posts/:postId", cfg.Posts.Update)
	protected.Delete("/posts/:postId", cfg.Posts.Delete)
	protected.Post("/posts/:postId/comments", cfg.Comments.Create)
	protected.Put("/comments/:commentId", cfg.Comments.Update)
	protected.Delete("/comments/:commentId", cfg.Comments.Delete)
}
