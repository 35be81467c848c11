package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-panel-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Products *handlers.ProductsHandler
	Orders   *handlers.OrdersHandler
	Auth     *handlers.AuthHandler
	Stats    *handlers.StatsHandler
}

// RegisterRoutes wires HTTP routes. The collection routes carry no session
// check; the session boundary only gates itself.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	users := app.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	products := app.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Post("/", cfg.Products.Create)
	products.Get("/:id", cfg.Products.Get)
	products.Put("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	orders := app.Group("/orders")
	orders.Get("/", cfg.Orders.List)
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Put("/:id", cfg.Orders.Update)
	orders.Delete("/:id", cfg.Orders.Delete)

	auth := app.Group("/auth")
	auth.Post("/login", cfg.Auth.Login)
	auth.Get("/session", cfg.Auth.Session)
	auth.Post("/logout", cfg.Auth.Logout)

	app.Get("/dashboard/stats", cfg.Stats.Stats)
}
