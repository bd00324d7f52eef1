package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"catalogo/internal/auth"
	"catalogo/internal/config"
	"catalogo/internal/domain"
	applog "catalogo/internal/log"
)

// NewApp wires the full route table. Shared by main and the handler tests so
// both exercise the same middleware chain.
func NewApp(cfg config.Config, db *sqlx.DB) *fiber.App {
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	deps := NewDeps(db, tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Server().MaxRequestBodySize = 1 << 20

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("¡Hola, backend funcionando!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return ok(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	requireAuth := RequireAuth(tokens)
	adminOnly := RequireRoles(domain.RolAdmin)

	// Auth
	authGroup := app.Group("/auth")
	authGroup.Post("/register", requireAuth, adminOnly, deps.AuthHandler.Register)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return fail(c, fiber.StatusTooManyRequests, "Demasiados intentos, probá más tarde")
		},
	}), deps.AuthHandler.Login)
	authGroup.Get("/me", requireAuth, deps.AuthHandler.Me)

	// Productos
	productos := app.Group("/productos", requireAuth)
	productos.Get("/", deps.ProductHandler.List)
	productos.Get("/:id", deps.ProductHandler.Get)
	productos.Post("/", adminOnly, deps.ProductHandler.Create)
	productos.Put("/:id", adminOnly, deps.ProductHandler.Update)
	productos.Delete("/:id", adminOnly, deps.ProductHandler.Delete)

	// Categorías
	categorias := app.Group("/categorias", requireAuth)
	categorias.Get("/", deps.CategoryHandler.List)
	categorias.Post("/", adminOnly, deps.CategoryHandler.Create)
	categorias.Put("/:id", adminOnly, deps.CategoryHandler.Update)
	categorias.Delete("/:id", adminOnly, deps.CategoryHandler.Delete)

	// Marcas: public read for UI selects
	app.Get("/marcas", deps.BrandHandler.List)

	app.Use(func(c *fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, "Recurso no encontrado")
	})

	return app
}
