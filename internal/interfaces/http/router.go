package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ExportUC   *catalog.ExportUseCase
	AuthUC     *auth.AuthUseCase
	Sessions   *session.Store
	Redirects  AuthRedirects
	Gated      bool // POST/PUT/DELETE requieren sesión
	Health     HealthCheck
	Logger     *logger.Logger
}

// Router registra las rutas de la API. Registrar middlewares extra (p. ej. swagger) antes de llamarlo:
// la última ruta es el 404 genérico.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/", Index)
	app.Get("/health", Health(deps.Health))

	app.Use(SessionPrincipal(deps.Sessions))

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Redirects, log)
	authGroup.Get("/github", authHandler.Login)
	authGroup.Get("/github/callback", authHandler.Callback)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Get("/failure", authHandler.Failure)
	authGroup.Post("/logout", authHandler.Logout)

	gate := AccessGate(deps.Gated)

	categories := app.Group("/categories", gate)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := app.Group("/products", gate)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Exportaciones (público)
	exports := app.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.ExportUC)
	exports.Get("/export.pdf", catalogHandler.ExportPDF)
	exports.Get("/export.xml", catalogHandler.ExportXML)

	app.Use(NotFound)
}
