// @title          Catalog API
// @version        1.0
// @description    API CRUD de categorías y productos con sesión OAuth de GitHub.
// @BasePath       /
// @securityDefinitions.apikey  Session
// @in                          cookie
// @name                        catalog_sid
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/catalog-api/docs"
	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
	"github.com/jhoicas/catalog-api/internal/infrastructure/github"
	"github.com/jhoicas/catalog-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalog-api/internal/infrastructure/mongo"
	"github.com/jhoicas/catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-api/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/catalog-api/internal/interfaces/http"
	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// stores puertos de persistencia del driver elegido y su cierre.
type stores struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	ping       func(context.Context) error
	close      func(context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		st, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &stores{categories: st.Categories(), products: st.Products(), ping: st.Ping, close: st.Close}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			categories: postgres.NewCategoryRepository(pool),
			products:   postgres.NewProductRepository(pool),
			ping:       pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.DriverMemory:
		st := memory.NewStore()
		return &stores{
			categories: st.Categories(),
			products:   st.Products(),
			close:      func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("driver de persistencia desconocido %q", cfg.Store.Driver)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("auth_mode", cfg.Auth.Mode).
		Msg("iniciando aplicación")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacén")
	}

	categoryUC := usecase.NewCategoryUseCase(st.categories)
	productUC := usecase.NewProductUseCase(st.products)
	exportUC := catalog.NewExportUseCase(st.categories, st.products,
		report.NewPDFRenderer(cfg.App.Name), report.NewXMLRenderer())

	provider := github.NewProvider(github.Config{
		ClientID:     cfg.Auth.GitHub.ClientID,
		ClientSecret: cfg.Auth.GitHub.ClientSecret,
		CallbackURL:  cfg.Auth.GitHub.CallbackURL,
	})
	authUC := auth.NewAuthUseCase(provider, auth.StateConfig{
		Secret: cfg.Auth.SessionSecret,
		Issuer: cfg.App.Name,
	})
	sessions := httpRouter.NewSessionStore(httpRouter.SessionConfig{
		TTL:          time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute,
		CookieSecure: cfg.Auth.CookieSecure,
	})

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log,
	})

	// Swagger UI: http://localhost:<port>/api-docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "api-docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		ExportUC:   exportUC,
		AuthUC:     authUC,
		Sessions:   sessions,
		Redirects: httpRouter.AuthRedirects{
			Success: cfg.Auth.SuccessRedirect,
			Failure: cfg.Auth.FailureRedirect,
		},
		Gated:  cfg.Auth.Gated(),
		Health: st.ping,
		Logger: log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := st.close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del almacén")
	}

	log.Info().Msg("aplicación detenida")
}
