package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
)

// Index godoc
// @Summary      Mensaje de bienvenida
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Index(c *fiber.Ctx) error {
	return c.SendString("Catalog API is running. Visit /api-docs")
}

// HealthCheck verifica una dependencia (p. ej. ping al almacén).
type HealthCheck func(ctx context.Context) error

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(check HealthCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if check != nil {
			if err := check(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable"})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok"})
	}
}
