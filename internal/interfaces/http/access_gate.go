package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/domain"
)

// AccessGate exige un principal en el contexto para POST/PUT/PATCH/DELETE.
// Con gated=false deja pasar todo.
func AccessGate(gated bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gated {
			return c.Next()
		}
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if _, ok := auth.PrincipalFrom(c.UserContext()); !ok {
			return domain.ErrUnauthorized
		}
		return c.Next()
	}
}
