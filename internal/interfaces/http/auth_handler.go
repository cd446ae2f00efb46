package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// AuthRedirects destinos tras el callback OAuth.
type AuthRedirects struct {
	Success string
	Failure string
}

// AuthHandler flujo OAuth con GitHub y sesión del servidor.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	sessions  *session.Store
	redirects AuthRedirects
	log       *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *session.Store, redirects AuthRedirects, log *logger.Logger) *AuthHandler {
	if redirects.Success == "" {
		redirects.Success = "/auth/me"
	}
	if redirects.Failure == "" {
		redirects.Failure = "/auth/failure"
	}
	return &AuthHandler{uc: uc, sessions: sessions, redirects: redirects, log: log}
}

// Login godoc
// @Summary      Iniciar sesión con GitHub
// @Tags         auth
// @Success      302
// @Router       /auth/github [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	url, nonce, err := h.uc.BeginLogin()
	if err != nil {
		return err
	}
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionLoginNonce, nonce)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect(url, fiber.StatusFound)
}

// Callback godoc
// @Summary      Callback OAuth de GitHub
// @Tags         auth
// @Param        code   query  string  true  "Código de autorización"
// @Param        state  query  string  true  "State firmado"
// @Success      302
// @Router       /auth/github/callback [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	// el nonce sirve para un solo callback
	nonce, _ := sess.Get(sessionLoginNonce).(string)
	sess.Delete(sessionLoginNonce)

	user, err := h.uc.CompleteLogin(c.UserContext(), c.Query("code"), c.Query("state"), nonce)
	if err != nil {
		h.log.Warn().Err(err).Str("request_id", requestID(c)).Msg("login con GitHub fallido")
		if !sess.Fresh() {
			if err := sess.Save(); err != nil {
				return err
			}
		}
		return c.Redirect(h.redirects.Failure, fiber.StatusFound)
	}
	if err := startSession(sess, user); err != nil {
		return err
	}
	h.log.Info().Str("user", user.Username).Msg("sesión iniciada")
	return c.Redirect(h.redirects.Success, fiber.StatusFound)
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFrom(c.UserContext())
	if !ok {
		return domain.ErrUnauthorized
	}
	return c.JSON(dto.MeResponse{User: *user})
}

// Failure godoc
// @Summary      Destino por defecto de un login fallido
// @Tags         auth
// @Produce      json
// @Failure      401  {object}  dto.MessageResponse
// @Router       /auth/failure [get]
func (h *AuthHandler) Failure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "GitHub authentication failed"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Destroy(); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}
