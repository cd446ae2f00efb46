package http

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

const (
	// SessionCookie nombre de la cookie que referencia la sesión del servidor.
	SessionCookie     = "catalog_sid"
	sessionUser       = "user"
	sessionLoginNonce = "login_nonce"
)

// SessionConfig opciones de la cookie de sesión.
type SessionConfig struct {
	TTL          time.Duration
	CookieSecure bool
}

// NewSessionStore crea el almacén de sesiones en memoria del proceso, indexado por cookie.
func NewSessionStore(cfg SessionConfig) *session.Store {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     cfg.TTL,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}

// SessionPrincipal carga el usuario de la sesión (si lo hay) en el contexto de la petición.
// Debe ir antes de AccessGate.
func SessionPrincipal(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		if user := userFromSession(sess); user != nil {
			c.SetUserContext(auth.WithPrincipal(c.UserContext(), user))
		}
		return c.Next()
	}
}

func userFromSession(sess *session.Session) *entity.User {
	raw, ok := sess.Get(sessionUser).(string)
	if !ok || raw == "" {
		return nil
	}
	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// startSession regenera el ID de sesión (evita fijación) y guarda el usuario.
func startSession(sess *session.Session, user *entity.User) error {
	if err := sess.Regenerate(); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sess.Set(sessionUser, string(raw))
	return sess.Save()
}
