package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/pkg/jwt"
)

// ErrInvalidState el state del callback no es válido (firma, emisor, expiración
// o nonce distinto al de la sesión que inició el login).
var ErrInvalidState = errors.New("oauth: state inválido")

// IdentityProvider es el proveedor OAuth externo (redirección + intercambio del código).
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*entity.User, error)
}

// StateConfig configuración del state firmado.
type StateConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AuthUseCase orquesta el ida y vuelta OAuth. La sesión la gestiona la capa HTTP.
type AuthUseCase struct {
	provider IdentityProvider
	stateCfg StateConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider IdentityProvider, stateCfg StateConfig) *AuthUseCase {
	if stateCfg.TTL <= 0 {
		stateCfg.TTL = 10 * time.Minute
	}
	return &AuthUseCase{provider: provider, stateCfg: stateCfg}
}

// BeginLogin devuelve la URL del proveedor a la que redirigir al usuario y el
// nonce que el llamador debe guardar en la sesión del navegador.
func (uc *AuthUseCase) BeginLogin() (redirect, nonce string, err error) {
	nonce = uuid.NewString()
	state, err := jwt.GenerateState(uc.stateCfg.Secret, uc.stateCfg.Issuer, nonce, uc.stateCfg.TTL)
	if err != nil {
		return "", "", fmt.Errorf("generar state: %w", err)
	}
	return uc.provider.AuthCodeURL(state), nonce, nil
}

// CompleteLogin valida el state contra el nonce de la sesión, intercambia el
// código y devuelve el usuario.
func (uc *AuthUseCase) CompleteLogin(ctx context.Context, code, state, nonce string) (*entity.User, error) {
	claims, err := jwt.ParseState(uc.stateCfg.Secret, uc.stateCfg.Issuer, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if nonce == "" || subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(nonce)) != 1 {
		return nil, fmt.Errorf("%w: el nonce no coincide con la sesión", ErrInvalidState)
	}
	if code == "" {
		return nil, errors.New("oauth: falta el código de autorización")
	}
	user, err := uc.provider.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("intercambiar código: %w", err)
	}
	return user, nil
}
