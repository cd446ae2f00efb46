package auth

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

type principalKey struct{}

// WithPrincipal devuelve un contexto que lleva al usuario autenticado de la petición.
func WithPrincipal(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// PrincipalFrom devuelve el usuario autenticado, si lo hay.
func PrincipalFrom(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(principalKey{}).(*entity.User)
	return user, ok && user != nil
}
