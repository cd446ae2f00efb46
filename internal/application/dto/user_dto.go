package dto

import "github.com/jhoicas/catalog-api/internal/domain/entity"

// MeResponse usuario de la sesión actual.
type MeResponse struct {
	User entity.User `json:"user"`
}
