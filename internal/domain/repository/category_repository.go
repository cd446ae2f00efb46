package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los identificadores mal formados devuelven domain.ErrInvalidID; la ausencia de registro,
// *domain.NotFoundError; un nombre repetido, *domain.ConflictError.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
