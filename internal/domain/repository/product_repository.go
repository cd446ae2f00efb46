package repository

import (
	"context"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Mismo contrato de errores que CategoryRepository; el SKU repetido es el conflicto.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
