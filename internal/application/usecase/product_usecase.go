package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/validation"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// CategoryID se acepta aunque la categoría no exista.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// List devuelve todos los productos en el orden natural del store.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Create valida, normaliza y persiste un producto. Devuelve el ID asignado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductInput) (string, error) {
	product, err := buildProduct(in)
	if err != nil {
		return "", err
	}
	now := uc.now().UTC()
	product.ID = domain.NewID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := uc.repo.Create(ctx, product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// Update reemplaza todos los campos normalizados del producto id.
// inStock ausente vuelve a true y tags ausente a lista vacía.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductInput) error {
	product, err := buildProduct(in)
	if err != nil {
		return err
	}
	product.ID = id
	product.UpdatedAt = uc.now().UTC()
	return uc.repo.Update(ctx, product)
}

// Delete elimina el producto id.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func buildProduct(in dto.ProductInput) (*entity.Product, error) {
	if missing := validation.MissingFields(in, dto.ProductRequiredFields); len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing)
	}

	var castErrs []string
	price, ok := in.Price.Number()
	if !ok {
		castErrs = append(castErrs, "price must be a number")
	}
	quantity, ok := in.Quantity.Number()
	if !ok {
		castErrs = append(castErrs, "quantity must be a number")
	}

	product := &entity.Product{
		Name:       in.Name.String(),
		SKU:        entity.NormalizeSKU(in.SKU.String()),
		Price:      price,
		Currency:   in.Currency.String(),
		InStock:    in.InStock.Bool(true),
		Quantity:   quantity,
		Tags:       in.Tags.Strings(),
		CategoryID: in.CategoryID.String(),
	}

	err := product.Validate()
	if len(castErrs) == 0 {
		if err != nil {
			return nil, err
		}
		return product, nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		castErrs = append(castErrs, verr.Errors...)
	}
	return nil, domain.NewSchemaError(castErrs)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		Price:      p.Price,
		Currency:   p.Currency,
		InStock:    p.InStock,
		Quantity:   p.Quantity,
		Tags:       tags,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
