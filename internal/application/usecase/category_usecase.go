package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/validation"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
// Eliminar una categoría no toca los productos que la referencian.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// List devuelve todas las categorías en el orden natural del store.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Create valida, normaliza y persiste una categoría. Devuelve el ID asignado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryInput) (string, error) {
	category, err := buildCategory(in)
	if err != nil {
		return "", err
	}
	now := uc.now().UTC()
	category.ID = domain.NewID()
	category.CreatedAt = now
	category.UpdatedAt = now
	if err := uc.repo.Create(ctx, category); err != nil {
		return "", err
	}
	return category.ID, nil
}

// Update reemplaza todos los campos de la categoría id. Exige los mismos campos que Create.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryInput) error {
	category, err := buildCategory(in)
	if err != nil {
		return err
	}
	category.ID = id
	category.UpdatedAt = uc.now().UTC()
	return uc.repo.Update(ctx, category)
}

// Delete elimina la categoría id.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func buildCategory(in dto.CategoryInput) (*entity.Category, error) {
	if missing := validation.MissingFields(in, dto.CategoryRequiredFields); len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing)
	}
	category := &entity.Category{
		Name:        in.Name.String(),
		Description: in.Description.String(),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
