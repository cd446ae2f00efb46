package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías en orden de inserción.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	var c entity.Category
	err := r.q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, &domain.NotFoundError{Resource: "Category"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if err := domain.CheckID(category.ID); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt,
	)
	return r.writeError("insert category", category, err)
}

// Update reemplaza name y description.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if err := domain.CheckID(category.ID); err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		return r.writeError("update category", category, err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "Category"}
	}
	return nil
}

// Delete elimina una categoría.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := domain.CheckID(id); err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "Category"}
	}
	return nil
}

func (r *CategoryRepo) writeError(op string, category *entity.Category, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return &domain.ConflictError{Key: "name", Value: category.Name}
	}
	if verr := checkViolation(err); verr != nil {
		return verr
	}
	return fmt.Errorf("%s: %w", op, err)
}
