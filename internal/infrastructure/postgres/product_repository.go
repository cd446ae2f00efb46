package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, price, currency, in_stock, quantity, tags, category_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p               entity.Product
		price, quantity decimal.Decimal
	)
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &price, &p.Currency, &p.InStock, &quantity,
		&p.Tags, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Price = price.InexactFloat64()
	p.Quantity = quantity.InexactFloat64()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, &domain.NotFoundError{Resource: "Product"}
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := domain.CheckID(product.ID); err != nil {
		return err
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		product.ID, product.Name, product.SKU,
		decimal.NewFromFloat(product.Price), product.Currency, product.InStock,
		decimal.NewFromFloat(product.Quantity), tagsOrEmpty(product.Tags), product.CategoryID,
		product.CreatedAt, product.UpdatedAt,
	)
	return r.writeError("insert product", product, err)
}

// Update reemplaza todos los campos normalizados del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := domain.CheckID(product.ID); err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, sku = $3, price = $4, currency = $5, in_stock = $6,
			quantity = $7, tags = $8, category_id = $9, updated_at = $10
		WHERE id = $1`,
		product.ID, product.Name, product.SKU,
		decimal.NewFromFloat(product.Price), product.Currency, product.InStock,
		decimal.NewFromFloat(product.Quantity), tagsOrEmpty(product.Tags), product.CategoryID,
		product.UpdatedAt,
	)
	if err != nil {
		return r.writeError("update product", product, err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if err := domain.CheckID(id); err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}

func (r *ProductRepo) writeError(op string, product *entity.Product, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return &domain.ConflictError{Key: "sku", Value: product.SKU}
	}
	if verr := checkViolation(err); verr != nil {
		return verr
	}
	return fmt.Errorf("%s: %w", op, err)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
