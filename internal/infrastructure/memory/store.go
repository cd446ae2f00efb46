// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa en tests y con STORE_DRIVER=memory; conserva el orden de inserción
// como orden natural y aplica las mismas reglas de unicidad que los stores reales.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// Store contiene ambas colecciones bajo un mismo lock.
type Store struct {
	mu         sync.RWMutex
	categories collection[entity.Category]
	products   collection[entity.Product]
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		categories: newCollection[entity.Category](),
		products:   newCollection[entity.Product](),
	}
}

type collection[T any] struct {
	order []string
	byID  map[string]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) insert(id string, v T) {
	c.order = append(c.order, id)
	c.byID[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Categories devuelve el repositorio de categorías sobre este store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devuelve el repositorio de productos sobre este store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de repository.CategoryRepository.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories.order))
	for _, c := range r.s.categories.list() {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "Category"}
	}
	return &c, nil
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if err := domain.CheckID(category.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUniqueName(category); err != nil {
		return err
	}
	r.s.categories.insert(category.ID, *category)
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if err := domain.CheckID(category.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.categories.byID[category.ID]
	if !ok {
		return &domain.NotFoundError{Resource: "Category"}
	}
	if err := r.checkUniqueName(category); err != nil {
		return err
	}
	current.Name = category.Name
	current.Description = category.Description
	current.UpdatedAt = category.UpdatedAt
	r.s.categories.byID[category.ID] = current
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	if err := domain.CheckID(id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.categories.remove(id) {
		return &domain.NotFoundError{Resource: "Category"}
	}
	return nil
}

func (r *CategoryRepo) checkUniqueName(category *entity.Category) error {
	for id, c := range r.s.categories.byID {
		if id != category.ID && c.Name == category.Name {
			return &domain.ConflictError{Key: "name", Value: category.Name}
		}
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products.order))
	for _, p := range r.s.products.list() {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "Product"}
	}
	return cloneProduct(p), nil
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	if err := domain.CheckID(product.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUniqueSKU(product); err != nil {
		return err
	}
	r.s.products.insert(product.ID, *cloneProduct(*product))
	return nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	if err := domain.CheckID(product.ID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products.byID[product.ID]
	if !ok {
		return &domain.NotFoundError{Resource: "Product"}
	}
	if err := r.checkUniqueSKU(product); err != nil {
		return err
	}
	next := *cloneProduct(*product)
	next.CreatedAt = current.CreatedAt
	r.s.products.byID[product.ID] = next
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	if err := domain.CheckID(id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.products.remove(id) {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}

func (r *ProductRepo) checkUniqueSKU(product *entity.Product) error {
	for id, p := range r.s.products.byID {
		if id != product.ID && p.SKU == product.SKU {
			return &domain.ConflictError{Key: "sku", Value: product.SKU}
		}
	}
	return nil
}

func cloneProduct(p entity.Product) *entity.Product {
	cp := p
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp
}
