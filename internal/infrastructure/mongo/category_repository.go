package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d categoryDocument) toEntity() *entity.Category {
	return &entity.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// CategoryRepo implementación del puerto CategoryRepository sobre la colección categories.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(coll *mongo.Collection) *CategoryRepo {
	return &CategoryRepo{coll: coll}
}

// List devuelve todas las categorías en orden natural.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d categoryDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Resource: "Category"}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return d.toEntity(), nil
}

// Create inserta la categoría con el ID ya asignado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	oid, err := objectID(category.ID)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, categoryDocument{
		ID:          oid,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	})
	if err != nil {
		if isDuplicateKey(err) {
			return &domain.ConflictError{Key: "name", Value: category.Name}
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update reemplaza name y description; createdAt no cambia.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	oid, err := objectID(category.ID)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: category.Name},
			{Key: "description", Value: category.Description},
			{Key: "updatedAt", Value: category.UpdatedAt},
		}}},
	)
	if err != nil {
		if isDuplicateKey(err) {
			return &domain.ConflictError{Key: "name", Value: category.Name}
		}
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Resource: "Category"}
	}
	return nil
}

// Delete elimina la categoría; los productos que la referencian no se tocan.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Resource: "Category"}
	}
	return nil
}
