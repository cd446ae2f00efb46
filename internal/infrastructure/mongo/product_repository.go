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

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	SKU        string             `bson:"sku"`
	Price      float64            `bson:"price"`
	Currency   string             `bson:"currency"`
	InStock    bool               `bson:"inStock"`
	Quantity   float64            `bson:"quantity"`
	Tags       []string           `bson:"tags"`
	CategoryID primitive.ObjectID `bson:"categoryId"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d productDocument) toEntity() *entity.Product {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &entity.Product{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		SKU:        d.SKU,
		Price:      d.Price,
		Currency:   d.Currency,
		InStock:    d.InStock,
		Quantity:   d.Quantity,
		Tags:       tags,
		CategoryID: d.CategoryID.Hex(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func newProductDocument(p *entity.Product) (productDocument, error) {
	oid, err := objectID(p.ID)
	if err != nil {
		return productDocument{}, err
	}
	catID, err := primitive.ObjectIDFromHex(p.CategoryID)
	if err != nil {
		return productDocument{}, domain.NewSchemaError([]string{"categoryId must be a valid id"})
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return productDocument{
		ID:         oid,
		Name:       p.Name,
		SKU:        p.SKU,
		Price:      p.Price,
		Currency:   p.Currency,
		InStock:    p.InStock,
		Quantity:   p.Quantity,
		Tags:       tags,
		CategoryID: catID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}

// ProductRepo implementación del puerto ProductRepository sobre la colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(coll *mongo.Collection) *ProductRepo {
	return &ProductRepo{coll: coll}
}

// List devuelve todos los productos en orden natural.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	out := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var d productDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Resource: "Product"}
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return d.toEntity(), nil
}

// Create inserta el producto con el ID ya asignado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := newProductDocument(product)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return &domain.ConflictError{Key: "sku", Value: product.SKU}
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos normalizados; createdAt no cambia.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	doc, err := newProductDocument(product)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: doc.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: doc.Name},
			{Key: "sku", Value: doc.SKU},
			{Key: "price", Value: doc.Price},
			{Key: "currency", Value: doc.Currency},
			{Key: "inStock", Value: doc.InStock},
			{Key: "quantity", Value: doc.Quantity},
			{Key: "tags", Value: doc.Tags},
			{Key: "categoryId", Value: doc.CategoryID},
			{Key: "updatedAt", Value: doc.UpdatedAt},
		}}},
	)
	if err != nil {
		if isDuplicateKey(err) {
			return &domain.ConflictError{Key: "sku", Value: product.SKU}
		}
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}

// Delete elimina el producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}
