// Package mongo implementa los puertos de persistencia sobre MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/catalog-api/pkg/config"
)

// Nombres de las colecciones.
const (
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
)

// ErrMissingURI no se configuró MONGODB_URI.
var ErrMissingURI = errors.New("missing MongoDB connection URI")

// Store agrupa la conexión y los handles de colección.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre la conexión, verifica con ping y asegura los índices únicos.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := []struct {
		collection string
		field      string
	}{
		{CategoriesCollection, "name"},
		{ProductsCollection, "sku"},
	}
	for _, u := range unique {
		_, err := s.db.Collection(u.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("crear índice único %s.%s: %w", u.collection, u.field, err)
		}
	}
	return nil
}

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo {
	return NewCategoryRepository(s.db.Collection(CategoriesCollection))
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo {
	return NewProductRepository(s.db.Collection(ProductsCollection))
}

// Ping verifica la conexión (health check).
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close cierra la conexión.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
