package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/infrastructure/mongo"
	"github.com/jhoicas/catalog-api/pkg/config"
)

// Requiere un MongoDB real: MONGODB_TEST_URI=mongodb://localhost:27017 go test ./...
func connectForTest(t *testing.T) *mongo.Store {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := mongo.Connect(ctx, config.MongoConfig{
		URI:       uri,
		Database:  "catalog_test_" + domain.NewID(),
		TimeoutMS: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestConnect_SinURI(t *testing.T) {
	_, err := mongo.Connect(context.Background(), config.MongoConfig{})
	assert.ErrorIs(t, err, mongo.ErrMissingURI)
}

func TestStore_CategoryCRUD(t *testing.T) {
	store := connectForTest(t)
	ctx := context.Background()
	repo := store.Categories()

	c := &entity.Category{ID: domain.NewID(), Name: "Books", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, c))

	err := repo.Create(ctx, &entity.Category{ID: domain.NewID(), Name: "Books"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ProductSKUUnico(t *testing.T) {
	store := connectForTest(t)
	ctx := context.Background()
	repo := store.Products()

	p := &entity.Product{ID: domain.NewID(), Name: "Pen", SKU: "PEN", Currency: "EUR", CategoryID: domain.NewID()}
	require.NoError(t, repo.Create(ctx, p))
	dup := *p
	dup.ID = domain.NewID()
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
