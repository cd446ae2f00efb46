package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/infrastructure/memory"
)

type stubRenderer struct {
	snap *catalog.Snapshot
}

func (s *stubRenderer) RenderPDF(_ context.Context, snap *catalog.Snapshot) ([]byte, error) {
	s.snap = snap
	return []byte("%PDF-stub"), nil
}

func (s *stubRenderer) RenderXML(_ context.Context, snap *catalog.Snapshot) ([]byte, error) {
	s.snap = snap
	return []byte("<catalog/>"), nil
}

func (s *stubRenderer) ETag(doc []byte) (string, error) {
	return `"` + string(doc) + `"`, nil
}

func seed(t *testing.T, store *memory.Store) (books, music string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	books, music = domain.NewID(), domain.NewID()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: books, Name: "Books", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: music, Name: "Music", CreatedAt: now, UpdatedAt: now}))
	for _, p := range []*entity.Product{
		{ID: domain.NewID(), Name: "Dune", SKU: "BK-1", CategoryID: books},
		{ID: domain.NewID(), Name: "Ghost", SKU: "XX-1", CategoryID: domain.NewID()},
		{ID: domain.NewID(), Name: "Emma", SKU: "BK-2", CategoryID: books},
	} {
		require.NoError(t, store.Products().Create(ctx, p))
	}
	return books, music
}

func TestSnapshot_AgrupaPorCategoria(t *testing.T) {
	store := memory.NewStore()
	books, music := seed(t, store)
	r := &stubRenderer{}
	uc := catalog.NewExportUseCase(store.Categories(), store.Products(), r, r)

	snap, err := uc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Sections, 3)

	assert.Equal(t, books, snap.Sections[0].CategoryID)
	require.Len(t, snap.Sections[0].Products, 2)
	assert.Equal(t, "Dune", snap.Sections[0].Products[0].Name)
	assert.Equal(t, "Emma", snap.Sections[0].Products[1].Name)

	assert.Equal(t, music, snap.Sections[1].CategoryID)
	assert.Empty(t, snap.Sections[1].Products)

	assert.Equal(t, catalog.UnknownCategory, snap.Sections[2].CategoryName)
	require.Len(t, snap.Sections[2].Products, 1)
	assert.Equal(t, "Ghost", snap.Sections[2].Products[0].Name)
	assert.Equal(t, 3, snap.ProductCount())
}

func TestExportXML_DevuelveETag(t *testing.T) {
	store := memory.NewStore()
	r := &stubRenderer{}
	uc := catalog.NewExportUseCase(store.Categories(), store.Products(), r, r)

	doc, etag, err := uc.ExportXML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<catalog/>", string(doc))
	assert.Equal(t, `"<catalog/>"`, etag)
	assert.Empty(t, r.snap.Sections)
}

func TestExportPDF(t *testing.T) {
	store := memory.NewStore()
	seed(t, store)
	r := &stubRenderer{}
	uc := catalog.NewExportUseCase(store.Categories(), store.Products(), r, r)

	out, err := uc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(out))
	assert.Equal(t, 3, r.snap.ProductCount())
}
