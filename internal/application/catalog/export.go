// Package catalog arma la vista exportable del catálogo (productos agrupados por categoría).
package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/domain/repository"
)

// UnknownCategory nombre de la sección para productos cuya categoría no existe.
const UnknownCategory = "-"

// Section una categoría con sus productos. CategoryID vacío agrupa referencias colgantes.
type Section struct {
	CategoryID   string
	CategoryName string
	Products     []*entity.Product
}

// Snapshot catálogo completo en un instante.
type Snapshot struct {
	GeneratedAt time.Time
	Sections    []Section
}

// ProductCount total de productos en todas las secciones.
func (s *Snapshot) ProductCount() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Products)
	}
	return n
}

// PDFRenderer genera la representación PDF del catálogo.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, snap *Snapshot) ([]byte, error)
}

// XMLRenderer genera el XML del catálogo y su ETag (estable entre renders del mismo contenido).
type XMLRenderer interface {
	RenderXML(ctx context.Context, snap *Snapshot) ([]byte, error)
	ETag(doc []byte) (string, error)
}

// ExportUseCase exportaciones de solo lectura del catálogo.
type ExportUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	pdf        PDFRenderer
	xml        XMLRenderer
	now        func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	pdf PDFRenderer,
	xml XMLRenderer,
) *ExportUseCase {
	return &ExportUseCase{categories: categories, products: products, pdf: pdf, xml: xml, now: time.Now}
}

// Snapshot agrupa los productos por categoría en el orden de listado de categorías.
// Los productos con categoryId colgante van al final bajo UnknownCategory.
func (uc *ExportUseCase) Snapshot(ctx context.Context) (*Snapshot, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(categories)+1)
	index := make(map[string]int, len(categories))
	for _, c := range categories {
		index[c.ID] = len(sections)
		sections = append(sections, Section{CategoryID: c.ID, CategoryName: c.Name, Products: []*entity.Product{}})
	}
	var orphans []*entity.Product
	for _, p := range products {
		i, ok := index[p.CategoryID]
		if !ok {
			orphans = append(orphans, p)
			continue
		}
		sections[i].Products = append(sections[i].Products, p)
	}
	if len(orphans) > 0 {
		sections = append(sections, Section{CategoryName: UnknownCategory, Products: orphans})
	}
	return &Snapshot{GeneratedAt: uc.now().UTC(), Sections: sections}, nil
}

// ExportPDF devuelve el catálogo como PDF.
func (uc *ExportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RenderPDF(ctx, snap)
}

// ExportXML devuelve el catálogo como XML junto con su ETag.
func (uc *ExportUseCase) ExportXML(ctx context.Context) ([]byte, string, error) {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.xml.RenderXML(ctx, snap)
	if err != nil {
		return nil, "", err
	}
	etag, err := uc.xml.ETag(doc)
	if err != nil {
		return nil, "", err
	}
	return doc, etag, nil
}
