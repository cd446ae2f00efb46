package report

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/catalog-api/internal/application/catalog"
)

var _ catalog.XMLRenderer = (*XMLRenderer)(nil)

// XMLRenderer genera el catálogo en XML. El documento no incluye la fecha de
// generación para que el ETag solo cambie cuando cambian los datos.
type XMLRenderer struct{}

// NewXMLRenderer construye el renderizador.
func NewXMLRenderer() *XMLRenderer { return &XMLRenderer{} }

// RenderXML serializa el snapshot:
//
//	<catalog products="N">
//	  <category id=".." name="..">
//	    <product id=".." sku=".." inStock="true">
//	      <name/> <price currency=".."/> <quantity/> <tags><tag/></tags>
//	    </product>
//	  </category>
//	</catalog>
func (r *XMLRenderer) RenderXML(_ context.Context, snap *catalog.Snapshot) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("catalog")
	root.CreateAttr("products", strconv.Itoa(snap.ProductCount()))

	for _, sec := range snap.Sections {
		cat := root.CreateElement("category")
		if sec.CategoryID != "" {
			cat.CreateAttr("id", sec.CategoryID)
		}
		cat.CreateAttr("name", sec.CategoryName)
		for _, p := range sec.Products {
			el := cat.CreateElement("product")
			el.CreateAttr("id", p.ID)
			el.CreateAttr("sku", p.SKU)
			el.CreateAttr("inStock", strconv.FormatBool(p.InStock))
			el.CreateElement("name").SetText(p.Name)
			price := el.CreateElement("price")
			price.CreateAttr("currency", p.Currency)
			price.SetText(decimal.NewFromFloat(p.Price).String())
			el.CreateElement("quantity").SetText(decimal.NewFromFloat(p.Quantity).String())
			tags := el.CreateElement("tags")
			for _, t := range p.Tags {
				tags.CreateElement("tag").SetText(t)
			}
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar catálogo: %w", err)
	}
	return out, nil
}

// ETag hash SHA-256 de la forma canónica C14N del documento, entre comillas.
// Diferencias de indentación o de orden de atributos no cambian el valor.
func (r *XMLRenderer) ETag(doc []byte) (string, error) {
	canonical, err := canonicalize(doc)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return `"` + hex.EncodeToString(sum[:16]) + `"`, nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
