package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Monedas admitidas para Product.Currency.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"

	DefaultCurrency = CurrencyEUR
)

// Product representa un artículo del catálogo.
// SKU es único y se persiste en mayúsculas; CategoryID no se verifica contra categories.
type Product struct {
	ID         string
	Name       string   `json:"name" validate:"required,min=2"`
	SKU        string   `json:"sku" validate:"required"`
	Price      float64  `json:"price" validate:"gte=0"`
	Currency   string   `json:"currency" validate:"required,oneof=EUR USD"`
	InStock    bool     `json:"inStock"`
	Quantity   float64  `json:"quantity" validate:"gte=0"`
	Tags       []string `json:"tags"`
	CategoryID string   `json:"categoryId" validate:"required,objectid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate aplica las reglas de esquema: longitud mínima, mínimos numéricos, enum de moneda.
func (p *Product) Validate() error {
	return validateSchema(p)
}

// NormalizeSKU recorta y pasa a mayúsculas; dos SKU que solo difieren en
// mayúsculas/minúsculas colisionan en el índice único.
func NormalizeSKU(sku string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(sku))
}
