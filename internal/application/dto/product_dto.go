package dto

import (
	"time"

	"github.com/jhoicas/catalog-api/internal/application/validation"
)

// ProductRequiredFields campos obligatorios en POST y PUT (reemplazo completo).
var ProductRequiredFields = []string{"name", "sku", "price", "currency", "quantity", "categoryId"}

// ProductInput cuerpo de POST/PUT /products. inStock y tags son opcionales.
type ProductInput struct {
	Name       validation.Value `json:"name" swaggertype:"string"`
	SKU        validation.Value `json:"sku" swaggertype:"string"`
	Price      validation.Value `json:"price" swaggertype:"number"`
	Currency   validation.Value `json:"currency" swaggertype:"string" enums:"EUR,USD"`
	InStock    validation.Value `json:"inStock" swaggertype:"boolean"`
	Quantity   validation.Value `json:"quantity" swaggertype:"number"`
	Tags       validation.Value `json:"tags" swaggertype:"array,string"`
	CategoryID validation.Value `json:"categoryId" swaggertype:"string"`
}

// UnmarshalJSON asigna cada campo por su clave exacta.
func (in *ProductInput) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}
	*in = ProductInput{
		Name:       fields["name"],
		SKU:        fields["sku"],
		Price:      fields["price"],
		Currency:   fields["currency"],
		InStock:    fields["inStock"],
		Quantity:   fields["quantity"],
		Tags:       fields["tags"],
		CategoryID: fields["categoryId"],
	}
	return nil
}

// Field implementa validation.Payload.
func (in ProductInput) Field(name string) validation.Value {
	switch name {
	case "name":
		return in.Name
	case "sku":
		return in.SKU
	case "price":
		return in.Price
	case "currency":
		return in.Currency
	case "inStock":
		return in.InStock
	case "quantity":
		return in.Quantity
	case "tags":
		return in.Tags
	case "categoryId":
		return in.CategoryID
	}
	return validation.Value{}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	InStock    bool      `json:"inStock"`
	Quantity   float64   `json:"quantity"`
	Tags       []string  `json:"tags"`
	CategoryID string    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
