package dto

import (
	"time"

	"github.com/jhoicas/catalog-api/internal/application/validation"
)

// CategoryRequiredFields campos obligatorios en POST y PUT (reemplazo completo).
var CategoryRequiredFields = []string{"name", "description"}

// CategoryInput cuerpo de POST/PUT /categories.
type CategoryInput struct {
	Name        validation.Value `json:"name" swaggertype:"string"`
	Description validation.Value `json:"description" swaggertype:"string"`
}

// UnmarshalJSON asigna cada campo por su clave exacta.
func (in *CategoryInput) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}
	in.Name = fields["name"]
	in.Description = fields["description"]
	return nil
}

// Field implementa validation.Payload.
func (in CategoryInput) Field(name string) validation.Value {
	switch name {
	case "name":
		return in.Name
	case "description":
		return in.Description
	}
	return validation.Value{}
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
