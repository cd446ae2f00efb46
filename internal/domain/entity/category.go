package entity

import "time"

// Category agrupa productos. Name es único en la colección.
type Category struct {
	ID          string
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate aplica las reglas de esquema (longitud mínima) sobre el registro ya normalizado.
func (c *Category) Validate() error {
	return validateSchema(c)
}
