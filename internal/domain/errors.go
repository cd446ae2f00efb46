package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidID    = errors.New("invalid id format")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("duplicate key")
	ErrUnauthorized = errors.New("authentication required")
)

// ValidationError describe un payload rechazado: campos requeridos ausentes
// o reglas de esquema incumplidas. Errors conserva el orden declarado.
type ValidationError struct {
	Message string
	Errors  []string
}

// NewMissingFieldsError construye el error para campos requeridos ausentes.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Errors:  fields,
	}
}

// NewSchemaError construye el error para violaciones de reglas (longitud mínima, mínimos, enum).
func NewSchemaError(details []string) *ValidationError {
	return &ValidationError{Message: "Validation error", Errors: details}
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError indica que no existe un registro con el identificador dado.
type NotFoundError struct {
	Resource string // "Category", "Product"
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError indica violación de unicidad; Key es el campo en conflicto.
type ConflictError struct {
	Key   string
	Value any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate key %s: %v", e.Key, e.Value)
}
func (e *ConflictError) Unwrap() error { return ErrConflict }
