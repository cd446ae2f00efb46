package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Los identificadores son ObjectID hexadecimales (24 caracteres) en todos los
// adaptadores, para que el formato inválido se detecte igual sin importar el store.

// NewID genera un identificador nuevo.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ValidID indica si s tiene el formato de identificador del store.
func ValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

// CheckID devuelve ErrInvalidID si s no es un identificador bien formado.
func CheckID(s string) error {
	if !ValidID(s) {
		return ErrInvalidID
	}
	return nil
}
