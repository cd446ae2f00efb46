package validation

// Payload expone los campos de un cuerpo de petición por nombre.
type Payload interface {
	Field(name string) Value
}

// MissingFields devuelve los campos requeridos ausentes, en el orden declarado en required.
func MissingFields(p Payload, required []string) []string {
	var missing []string
	for _, name := range required {
		if p.Field(name).Missing() {
			missing = append(missing, name)
		}
	}
	return missing
}
