package dto

// ErrorResponse cuerpo de error HTTP. Errors lleva la lista de campos/reglas
// (validación) o el par clave/valor en conflicto (duplicados).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// CreatedResponse respuesta de una creación: solo el identificador asignado.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MessageResponse respuesta informativa.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status string `json:"status"`
}
