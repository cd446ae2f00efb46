package entity

// User es el principal autenticado tras el flujo OAuth.
// Solo se guarda lo mínimo en la sesión.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	ProfileURL  string `json:"profileUrl"`
}
