// Package jwt firma y valida el parámetro state del flujo OAuth.
// El state viaja al proveedor y vuelve en el callback. Lleva un nonce que el
// llamador guarda en la sesión del navegador para atar el callback a quien
// inició el login.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StateClaims claims estándar más un nonce por intento de login.
type StateClaims struct {
	jwt.RegisteredClaims
	Nonce string `json:"nonce"`
}

// GenerateState genera un state firmado (HS256) con el nonce dado que expira tras ttl.
func GenerateState(secret, issuer, nonce string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if nonce == "" {
		return "", fmt.Errorf("jwt: nonce vacío")
	}
	now := time.Now()
	claims := StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Nonce: nonce,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseState valida firma, emisor y expiración del state.
func ParseState(secret, issuer, tokenString string) (*StateClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &StateClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*StateClaims)
	if !ok || !token.Valid || claims.Nonce == "" {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
