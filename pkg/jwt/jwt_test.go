package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalog-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "catalog-api-test"
)

func TestState_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.GenerateState(testSecret, testIssuer, "n-1", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.ParseState(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "n-1", claims.Nonce)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestState_NoncesDistintos(t *testing.T) {
	a, err := pkgjwt.GenerateState(testSecret, testIssuer, "n-1", time.Minute)
	require.NoError(t, err)
	b, err := pkgjwt.GenerateState(testSecret, testIssuer, "n-2", time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestState_Expirado(t *testing.T) {
	tok, err := pkgjwt.GenerateState(testSecret, testIssuer, "n-1", -time.Minute)
	require.NoError(t, err)
	_, err = pkgjwt.ParseState(testSecret, testIssuer, tok)
	assert.Error(t, err, "state expirado debe retornar error")
}

func TestState_SecretOEmisorIncorrecto(t *testing.T) {
	tok, err := pkgjwt.GenerateState(testSecret, testIssuer, "n-1", time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.ParseState("otro-secret", testIssuer, tok)
	assert.Error(t, err)
	_, err = pkgjwt.ParseState(testSecret, "otro-emisor", tok)
	assert.Error(t, err)
}

func TestState_SecretVacio(t *testing.T) {
	_, err := pkgjwt.GenerateState("", testIssuer, "n-1", time.Minute)
	assert.Error(t, err)
	_, err = pkgjwt.GenerateState(testSecret, testIssuer, "", time.Minute)
	assert.Error(t, err)
	_, err = pkgjwt.ParseState("", testIssuer, "x")
	assert.Error(t, err)
}
