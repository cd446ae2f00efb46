package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, 5000, cfg.Mongo.TimeoutMS)
	assert.Equal(t, AuthModeGated, cfg.Auth.Mode)
	assert.Equal(t, "/auth/me", cfg.Auth.SuccessRedirect)
	assert.Equal(t, "/auth/failure", cfg.Auth.FailureRedirect)
}

func TestFromViper_PortCompat(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{"PORT": "3000"}))
	assert.Equal(t, 3000, cfg.HTTP.Port)

	cfg = fromViper(newViper(map[string]any{"PORT": "3000", "HTTP_PORT": "9090"}))
	assert.Equal(t, 9090, cfg.HTTP.Port, "HTTP_PORT tiene prioridad")
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestFromViper_DBNameCompartido(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{"DB_NAME": "shop", "STORE_DRIVER": "Postgres"}))
	assert.Equal(t, "shop", cfg.Mongo.Database)
	assert.Equal(t, "shop", cfg.DB.DBName)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
}

func TestValidate(t *testing.T) {
	cfg := fromViper(newViper(map[string]any{"SESSION_SECRET": "x"}))
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Auth.Gated())

	cfg = fromViper(viper.New())
	assert.Error(t, cfg.Validate(), "gated sin SESSION_SECRET")

	cfg = fromViper(newViper(map[string]any{"AUTH_MODE": "public"}))
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Auth.Gated())

	cfg = fromViper(newViper(map[string]any{"AUTH_MODE": "public", "STORE_DRIVER": "redis"}))
	assert.Error(t, cfg.Validate())

	cfg = fromViper(newViper(map[string]any{"AUTH_MODE": "sometimes"}))
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "catalog", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/catalog?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
