package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de persistencia admitidos.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Perfiles del control de acceso.
const (
	AuthModeGated  = "gated"  // POST/PUT/DELETE requieren sesión
	AuthModePublic = "public" // sin control
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	Mongo MongoConfig
	DB    DBConfig
	Auth  AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selecciona el adaptador de persistencia.
type StoreConfig struct {
	Driver string // mongo, postgres, memory
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI       string
	Database  string
	TimeoutMS int // server selection timeout
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// GitHubConfig credenciales de la OAuth App de GitHub.
type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// AuthConfig perfil del control de acceso, OAuth y sesión.
type AuthConfig struct {
	Mode              string
	GitHub            GitHubConfig
	SessionSecret     string // firma el state OAuth
	SessionTTLMinutes int
	CookieSecure      bool
	SuccessRedirect   string
	FailureRedirect   string
}

// Gated indica si las rutas de escritura exigen sesión.
func (c AuthConfig) Gated() bool {
	return c.Mode == AuthModeGated
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGODB_URI, AUTH_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	port := getInt(v, "PORT", 8080)
	port = getInt(v, "HTTP_PORT", port)

	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "catalog-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        port,
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", DriverMongo)),
		},
		Mongo: MongoConfig{
			URI:       getString(v, "MONGODB_URI", ""),
			Database:  getString(v, "DB_NAME", "catalog"),
			TimeoutMS: getInt(v, "MONGODB_TIMEOUT_MS", 5000),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalog"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Mode: strings.ToLower(getString(v, "AUTH_MODE", AuthModeGated)),
			GitHub: GitHubConfig{
				ClientID:     getString(v, "GITHUB_CLIENT_ID", ""),
				ClientSecret: getString(v, "GITHUB_CLIENT_SECRET", ""),
				CallbackURL:  getString(v, "GITHUB_CALLBACK_URL", ""),
			},
			SessionSecret:     getString(v, "SESSION_SECRET", ""),
			SessionTTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 1440),
			CookieSecure:      getBool(v, "SESSION_COOKIE_SECURE", false),
			SuccessRedirect:   getString(v, "AUTH_SUCCESS_REDIRECT", "/auth/me"),
			FailureRedirect:   getString(v, "AUTH_FAILURE_REDIRECT", "/auth/failure"),
		},
	}
}

// Validate rechaza combinaciones que impedirían arrancar.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("config: STORE_DRIVER desconocido %q", c.Store.Driver)
	}
	switch c.Auth.Mode {
	case AuthModeGated:
		if c.Auth.SessionSecret == "" {
			return fmt.Errorf("config: SESSION_SECRET es obligatorio con AUTH_MODE=gated")
		}
	case AuthModePublic:
	default:
		return fmt.Errorf("config: AUTH_MODE desconocido %q", c.Auth.Mode)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: puerto HTTP inválido %d", c.HTTP.Port)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
