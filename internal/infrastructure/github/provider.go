// Package github implementa auth.IdentityProvider sobre OAuth de GitHub.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	gogithub "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
	oauth2github "golang.org/x/oauth2/github"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

var _ auth.IdentityProvider = (*Provider)(nil)

// Config credenciales de la OAuth App.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Provider intercambia el código por un token y lee el perfil del usuario.
type Provider struct {
	oauth   *oauth2.Config
	apiBase *url.URL
}

// NewProvider construye el proveedor con el endpoint de GitHub.
func NewProvider(cfg Config) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     oauth2github.Endpoint,
			Scopes:       []string{"read:user"},
		},
	}
}

// WithEndpoints reemplaza los endpoints OAuth y la URL base de la API REST
// (servidores de prueba o GitHub Enterprise). apiBase debe terminar en "/".
func (p *Provider) WithEndpoints(endpoint oauth2.Endpoint, apiBase string) (*Provider, error) {
	u, err := url.Parse(apiBase)
	if err != nil {
		return nil, fmt.Errorf("github: url de la api: %w", err)
	}
	p.oauth.Endpoint = endpoint
	p.apiBase = u
	return p, nil
}

// AuthCodeURL devuelve la URL de autorización con el state dado.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange canjea el código y devuelve el perfil mínimo del usuario.
func (p *Provider) Exchange(ctx context.Context, code string) (*entity.User, error) {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github: exchange: %w", err)
	}
	client := gogithub.NewClient(p.oauth.Client(ctx, tok))
	if p.apiBase != nil {
		client.BaseURL = p.apiBase
	}
	gu, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("github: perfil: %w", err)
	}
	return &entity.User{
		ID:          strconv.FormatInt(gu.GetID(), 10),
		Username:    gu.GetLogin(),
		DisplayName: gu.GetName(),
		ProfileURL:  gu.GetHTMLURL(),
	}, nil
}
