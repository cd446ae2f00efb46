package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/jhoicas/catalog-api/internal/infrastructure/github"
)

func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 583231, "login": "octocat", "name": "The Octocat", "html_url": "https://github.com/octocat"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newProvider(t *testing.T, srv *httptest.Server) *github.Provider {
	t.Helper()
	p, err := github.NewProvider(github.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
	}).WithEndpoints(oauth2.Endpoint{
		AuthURL:   srv.URL + "/login/oauth/authorize",
		TokenURL:  srv.URL + "/login/oauth/access_token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/")
	require.NoError(t, err)
	return p
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := github.NewProvider(github.Config{ClientID: "client", CallbackURL: "http://localhost/cb"})
	raw := p.AuthCodeURL("st4te")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "st4te", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "read:user", u.Query().Get("scope"))
}

func TestProvider_Exchange(t *testing.T) {
	srv := newFakeGitHub(t)
	user, err := newProvider(t, srv).Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "583231", user.ID)
	assert.Equal(t, "octocat", user.Username)
	assert.Equal(t, "The Octocat", user.DisplayName)
	assert.Equal(t, "https://github.com/octocat", user.ProfileURL)
}

func TestProvider_ExchangeCodigoInvalido(t *testing.T) {
	srv := newFakeGitHub(t)
	_, err := newProvider(t, srv).Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestProvider_PerfilRechazado(t *testing.T) {
	srv := newFakeGitHub(t)
	p, err := github.NewProvider(github.Config{ClientID: "client", ClientSecret: "secret"}).WithEndpoints(oauth2.Endpoint{
		TokenURL:  srv.URL + "/login/oauth/access_token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, srv.URL+"/missing/")
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), "good-code")
	assert.Error(t, err, "un 404 de la API no produce usuario")
}
