package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/catalog"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalog-api/internal/infrastructure/report"
	apphttp "github.com/jhoicas/catalog-api/internal/interfaces/http"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	goodCode     = "good-code"
	authorizeURL = "https://github.test/login/oauth/authorize"
)

// fakeProvider simula GitHub: solo acepta goodCode.
type fakeProvider struct{}

func (fakeProvider) AuthCodeURL(state string) string {
	return authorizeURL + "?state=" + url.QueryEscape(state)
}

func (fakeProvider) Exchange(_ context.Context, code string) (*entity.User, error) {
	if code != goodCode {
		return nil, errors.New("bad_verification_code")
	}
	return &entity.User{ID: "42", Username: "octocat", DisplayName: "The Octocat", ProfileURL: "https://github.com/octocat"}, nil
}

// buildTestApp arma la app completa sobre el store en memoria.
func buildTestApp(t *testing.T, gated bool) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	app := apphttp.NewApp(apphttp.AppOptions{Name: "catalog-test", Logger: log})
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(store.Categories()),
		ProductUC:  usecase.NewProductUseCase(store.Products()),
		ExportUC: catalog.NewExportUseCase(store.Categories(), store.Products(),
			report.NewPDFRenderer("Catalog"), report.NewXMLRenderer()),
		AuthUC:   auth.NewAuthUseCase(fakeProvider{}, auth.StateConfig{Secret: testSecret, Issuer: "catalog-test"}),
		Sessions: apphttp.NewSessionStore(apphttp.SessionConfig{}),
		Gated:    gated,
		Logger:   log,
	})
	return app
}

type request struct {
	method      string
	path        string
	body        string
	contentType string
	header      map[string]string
	cookies     []*http.Cookie
}

func do(t *testing.T, app *fiber.App, r request) *http.Response {
	t.Helper()
	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != "" {
		ct := r.contentType
		if ct == "" {
			ct = fiber.MIMEApplicationJSON
		}
		req.Header.Set(fiber.HeaderContentType, ct)
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// sessionCookie devuelve la cookie de sesión emitida en resp, si la hay.
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c
		}
	}
	return nil
}

// beginLogin pide /auth/github y devuelve el state firmado y la cookie que lo ata al navegador.
func beginLogin(t *testing.T, app *fiber.App) (string, *http.Cookie) {
	t.Helper()
	resp := do(t, app, request{method: http.MethodGet, path: "/auth/github"})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "el login debe emitir la cookie de sesión")
	return state, cookie
}

func callback(t *testing.T, app *fiber.App, code, state string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	return do(t, app, request{
		method:  http.MethodGet,
		path:    "/auth/github/callback?code=" + url.QueryEscape(code) + "&state=" + url.QueryEscape(state),
		cookies: cookies,
	})
}

// login recorre el flujo OAuth contra fakeProvider y devuelve la cookie de sesión.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	state, pre := beginLogin(t, app)
	resp := callback(t, app, goodCode, state, pre)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/auth/me", resp.Header.Get(fiber.HeaderLocation))
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "el callback no emitió la cookie de sesión")
	require.NotEqual(t, pre.Value, cookie.Value, "el ID de sesión se regenera al iniciar sesión")
	return cookie
}

func createCategory(t *testing.T, app *fiber.App, name string, cookies ...*http.Cookie) string {
	t.Helper()
	resp := do(t, app, request{
		method:  http.MethodPost,
		path:    "/categories",
		body:    `{"name":"` + name + `","description":"desc"}`,
		cookies: cookies,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := decodeJSON(t, resp)["id"].(string)
	require.NotEmpty(t, id)
	return id
}
