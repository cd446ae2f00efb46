package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalog-api/internal/interfaces/http"
)

func TestCategories_CicloCompleto(t *testing.T) {
	app := buildTestApp(t, false)

	id := createCategory(t, app, "Books")

	resp := do(t, app, request{method: http.MethodGet, path: "/categories/" + id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeJSON(t, resp)
	assert.Equal(t, "Books", got["name"])
	assert.Equal(t, id, got["id"])

	// Reemplazo completo: falta description.
	resp = do(t, app, request{method: http.MethodPut, path: "/categories/" + id, body: `{"name":"Lit"}`})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, apphttp.CodeValidation, body["code"])
	assert.Equal(t, "Missing required fields: description", body["message"])
	assert.Equal(t, []any{"description"}, body["errors"])

	resp = do(t, app, request{method: http.MethodDelete, path: "/categories/" + id})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, request{method: http.MethodGet, path: "/categories/" + id})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category not found", decodeJSON(t, resp)["message"])
}

func TestCategories_ListVacia(t *testing.T) {
	app := buildTestApp(t, true)
	resp := do(t, app, request{method: http.MethodGet, path: "/categories"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", readBody(t, resp))
}

func TestCategories_Update(t *testing.T) {
	app := buildTestApp(t, false)
	id := createCategory(t, app, "Books")

	resp := do(t, app, request{
		method: http.MethodPut,
		path:   "/categories/" + id,
		body:   `{"name":"  Lit ","description":"Literature"}`,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got := decodeJSON(t, do(t, app, request{method: http.MethodGet, path: "/categories/" + id}))
	assert.Equal(t, "Lit", got["name"])
	assert.Equal(t, "Literature", got["description"])
}

func TestCategories_Duplicado(t *testing.T) {
	app := buildTestApp(t, false)
	createCategory(t, app, "Books")

	resp := do(t, app, request{method: http.MethodPost, path: "/categories", body: `{"name":"Books","description":"x"}`})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Duplicate key error", body["message"])
	assert.Equal(t, map[string]any{"name": "Books"}, body["errors"])
}

func TestCategories_IDInvalido(t *testing.T) {
	app := buildTestApp(t, false)
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp := do(t, app, request{method: method, path: "/categories/not-an-id"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, method)
		assert.Equal(t, "Invalid id format", decodeJSON(t, resp)["message"])
	}
}

func TestCategories_NoExiste(t *testing.T) {
	app := buildTestApp(t, false)
	const missing = "65a0000000000000000000ff"

	resp := do(t, app, request{method: http.MethodPut, path: "/categories/" + missing, body: `{"name":"Lit","description":"d"}`})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, app, request{method: http.MethodDelete, path: "/categories/" + missing})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategories_Cuerpos(t *testing.T) {
	app := buildTestApp(t, false)

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantMessage string
	}{
		{"JSON malformado", `{"name":`, fiber.MIMEApplicationJSON, http.StatusBadRequest, "Invalid request body"},
		{"cuerpo vacío", "", "", http.StatusBadRequest, "Missing required fields: name, description"},
		{"solo espacios", `{"name":"  ","description":" "}`, fiber.MIMEApplicationJSON, http.StatusBadRequest, "Missing required fields: name, description"},
		{"nombre corto", `{"name":"A","description":"d"}`, fiber.MIMEApplicationJSON, http.StatusBadRequest, "Validation error"},
		{"claves en mayúsculas", `{"NAME":"Books","Description":"d"}`, fiber.MIMEApplicationJSON, http.StatusBadRequest, "Missing required fields: name, description"},
		{"formulario con claves en mayúsculas", "Name=Music&DESCRIPTION=Vinyl", fiber.MIMEApplicationForm, http.StatusBadRequest, "Missing required fields: name, description"},
		{"formulario", "name=Music&description=Vinyl", fiber.MIMEApplicationForm, http.StatusCreated, ""},
		{"tipo desconocido", "name=Other", fiber.MIMETextPlain, http.StatusBadRequest, "Missing required fields: name, description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, request{method: http.MethodPost, path: "/categories", body: tt.body, contentType: tt.contentType})
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeJSON(t, resp)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}
