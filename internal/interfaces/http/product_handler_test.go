package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/domain"
)

func TestProducts_Crear(t *testing.T) {
	app := buildTestApp(t, false)
	catID := createCategory(t, app, "Books")

	resp := do(t, app, request{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":" Dune ","sku":"bk-1","price":"12.50","currency":"USD","quantity":3,"tags":["scifi"," classic "],"categoryId":"` + catID + `"}`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeJSON(t, resp)["id"].(string)

	got := decodeJSON(t, do(t, app, request{method: http.MethodGet, path: "/products/" + id}))
	assert.Equal(t, "Dune", got["name"])
	assert.Equal(t, "BK-1", got["sku"])
	assert.Equal(t, 12.5, got["price"])
	assert.Equal(t, "USD", got["currency"])
	assert.Equal(t, true, got["inStock"])
	assert.Equal(t, float64(3), got["quantity"])
	assert.Equal(t, []any{"scifi", "classic"}, got["tags"])
	assert.Equal(t, catID, got["categoryId"])
}

func TestProducts_CamposFaltantes(t *testing.T) {
	app := buildTestApp(t, false)

	resp := do(t, app, request{method: http.MethodPost, path: "/products", body: `{"name":"Dune","price":0}`})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Missing required fields: sku, currency, quantity, categoryId", body["message"])
	assert.Equal(t, []any{"sku", "currency", "quantity", "categoryId"}, body["errors"])
}

func TestProducts_ReglasDeEsquema(t *testing.T) {
	app := buildTestApp(t, false)

	resp := do(t, app, request{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":"Dune","sku":"X","price":-1,"currency":"GBP","quantity":1,"categoryId":"nope"}`,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Validation error", body["message"])
	errs, _ := body["errors"].([]any)
	assert.Contains(t, errs, "price must be >= 0")
	assert.Contains(t, errs, "currency must be one of: EUR, USD")
	assert.Contains(t, errs, "categoryId must be a valid id")
}

func TestProducts_PrecioNoFinito(t *testing.T) {
	app := buildTestApp(t, false)

	for _, price := range []string{`1e400`, `"-1e400"`} {
		resp := do(t, app, request{
			method: http.MethodPost,
			path:   "/products",
			body:   `{"name":"Dune","sku":"bk-1","price":` + price + `,"currency":"EUR","quantity":1,"categoryId":"` + domain.NewID() + `"}`,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, price)
		assert.Equal(t, []any{"price must be a number"}, decodeJSON(t, resp)["errors"], price)
	}

	resp := do(t, app, request{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":"Dune","sku":"bk-1","price":1,"currency":"EUR","quantity":1e400,"categoryId":"` + domain.NewID() + `"}`,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, http.StatusOK, do(t, app, request{method: http.MethodGet, path: "/products"}).StatusCode)
	assert.Equal(t, http.StatusOK, do(t, app, request{method: http.MethodGet, path: "/catalog/export.xml"}).StatusCode)
}

func TestProducts_ClavesDistinguenMayusculas(t *testing.T) {
	app := buildTestApp(t, false)

	resp := do(t, app, request{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"Name":"Dune","SKU":"bk-1","price":1,"currency":"EUR","quantity":1,"categoryID":"` + domain.NewID() + `"}`,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields: name, sku, categoryId", decodeJSON(t, resp)["message"])
}

func TestProducts_SKUDuplicado(t *testing.T) {
	app := buildTestApp(t, false)
	body := `{"name":"Dune","sku":"bk-1","price":1,"currency":"EUR","quantity":1,"categoryId":"` + domain.NewID() + `"}`

	require.Equal(t, http.StatusCreated, do(t, app, request{method: http.MethodPost, path: "/products", body: body}).StatusCode)

	resp := do(t, app, request{method: http.MethodPost, path: "/products", body: body})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, map[string]any{"sku": "BK-1"}, decodeJSON(t, resp)["errors"])
}

func TestProducts_Formulario(t *testing.T) {
	app := buildTestApp(t, false)

	resp := do(t, app, request{
		method:      http.MethodPost,
		path:        "/products",
		body:        "name=Dune&sku=bk-1&price=9.99&currency=EUR&quantity=2&inStock=false&tags=a&tags=b&categoryId=" + domain.NewID(),
		contentType: fiber.MIMEApplicationForm,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeJSON(t, resp)["id"].(string)

	got := decodeJSON(t, do(t, app, request{method: http.MethodGet, path: "/products/" + id}))
	assert.Equal(t, 9.99, got["price"])
	assert.Equal(t, false, got["inStock"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
}

func TestProducts_UpdateYDelete(t *testing.T) {
	app := buildTestApp(t, false)
	catID := domain.NewID()
	resp := do(t, app, request{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":"Dune","sku":"bk-1","price":1,"currency":"EUR","quantity":1,"inStock":false,"tags":["x"],"categoryId":"` + catID + `"}`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeJSON(t, resp)["id"].(string)

	resp = do(t, app, request{
		method: http.MethodPut,
		path:   "/products/" + id,
		body:   `{"name":"Dune II","sku":"bk-2","price":2,"currency":"EUR","quantity":0,"categoryId":"` + catID + `"}`,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got := decodeJSON(t, do(t, app, request{method: http.MethodGet, path: "/products/" + id}))
	assert.Equal(t, "Dune II", got["name"])
	assert.Equal(t, true, got["inStock"], "inStock omitido vuelve al valor por defecto")
	assert.Equal(t, []any{}, got["tags"])

	assert.Equal(t, http.StatusNoContent, do(t, app, request{method: http.MethodDelete, path: "/products/" + id}).StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, app, request{method: http.MethodGet, path: "/products/" + id}).StatusCode)
}

func TestProducts_List(t *testing.T) {
	app := buildTestApp(t, false)
	for _, sku := range []string{"a-1", "a-2"} {
		resp := do(t, app, request{
			method: http.MethodPost,
			path:   "/products",
			body:   `{"name":"Item","sku":"` + sku + `","price":1,"currency":"EUR","quantity":1,"categoryId":"` + domain.NewID() + `"}`,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := do(t, app, request{method: http.MethodGet, path: "/products"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"sku":"A-2"`)
}
