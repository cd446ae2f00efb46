package http

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodifica el cuerpo en out (un DTO de validation.Value).
// JSON y form-urlencoded se aceptan; un cuerpo vacío o de otro tipo deja out
// sin campos, y la validación de requeridos responde por él.
func parseBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	switch mediaType(c.Get(fiber.HeaderContentType)) {
	case fiber.MIMEApplicationJSON:
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := c.App().Config().JSONDecoder(body, out); err != nil {
			return errInvalidBody
		}
	case fiber.MIMEApplicationForm:
		raw, err := c.App().Config().JSONEncoder(formFields(c))
		if err != nil {
			return errInvalidBody
		}
		if err := c.App().Config().JSONDecoder(raw, out); err != nil {
			return errInvalidBody
		}
	}
	return nil
}

func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// formFields convierte los pares del formulario: clave repetida o con sufijo []
// pasa a lista, el resto a cadena.
func formFields(c *fiber.Ctx) map[string]any {
	fields := make(map[string]any)
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key, value := string(k), string(v)
		list := strings.HasSuffix(key, "[]")
		key = strings.TrimSuffix(key, "[]")
		switch prev := fields[key].(type) {
		case nil:
			if list {
				fields[key] = []any{value}
			} else {
				fields[key] = value
			}
		case string:
			fields[key] = []any{prev, value}
		case []any:
			fields[key] = append(prev, value)
		}
	})
	return fields
}
