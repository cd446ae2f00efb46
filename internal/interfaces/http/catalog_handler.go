package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/catalog"
)

// CatalogHandler exportaciones públicas del catálogo.
type CatalogHandler struct {
	uc *catalog.ExportUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.ExportUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ExportPDF godoc
// @Summary      Catálogo en PDF
// @Tags         catalog
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /catalog/export.pdf [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.uc.ExportPDF(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalog.pdf"`)
	return c.Send(out)
}

// ExportXML godoc
// @Summary      Catálogo en XML
// @Description  Lleva un ETag calculado sobre la forma canónica C14N; If-None-Match coincidente devuelve 304.
// @Tags         catalog
// @Produce      application/xml
// @Param        If-None-Match  header  string  false  "ETag de una respuesta previa"
// @Success      200  {string}  string
// @Success      304
// @Router       /catalog/export.xml [get]
func (h *CatalogHandler) ExportXML(c *fiber.Ctx) error {
	out, etag, err := h.uc.ExportXML(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderETag, etag)
	if c.Fresh() {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
