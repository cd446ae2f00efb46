package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// Códigos del sobre de error.
const (
	CodeValidation    = "VALIDATION"
	CodeInvalidID     = "INVALID_ID"
	CodeNotFound      = "NOT_FOUND"
	CodeDuplicate     = "DUPLICATE"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInvalidBody   = "INVALID_BODY"
	CodeRouteNotFound = "ROUTE_NOT_FOUND"
	CodeHTTP          = "HTTP_ERROR"
	CodeInternal      = "INTERNAL"
)

// errInvalidBody el cuerpo declarado como JSON no se pudo decodificar.
var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// ErrorHandler es el único punto donde un error se convierte en respuesta HTTP.
// Los handlers solo devuelven el error.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := toResponse(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error interno")
		} else {
			log.Debug().Err(err).Int("status", status).Str("path", c.Path()).Msg("petición rechazada")
		}
		return c.Status(status).JSON(body)
	}
}

func toResponse(err error) (int, dto.ErrorResponse) {
	var (
		verr     *domain.ValidationError
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
		fe       *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: verr.Message, Errors: verr.Errors}
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeInvalidID, Message: "Invalid id format"}
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: notFound.Error()}
	case errors.As(err, &conflict):
		return fiber.StatusConflict, dto.ErrorResponse{
			Code:    CodeDuplicate,
			Message: "Duplicate key error",
			Errors:  map[string]any{conflict.Key: conflict.Value},
		}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: "Authentication required"}
	case errors.As(err, &fe):
		return fe.Code, dto.ErrorResponse{Code: fiberErrorCode(fe.Code), Message: fe.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: "Internal Server Error"}
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeInvalidBody
	case fiber.StatusNotFound:
		return CodeRouteNotFound
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	}
	if status >= fiber.StatusInternalServerError {
		return CodeInternal
	}
	return CodeHTTP
}

// NotFound último handler: cualquier ruta no registrada.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Route not found")
}
