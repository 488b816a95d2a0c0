package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/validation"
	"github.com/jhoicas/resource-api/internal/domain"
)

var errInvalidBody = errors.New("cuerpo inválido")

// bindJSON decodifica el body en out y lo valida. Devuelve validation.Violations,
// errInvalidBody o nil.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		if v := validation.FromDecodeError(err); v != nil {
			return v
		}
		return errInvalidBody
	}
	return validation.Validate(out)
}

// respondError traduce errores de dominio/aplicación a status + dto.ErrorResponse.
// Lo no reconocido se registra y se responde 500 sin exponer el detalle.
func respondError(c *fiber.Ctx, err error) error {
	var violations validation.Violations
	if errors.As(err, &violations) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", Errors: violations,
		})
	}
	switch {
	case errors.Is(err, errInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "identificador inválido"})
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "referencia a recurso inexistente"})
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FIELDS", Message: "no fields to update"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el recurso está referenciado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
