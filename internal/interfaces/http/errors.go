package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
)

// respondError mapea los errores de dominio a códigos HTTP. Los errores de
// cierre incompleto devuelven 422 con el detalle concreto de la falla para
// que la UI pueda señalar la fuente afectada.
func respondError(c *fiber.Ctx, err error) error {
	var cierreErr *domain.CierreIncompletoError
	if errors.As(err, &cierreErr) {
		details := map[string]string{"motivo": cierreErr.Motivo}
		if cierreErr.FuenteID != "" {
			details["fuente_id"] = cierreErr.FuenteID
		}
		if !cierreErr.Diferencia.IsZero() {
			details["diferencia"] = cierreErr.Diferencia.StringFixed(0)
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "CIERRE_INCOMPLETO",
			Message: cierreErr.Error(),
			Details: details,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrFuenteDuplicada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FUENTE_DUPLICADA", Message: err.Error()})
	case errors.Is(err, domain.ErrEliminacionBloqueada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ELIMINACION_BLOQUEADA", Message: err.Error()})
	case errors.Is(err, domain.ErrFuentePagada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FUENTE_PAGADA", Message: err.Error()})
	case errors.Is(err, domain.ErrSobrepago):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SOBREPAGO", Message: err.Error()})
	case errors.Is(err, domain.ErrNegociacionBloqueada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGOCIACION_BLOQUEADA", Message: err.Error()})
	case errors.Is(err, domain.ErrMotivoRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOTIVO_REQUERIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrVersionNoActual):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_NO_ACTUAL", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
