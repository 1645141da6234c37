package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/abonos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
)

// AbonoHandler maneja el registro y consulta de abonos (protegido).
type AbonoHandler struct {
	uc *abonos.UseCase
}

// NewAbonoHandler construye el handler.
func NewAbonoHandler(uc *abonos.UseCase) *AbonoHandler {
	return &AbonoHandler{uc: uc}
}

// Registrar POST /api/abonos
// Registra un pago parcial contra una fuente de cuota inicial. Un monto que
// exceda el saldo pendiente responde 422 SOBREPAGO sin truncar.
func (h *AbonoHandler) Registrar(c *fiber.Ctx) error {
	proyectoID := GetProyectoID(c)
	if proyectoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarAbonoRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Registrar(c.Context(), proyectoID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Anular POST /api/abonos/:id/anular (admin/director)
// Reversa un abono mal registrado: inserta el registro de anulación y
// restaura el saldo pendiente de la fuente.
func (h *AbonoHandler) Anular(c *fiber.Ctx) error {
	var in dto.AnularAbonoRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Anular(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Historial GET /api/fuentes/:id/abonos
// Devuelve los abonos de la fuente, más reciente primero.
func (h *AbonoHandler) Historial(c *fiber.Ctx) error {
	list, err := h.uc.Historial(c.Context(), GetProyectoID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
