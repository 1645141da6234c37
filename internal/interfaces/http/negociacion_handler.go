package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/negociacion"
)

// NegociacionHandler maneja el ciclo de vida de negociaciones (protegido).
type NegociacionHandler struct {
	uc    *negociacion.UseCase
	pdfUC *negociacion.PDFUseCase
}

// NewNegociacionHandler construye el handler.
func NewNegociacionHandler(uc *negociacion.UseCase, pdfUC *negociacion.PDFUseCase) *NegociacionHandler {
	return &NegociacionHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/negociaciones
func (h *NegociacionHandler) Create(c *fiber.Ctx) error {
	proyectoID := GetProyectoID(c)
	if proyectoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CrearNegociacionRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	neg, err := h.uc.Crear(c.Context(), proyectoID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(neg)
}

// Get GET /api/negociaciones/:id
func (h *NegociacionHandler) Get(c *fiber.Ctx) error {
	neg, err := h.uc.Get(c.Context(), GetProyectoID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(neg)
}

// List GET /api/negociaciones?limit=20&offset=0
func (h *NegociacionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), GetProyectoID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ConfigurarFuentes PUT /api/negociaciones/:id/fuentes
// Reemplaza el conjunto completo de fuentes con el envío del formulario.
func (h *NegociacionHandler) ConfigurarFuentes(c *fiber.Ctx) error {
	var in dto.ConfigurarFuentesRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	neg, err := h.uc.ConfigurarFuentes(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(neg)
}

// Activar POST /api/negociaciones/:id/activar
// Las fallas de cierre devuelven 422 con el motivo concreto.
func (h *NegociacionHandler) Activar(c *fiber.Ctx) error {
	neg, err := h.uc.Activar(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(neg)
}

// Suspender POST /api/negociaciones/:id/suspender (admin/director)
func (h *NegociacionHandler) Suspender(c *fiber.Ctx) error {
	if err := h.uc.Suspender(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reanudar POST /api/negociaciones/:id/reanudar (admin/director)
func (h *NegociacionHandler) Reanudar(c *fiber.Ctx) error {
	if err := h.uc.Reanudar(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Renunciar POST /api/negociaciones/:id/renuncia (admin/director)
func (h *NegociacionHandler) Renunciar(c *fiber.Ctx) error {
	if err := h.uc.Renunciar(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EstadoCuentaPDF GET /api/negociaciones/:id/estado-cuenta.pdf
func (h *NegociacionHandler) EstadoCuentaPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DescargarEstadoCuenta(c.Context(), GetProyectoID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
