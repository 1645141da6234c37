package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/proyectos"
)

// ProyectoHandler maneja proyectos y su inventario de viviendas (protegido).
type ProyectoHandler struct {
	uc *proyectos.UseCase
}

// NewProyectoHandler construye el handler.
func NewProyectoHandler(uc *proyectos.UseCase) *ProyectoHandler {
	return &ProyectoHandler{uc: uc}
}

// Create POST /api/proyectos (solo admin)
func (h *ProyectoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProyectoRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	proyecto, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proyecto)
}

// List GET /api/proyectos
func (h *ProyectoHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateVivienda POST /api/viviendas (solo admin/director)
func (h *ProyectoHandler) CreateVivienda(c *fiber.Ctx) error {
	proyectoID := GetProyectoID(c)
	if proyectoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CrearViviendaRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	vivienda, err := h.uc.CrearVivienda(c.Context(), proyectoID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vivienda)
}

// ListViviendas GET /api/viviendas?estado=disponible&limit=50&offset=0
func (h *ProyectoHandler) ListViviendas(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListViviendas(c.Context(), GetProyectoID(c), c.Query("estado"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
