package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/clientes"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *clientes.UseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *clientes.UseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	proyectoID := GetProyectoID(c)
	if proyectoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CrearClienteRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	cliente, err := h.uc.Crear(c.Context(), proyectoID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Get GET /api/clientes/:id
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	cliente, err := h.uc.Get(c.Context(), GetProyectoID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cliente)
}

// List GET /api/clientes?limit=20&offset=0
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), GetProyectoID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
