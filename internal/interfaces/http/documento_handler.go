package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/documentos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
)

// DocumentoHandler maneja documentos versionados de la negociación (protegido).
type DocumentoHandler struct {
	uc *documentos.UseCase
}

// NewDocumentoHandler construye el handler.
func NewDocumentoHandler(uc *documentos.UseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// SubirVersion POST /api/negociaciones/:id/documentos
// Multipart: campo `archivo` con el binario, campos `nombre` y `proposito`.
// Con `documento_id` crea la versión siguiente; sin él crea el documento.
func (h *DocumentoHandler) SubirVersion(c *fiber.Ctx) error {
	proyectoID := GetProyectoID(c)
	if proyectoID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo multipart `archivo` requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	contenido, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	in := dto.SubirVersionRequest{
		Nombre:    c.FormValue("nombre", fileHeader.Filename),
		Proposito: c.FormValue("proposito"),
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y proposito (aprobacion|asignacion|comprobante) son requeridos"})
	}

	doc, err := h.uc.SubirVersion(c.Context(), proyectoID, GetUserID(c), c.Params("id"), c.FormValue("documento_id"), contenido, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List GET /api/negociaciones/:id/documentos
func (h *DocumentoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListByNegociacion(c.Context(), GetProyectoID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// MarcarVersion POST /api/documento-versiones/:id/marcar
// Marca la versión actual como errónea u obsoleta; exige motivo.
func (h *DocumentoHandler) MarcarVersion(c *fiber.Ctx) error {
	var in dto.MarcarVersionRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	version, err := h.uc.MarcarVersion(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(version)
}

// Restaurar POST /api/documento-versiones/:id/restaurar
// Crea una versión nueva con el contenido de la versión indicada.
func (h *DocumentoHandler) Restaurar(c *fiber.Ctx) error {
	version, err := h.uc.Restaurar(c.Context(), GetProyectoID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(version)
}
