package dto

import (
	"time"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// SubirVersionRequest metadatos de una versión nueva; el binario viaja como
// multipart y lo sube el colaborador de almacenamiento.
type SubirVersionRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Proposito string `json:"proposito" validate:"required,oneof=aprobacion asignacion comprobante"`
}

// MarcarVersionRequest marca la versión actual como errónea u obsoleta.
type MarcarVersionRequest struct {
	Estado string `json:"estado" validate:"required,oneof=erronea obsoleta"`
	Motivo string `json:"motivo" validate:"required"`
}

// DocumentoVersionResponse una versión del documento.
type DocumentoVersionResponse struct {
	ID               string    `json:"id"`
	DocumentoID      string    `json:"documento_id"`
	Numero           int       `json:"numero"`
	ContenidoURL     string    `json:"contenido_url"`
	EstadoVersion    string    `json:"estado_version"`
	Motivo           string    `json:"motivo,omitempty"`
	CorrigeVersionID string    `json:"corrige_version_id,omitempty"`
	EsActual         bool      `json:"es_actual"`
	CreatedAt        time.Time `json:"created_at"`
}

// DocumentoResponse cabecera con sus versiones.
type DocumentoResponse struct {
	ID            string                     `json:"id"`
	NegociacionID string                     `json:"negociacion_id"`
	Nombre        string                     `json:"nombre"`
	Proposito     string                     `json:"proposito"`
	Versiones     []DocumentoVersionResponse `json:"versiones,omitempty"`
}

// ToVersionResponse mapea la entidad.
func ToVersionResponse(v *entity.DocumentoVersion) DocumentoVersionResponse {
	return DocumentoVersionResponse{
		ID:               v.ID,
		DocumentoID:      v.DocumentoID,
		Numero:           v.Numero,
		ContenidoURL:     v.ContenidoURL,
		EstadoVersion:    v.EstadoVersion,
		Motivo:           v.Motivo,
		CorrigeVersionID: v.CorrigeVersionID,
		EsActual:         v.EsActual,
		CreatedAt:        v.CreatedAt,
	}
}
