package ports

import (
	"context"
	"time"
)

// Tipos de evento de auditoría. La capa de presentación aguas abajo los
// humaniza; deben poder derivarse siempre de las transiciones que realiza
// este núcleo, así que cada caso de uso publica el suyo.
const (
	EventoNegociacionCreada     = "negociacion_creada"
	EventoNegociacionActivada   = "negociacion_activada"
	EventoNegociacionSuspendida = "negociacion_suspendida"
	EventoNegociacionReanudada  = "negociacion_reanudada"
	EventoNegociacionCompletada = "negociacion_completada"
	EventoNegociacionRenuncia   = "negociacion_renuncia"
	EventoFuenteCreada          = "fuente_creada"
	EventoFuenteEliminada       = "fuente_eliminada"
	EventoAbonoRegistrado       = "abono_registrado"
	EventoAbonoAnulado          = "abono_anulado"
	EventoDocumentoVersionado   = "documento_versionado"
	EventoVersionMarcada        = "version_marcada"
	EventoVersionRestaurada     = "version_restaurada"
)

// Evento entrada del registro de auditoría.
type Evento struct {
	Tipo          string            `json:"tipo"`
	NegociacionID string            `json:"negociacion_id,omitempty"`
	Actor         string            `json:"actor,omitempty"` // user ID
	Detalle       map[string]string `json:"detalle,omitempty"`
	Fecha         time.Time         `json:"fecha"`
}

// Auditoria colaborador de publicación de eventos. Los casos de uso publican
// en best-effort: un fallo del publicador no revierte la operación de negocio.
type Auditoria interface {
	Publicar(ctx context.Context, e Evento) error
}
