package entity

import "time"

// Estados de una versión de documento (columna `estado_version`).
const (
	VersionValida      = "valida"
	VersionErronea     = "erronea"
	VersionObsoleta    = "obsoleta"
	VersionSupersedida = "supersedida"
)

// Propósitos de documento adjuntos a fuentes de pago.
const (
	PropositoAprobacion  = "aprobacion"
	PropositoAsignacion  = "asignacion"
	PropositoComprobante = "comprobante"
)

// Documento cabecera de un documento versionado de la negociación
// (cartas de aprobación/asignación, promesas, comprobantes).
type Documento struct {
	ID            string
	NegociacionID string
	Nombre        string
	Proposito     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentoVersion una versión del contenido. Invariante: exactamente una
// versión por documento tiene EsActual=true. Marcar erronea/obsoleta exige
// motivo; restaurar crea una versión nueva en lugar de mutar la historia.
type DocumentoVersion struct {
	ID               string
	DocumentoID      string
	Numero           int // consecutivo desde 1
	ContenidoURL     string
	EstadoVersion    string
	Motivo           string // requerido al marcar erronea/obsoleta
	CorrigeVersionID string // versión que esta corrige o restaura, si aplica
	EsActual         bool
	CreatedAt        time.Time
	CreatedBy        string
}
