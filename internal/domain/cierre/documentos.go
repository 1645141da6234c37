package cierre

import (
	"strings"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// Motivos de falla documental de una fuente.
const (
	FallaCartaAprobacion = "falta la carta de aprobación"
	FallaEntidad         = "falta el nombre de la entidad emisora"
)

// FallaDocumental una fuente que no pasa la verificación documental y el
// motivo concreto. Se usa como payload de CierreIncompletoError.
type FallaDocumental struct {
	Fuente *entity.FuentePago
	Motivo string
}

// DocumentosCompletos indica si la fuente cuenta para el cierre: true si su
// tipo no exige carta de aprobación, o si la exige y la URL está presente.
// Predicado puro: sin I/O ni mutación, idempotente sobre la misma fuente.
func DocumentosCompletos(f *entity.FuentePago) bool {
	if !f.Tipo.RequiereCartaAprobacion() {
		return true
	}
	return strings.TrimSpace(f.CartaAprobacionURL) != ""
}

// ValidarDocumentos produce una falla por cada fuente sin carta de
// aprobación requerida o sin entidad emisora requerida. Lista vacía es
// precondición de la activación.
func ValidarDocumentos(fuentes []*entity.FuentePago) []FallaDocumental {
	var fallas []FallaDocumental
	for _, f := range fuentes {
		if !DocumentosCompletos(f) {
			fallas = append(fallas, FallaDocumental{Fuente: f, Motivo: FallaCartaAprobacion})
		}
		if f.Tipo.RequiereEntidad() && strings.TrimSpace(f.Entidad) == "" {
			fallas = append(fallas, FallaDocumental{Fuente: f, Motivo: FallaEntidad})
		}
	}
	return fallas
}
