package abonos

import (
	"context"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de un abono dentro de una transacción.
// El invariante de no sobregiro depende de que el read-then-write sobre la
// fuente sea atómico: la implementación bloquea la fila de la fuente
// (SELECT FOR UPDATE) para serializar abonos concurrentes contra ella.
type TxRunner interface {
	RunAbono(ctx context.Context, fn func(
		negRepo repository.NegociacionRepository,
		fuenteRepo repository.FuentePagoRepository,
		abonoRepo repository.AbonoRepository,
		viviendaRepo repository.ViviendaRepository,
	) error) error
}
