package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// AbonoRepository puerto de persistencia para el libro de abonos.
// Append-only: no hay Update ni Delete; la anulación es un registro nuevo.
type AbonoRepository interface {
	Create(a *entity.Abono) error
	GetByID(id string) (*entity.Abono, error)
	// ListByFuente devuelve los abonos de una fuente, más reciente primero.
	ListByFuente(fuentePagoID string) ([]*entity.Abono, error)
	ListByNegociacion(negociacionID string) ([]*entity.Abono, error)
}
