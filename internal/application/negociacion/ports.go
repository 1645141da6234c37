package negociacion

import (
	"context"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la negociación,
// sus fuentes y el estado de inventario de la vivienda.
type TxRunner interface {
	RunNegociacion(ctx context.Context, fn func(
		negRepo repository.NegociacionRepository,
		fuenteRepo repository.FuentePagoRepository,
		viviendaRepo repository.ViviendaRepository,
	) error) error
}

// EstadoCuentaPDFGenerator genera el estado de cuenta de una negociación en
// PDF para entrega al cliente.
type EstadoCuentaPDFGenerator interface {
	GenerarEstadoCuenta(
		ctx context.Context,
		neg *entity.Negociacion,
		cliente *entity.Cliente,
		vivienda *entity.Vivienda,
		fuentes []*entity.FuentePago,
		abonos []*entity.Abono,
	) ([]byte, error)
}
