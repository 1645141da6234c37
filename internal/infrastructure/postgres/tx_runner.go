package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/abonos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/negociacion"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var _ negociacion.TxRunner = (*TxRunner)(nil)
var _ abonos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los repos
// que recibe el callback están atados a la tx, así los GetForUpdate retienen
// el bloqueo de fila hasta el Commit o Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunNegociacion transacción para el ciclo de vida de la negociación
// (creación con reserva de vivienda, configuración de fuentes, transiciones).
func (r *TxRunner) RunNegociacion(ctx context.Context, fn func(
	negRepo repository.NegociacionRepository,
	fuenteRepo repository.FuentePagoRepository,
	viviendaRepo repository.ViviendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNegociacionRepository(tx), NewFuentePagoRepository(tx), NewViviendaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAbono transacción para el registro de abonos. El bloqueo de la fila de
// la fuente serializa abonos concurrentes contra ella.
func (r *TxRunner) RunAbono(ctx context.Context, fn func(
	negRepo repository.NegociacionRepository,
	fuenteRepo repository.FuentePagoRepository,
	abonoRepo repository.AbonoRepository,
	viviendaRepo repository.ViviendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewNegociacionRepository(tx), NewFuentePagoRepository(tx), NewAbonoRepository(tx), NewViviendaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
