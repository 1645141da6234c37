package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var _ repository.AbonoRepository = (*AbonoRepo)(nil)

// AbonoRepo implementación de AbonoRepository (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE sobre abonos.
type AbonoRepo struct {
	q Querier
}

// NewAbonoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAbonoRepository(q Querier) *AbonoRepo {
	return &AbonoRepo{q: q}
}

const abonoCols = `id, fuente_pago_id, monto, metodo_pago, numero_referencia, comprobante_url,
		notas, anulado, anula_abono_id, fecha_pago, created_at, created_by`

// Create persiste un abono nuevo.
func (r *AbonoRepo) Create(a *entity.Abono) error {
	query := `
		INSERT INTO abonos (` + abonoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	anulaID := any(nil)
	if a.AnulaAbonoID != "" {
		anulaID = a.AnulaAbonoID
	}
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.FuentePagoID, a.Monto, a.MetodoPago, a.NumeroReferencia, a.ComprobanteURL,
		a.Notas, a.Anulado, anulaID, a.FechaPago, a.CreatedAt, a.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert abono: %w", err)
	}
	return nil
}

// GetByID busca un abono por id. Retorna (nil, nil) si no existe.
func (r *AbonoRepo) GetByID(id string) (*entity.Abono, error) {
	query := `SELECT ` + abonoCols + ` FROM abonos WHERE id = $1`
	a, err := scanAbono(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get abono: %w", err)
	}
	return a, nil
}

// ListByFuente lista los abonos de una fuente, más reciente primero.
func (r *AbonoRepo) ListByFuente(fuentePagoID string) ([]*entity.Abono, error) {
	query := `
		SELECT ` + abonoCols + `
		FROM abonos WHERE fuente_pago_id = $1
		ORDER BY fecha_pago DESC, created_at DESC`
	return r.list(query, fuentePagoID)
}

// ListByNegociacion lista los abonos de todas las fuentes de la negociación,
// más reciente primero.
func (r *AbonoRepo) ListByNegociacion(negociacionID string) ([]*entity.Abono, error) {
	query := `
		SELECT a.id, a.fuente_pago_id, a.monto, a.metodo_pago, a.numero_referencia, a.comprobante_url,
		       a.notas, a.anulado, a.anula_abono_id, a.fecha_pago, a.created_at, a.created_by
		FROM abonos a
		JOIN fuentes_pago f ON f.id = a.fuente_pago_id
		WHERE f.negociacion_id = $1
		ORDER BY a.fecha_pago DESC, a.created_at DESC`
	return r.list(query, negociacionID)
}

func (r *AbonoRepo) list(query string, arg any) ([]*entity.Abono, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Abono
	for rows.Next() {
		a, err := scanAbono(rows)
		if err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAbono(row pgx.Row) (*entity.Abono, error) {
	var a entity.Abono
	var anulaID *string
	err := row.Scan(
		&a.ID, &a.FuentePagoID, &a.Monto, &a.MetodoPago, &a.NumeroReferencia, &a.ComprobanteURL,
		&a.Notas, &a.Anulado, &anulaID, &a.FechaPago, &a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if anulaID != nil {
		a.AnulaAbonoID = *anulaID
	}
	return &a, nil
}
