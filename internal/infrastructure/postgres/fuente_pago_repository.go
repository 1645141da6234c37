package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var _ repository.FuentePagoRepository = (*FuentePagoRepo)(nil)

// FuentePagoRepo implementación de FuentePagoRepository (usable con pool o tx).
// La columna `tipo` guarda el nombre canónico de la fuente, no el ordinal.
type FuentePagoRepo struct {
	q Querier
}

// NewFuentePagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFuentePagoRepository(q Querier) *FuentePagoRepo {
	return &FuentePagoRepo{q: q}
}

const fuenteCols = `id, negociacion_id, tipo, monto_aprobado, monto_recibido, entidad,
		numero_referencia, carta_aprobacion_url, carta_asignacion_url, created_at, updated_at`

// Create persiste una fuente de pago nueva.
func (r *FuentePagoRepo) Create(f *entity.FuentePago) error {
	query := `
		INSERT INTO fuentes_pago (` + fuenteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.NegociacionID, f.Tipo.String(), f.MontoAprobado, f.MontoRecibido, f.Entidad,
		f.NumeroReferencia, f.CartaAprobacionURL, f.CartaAsignacionURL, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFuenteDuplicada
		}
		return fmt.Errorf("insert fuente de pago: %w", err)
	}
	return nil
}

// GetByID obtiene una fuente por ID.
func (r *FuentePagoRepo) GetByID(id string) (*entity.FuentePago, error) {
	query := `SELECT ` + fuenteCols + ` FROM fuentes_pago WHERE id = $1`
	return r.scanOne(query, id, "get fuente")
}

// GetForUpdate obtiene la fuente y bloquea la fila (SELECT FOR UPDATE).
// El registro de abonos depende de este bloqueo para que el read-then-write
// sobre monto_recibido sea atómico por fuente.
func (r *FuentePagoRepo) GetForUpdate(id string) (*entity.FuentePago, error) {
	query := `SELECT ` + fuenteCols + ` FROM fuentes_pago WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get fuente for update")
}

// ListByNegociacion lista las fuentes de la negociación en orden de creación.
func (r *FuentePagoRepo) ListByNegociacion(negociacionID string) ([]*entity.FuentePago, error) {
	query := `
		SELECT ` + fuenteCols + `
		FROM fuentes_pago WHERE negociacion_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, negociacionID)
	if err != nil {
		return nil, fmt.Errorf("list fuentes: %w", err)
	}
	defer rows.Close()

	var out []*entity.FuentePago
	for rows.Next() {
		f, err := scanFuente(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update persiste los campos mutables de la fuente. El tipo no cambia una vez
// persistido.
func (r *FuentePagoRepo) Update(f *entity.FuentePago) error {
	query := `
		UPDATE fuentes_pago
		SET monto_aprobado = $2, monto_recibido = $3, entidad = $4, numero_referencia = $5,
		    carta_aprobacion_url = $6, carta_asignacion_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.MontoAprobado, f.MontoRecibido, f.Entidad, f.NumeroReferencia,
		f.CartaAprobacionURL, f.CartaAsignacionURL, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fuente: %w", err)
	}
	return nil
}

// Delete elimina una fuente. El caller verifica antes que no tenga abonos.
func (r *FuentePagoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fuentes_pago WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fuente: %w", err)
	}
	return nil
}

func (r *FuentePagoRepo) scanOne(query, id, op string) (*entity.FuentePago, error) {
	row := r.q.QueryRow(context.Background(), query, id)
	f, err := scanFuente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

func scanFuente(row pgx.Row) (*entity.FuentePago, error) {
	var f entity.FuentePago
	var tipo string
	err := row.Scan(
		&f.ID, &f.NegociacionID, &tipo, &f.MontoAprobado, &f.MontoRecibido, &f.Entidad,
		&f.NumeroReferencia, &f.CartaAprobacionURL, &f.CartaAsignacionURL, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Tipo, err = entity.ParseTipoFuente(tipo)
	if err != nil {
		return nil, fmt.Errorf("fuente %s: %w", f.ID, err)
	}
	return &f, nil
}
