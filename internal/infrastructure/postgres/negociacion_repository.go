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

var _ repository.NegociacionRepository = (*NegociacionRepo)(nil)

// NegociacionRepo implementación de NegociacionRepository (usable con pool o tx).
type NegociacionRepo struct {
	q Querier
}

// NewNegociacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNegociacionRepository(q Querier) *NegociacionRepo {
	return &NegociacionRepo{q: q}
}

const negociacionCols = `id, proyecto_id, vivienda_id, cliente_id, valor_negociado, descuento,
		valor_total, estado, fecha_activacion, fecha_completada, created_at, updated_at, created_by`

// Create persiste una negociación nueva.
func (r *NegociacionRepo) Create(n *entity.Negociacion) error {
	query := `
		INSERT INTO negociaciones (` + negociacionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.ProyectoID, n.ViviendaID, n.ClienteID, n.ValorNegociado, n.Descuento,
		n.ValorTotal, n.Estado, n.FechaActivacion, n.FechaCompletada, n.CreatedAt, n.UpdatedAt, n.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert negociacion: %w", err)
	}
	return nil
}

// GetByID obtiene una negociación por ID.
func (r *NegociacionRepo) GetByID(id string) (*entity.Negociacion, error) {
	query := `SELECT ` + negociacionCols + ` FROM negociaciones WHERE id = $1`
	return r.scanOne(query, id, "get negociacion")
}

// GetForUpdate obtiene la negociación y bloquea la fila (SELECT FOR UPDATE).
func (r *NegociacionRepo) GetForUpdate(id string) (*entity.Negociacion, error) {
	query := `SELECT ` + negociacionCols + ` FROM negociaciones WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get negociacion for update")
}

// ListByProyecto lista las negociaciones del proyecto, más reciente primero.
func (r *NegociacionRepo) ListByProyecto(proyectoID string, limit, offset int) ([]*entity.Negociacion, error) {
	query := `
		SELECT ` + negociacionCols + `
		FROM negociaciones WHERE proyecto_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, proyectoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list negociaciones: %w", err)
	}
	defer rows.Close()

	var out []*entity.Negociacion
	for rows.Next() {
		var n entity.Negociacion
		if err := rows.Scan(
			&n.ID, &n.ProyectoID, &n.ViviendaID, &n.ClienteID, &n.ValorNegociado, &n.Descuento,
			&n.ValorTotal, &n.Estado, &n.FechaActivacion, &n.FechaCompletada, &n.CreatedAt, &n.UpdatedAt, &n.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan negociacion: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// Update persiste los campos mutables de la negociación.
func (r *NegociacionRepo) Update(n *entity.Negociacion) error {
	query := `
		UPDATE negociaciones
		SET valor_negociado = $2, descuento = $3, valor_total = $4, estado = $5,
		    fecha_activacion = $6, fecha_completada = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.ValorNegociado, n.Descuento, n.ValorTotal, n.Estado,
		n.FechaActivacion, n.FechaCompletada, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update negociacion: %w", err)
	}
	return nil
}

func (r *NegociacionRepo) scanOne(query, id, op string) (*entity.Negociacion, error) {
	var n entity.Negociacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.ProyectoID, &n.ViviendaID, &n.ClienteID, &n.ValorNegociado, &n.Descuento,
		&n.ValorTotal, &n.Estado, &n.FechaActivacion, &n.FechaCompletada, &n.CreatedAt, &n.UpdatedAt, &n.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &n, nil
}
