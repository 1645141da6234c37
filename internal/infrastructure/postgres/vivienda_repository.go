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

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)
var _ repository.ViviendaRepository = (*ViviendaRepo)(nil)

// ProyectoRepo implementación de ProyectoRepository (usable con pool o tx).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create persiste un proyecto nuevo.
func (r *ProyectoRepo) Create(p *entity.Proyecto) error {
	query := `
		INSERT INTO proyectos (id, nombre, ciudad, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Nombre, p.Ciudad, p.Slug, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProyectoRepo) GetByID(id string) (*entity.Proyecto, error) {
	return r.scanOne(`SELECT id, nombre, ciudad, slug, created_at, updated_at FROM proyectos WHERE id = $1`, "get proyecto", id)
}

// GetBySlug obtiene un proyecto por slug.
func (r *ProyectoRepo) GetBySlug(slug string) (*entity.Proyecto, error) {
	return r.scanOne(`SELECT id, nombre, ciudad, slug, created_at, updated_at FROM proyectos WHERE slug = $1`, "get proyecto por slug", slug)
}

// List lista los proyectos registrados.
func (r *ProyectoRepo) List(limit, offset int) ([]*entity.Proyecto, error) {
	query := `
		SELECT id, nombre, ciudad, slug, created_at, updated_at
		FROM proyectos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Ciudad, &p.Slug, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ProyectoRepo) scanOne(query, op string, arg any) (*entity.Proyecto, error) {
	var p entity.Proyecto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nombre, &p.Ciudad, &p.Slug, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ViviendaRepo implementación de ViviendaRepository (usable con pool o tx).
type ViviendaRepo struct {
	q Querier
}

// NewViviendaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewViviendaRepository(q Querier) *ViviendaRepo {
	return &ViviendaRepo{q: q}
}

const viviendaCols = `id, proyecto_id, nomenclatura, area, valor_lista, estado, created_at, updated_at`

// Create persiste una vivienda nueva.
func (r *ViviendaRepo) Create(v *entity.Vivienda) error {
	query := `
		INSERT INTO viviendas (` + viviendaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ProyectoID, v.Nomenclatura, v.Area, v.ValorLista, v.Estado, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vivienda: %w", err)
	}
	return nil
}

// GetByID obtiene una vivienda por ID.
func (r *ViviendaRepo) GetByID(id string) (*entity.Vivienda, error) {
	query := `SELECT ` + viviendaCols + ` FROM viviendas WHERE id = $1`
	return r.scanOne(query, id, "get vivienda")
}

// GetForUpdate obtiene la vivienda y bloquea la fila (SELECT FOR UPDATE).
// Reservar, vender o liberar la unidad pasa siempre por este bloqueo.
func (r *ViviendaRepo) GetForUpdate(id string) (*entity.Vivienda, error) {
	query := `SELECT ` + viviendaCols + ` FROM viviendas WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get vivienda for update")
}

// ListByProyecto lista el inventario del proyecto, con filtro opcional por estado.
func (r *ViviendaRepo) ListByProyecto(proyectoID string, estado string, limit, offset int) ([]*entity.Vivienda, error) {
	query := `
		SELECT ` + viviendaCols + `
		FROM viviendas
		WHERE proyecto_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY nomenclatura LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, proyectoID, estado, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list viviendas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vivienda
	for rows.Next() {
		var v entity.Vivienda
		if err := rows.Scan(
			&v.ID, &v.ProyectoID, &v.Nomenclatura, &v.Area, &v.ValorLista, &v.Estado, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vivienda: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Update persiste los campos mutables de la vivienda.
func (r *ViviendaRepo) Update(v *entity.Vivienda) error {
	query := `
		UPDATE viviendas
		SET nomenclatura = $2, area = $3, valor_lista = $4, estado = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Nomenclatura, v.Area, v.ValorLista, v.Estado, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update vivienda: %w", err)
	}
	return nil
}

func (r *ViviendaRepo) scanOne(query, id, op string) (*entity.Vivienda, error) {
	var v entity.Vivienda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProyectoID, &v.Nomenclatura, &v.Area, &v.ValorLista, &v.Estado, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}
