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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, proyecto_id, nombre, tipo_documento, numero_documento, email, telefono, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ProyectoID, c.Nombre, c.TipoDocumento, c.NumeroDocumento, c.Email, c.Telefono,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1`
	return r.scanOne(query, "get cliente", id)
}

// GetByProyectoYDocumento busca un cliente por número de documento dentro del proyecto.
func (r *ClienteRepo) GetByProyectoYDocumento(proyectoID, numeroDocumento string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE proyecto_id = $1 AND numero_documento = $2`
	return r.scanOne(query, "get cliente por documento", proyectoID, numeroDocumento)
}

// ListByProyecto lista los clientes del proyecto.
func (r *ClienteRepo) ListByProyecto(proyectoID string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + clienteCols + `
		FROM clientes WHERE proyecto_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, proyectoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.ProyectoID, &c.Nombre, &c.TipoDocumento, &c.NumeroDocumento,
			&c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update persiste los datos de contacto del cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, email = $3, telefono = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nombre, c.Email, c.Telefono, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanOne(query, op string, args ...any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.ProyectoID, &c.Nombre, &c.TipoDocumento, &c.NumeroDocumento,
		&c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
