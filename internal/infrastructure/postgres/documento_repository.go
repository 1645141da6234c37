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

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación de DocumentoRepository (usable con pool o tx).
// Un índice único parcial sobre (documento_id) WHERE es_actual respalda el
// invariante de una sola versión actual por documento.
type DocumentoRepo struct {
	q Querier
}

// NewDocumentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentoRepository(q Querier) *DocumentoRepo {
	return &DocumentoRepo{q: q}
}

// Create persiste la cabecera de un documento.
func (r *DocumentoRepo) Create(d *entity.Documento) error {
	query := `
		INSERT INTO documentos (id, negociacion_id, nombre, proposito, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.NegociacionID, d.Nombre, d.Proposito, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un documento.
func (r *DocumentoRepo) GetByID(id string) (*entity.Documento, error) {
	query := `
		SELECT id, negociacion_id, nombre, proposito, created_at, updated_at
		FROM documentos WHERE id = $1`
	var d entity.Documento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.NegociacionID, &d.Nombre, &d.Proposito, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// ListByNegociacion lista los documentos de la negociación.
func (r *DocumentoRepo) ListByNegociacion(negociacionID string) ([]*entity.Documento, error) {
	query := `
		SELECT id, negociacion_id, nombre, proposito, created_at, updated_at
		FROM documentos WHERE negociacion_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, negociacionID)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Documento
	for rows.Next() {
		var d entity.Documento
		if err := rows.Scan(&d.ID, &d.NegociacionID, &d.Nombre, &d.Proposito, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

const versionCols = `id, documento_id, numero, contenido_url, estado_version, motivo,
		corrige_version_id, es_actual, created_at, created_by`

// CreateVersion persiste una versión nueva del documento.
func (r *DocumentoRepo) CreateVersion(v *entity.DocumentoVersion) error {
	query := `
		INSERT INTO documento_versiones (` + versionCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	corrige := any(nil)
	if v.CorrigeVersionID != "" {
		corrige = v.CorrigeVersionID
	}
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.DocumentoID, v.Numero, v.ContenidoURL, v.EstadoVersion, v.Motivo,
		corrige, v.EsActual, v.CreatedAt, v.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict // dos versiones actuales del mismo documento
		}
		return fmt.Errorf("insert version: %w", err)
	}
	return nil
}

// GetVersion obtiene una versión por ID.
func (r *DocumentoRepo) GetVersion(id string) (*entity.DocumentoVersion, error) {
	query := `SELECT ` + versionCols + ` FROM documento_versiones WHERE id = $1`
	return r.scanVersion(query, id, "get version")
}

// GetVersionActual devuelve la única versión con es_actual=true, o nil si el
// documento quedó sin versión vigente.
func (r *DocumentoRepo) GetVersionActual(documentoID string) (*entity.DocumentoVersion, error) {
	query := `SELECT ` + versionCols + ` FROM documento_versiones WHERE documento_id = $1 AND es_actual`
	return r.scanVersion(query, documentoID, "get version actual")
}

// ListVersiones lista las versiones del documento en orden de consecutivo.
func (r *DocumentoRepo) ListVersiones(documentoID string) ([]*entity.DocumentoVersion, error) {
	query := `
		SELECT ` + versionCols + `
		FROM documento_versiones WHERE documento_id = $1
		ORDER BY numero`
	rows, err := r.q.Query(context.Background(), query, documentoID)
	if err != nil {
		return nil, fmt.Errorf("list versiones: %w", err)
	}
	defer rows.Close()

	var out []*entity.DocumentoVersion
	for rows.Next() {
		v, err := scanVersionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// UpdateVersion persiste los campos mutables de una versión (estado, motivo,
// es_actual). El contenido y el consecutivo nunca cambian.
func (r *DocumentoRepo) UpdateVersion(v *entity.DocumentoVersion) error {
	query := `
		UPDATE documento_versiones
		SET estado_version = $2, motivo = $3, es_actual = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.EstadoVersion, v.Motivo, v.EsActual)
	if err != nil {
		return fmt.Errorf("update version: %w", err)
	}
	return nil
}

func (r *DocumentoRepo) scanVersion(query, arg, op string) (*entity.DocumentoVersion, error) {
	v, err := scanVersionRow(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func scanVersionRow(row pgx.Row) (*entity.DocumentoVersion, error) {
	var v entity.DocumentoVersion
	var corrige *string
	err := row.Scan(
		&v.ID, &v.DocumentoID, &v.Numero, &v.ContenidoURL, &v.EstadoVersion, &v.Motivo,
		&corrige, &v.EsActual, &v.CreatedAt, &v.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if corrige != nil {
		v.CorrigeVersionID = *corrige
	}
	return &v, nil
}
