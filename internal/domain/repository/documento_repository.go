package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// DocumentoRepository puerto de persistencia para documentos versionados.
type DocumentoRepository interface {
	Create(d *entity.Documento) error
	GetByID(id string) (*entity.Documento, error)
	ListByNegociacion(negociacionID string) ([]*entity.Documento, error)

	CreateVersion(v *entity.DocumentoVersion) error
	GetVersion(id string) (*entity.DocumentoVersion, error)
	// GetVersionActual devuelve la única versión con es_actual=true.
	GetVersionActual(documentoID string) (*entity.DocumentoVersion, error)
	ListVersiones(documentoID string) ([]*entity.DocumentoVersion, error)
	UpdateVersion(v *entity.DocumentoVersion) error
}
