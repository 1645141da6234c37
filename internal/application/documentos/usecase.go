// Package documentos implementa el versionado de documentos de la
// negociación: cada corrección crea una versión nueva, la historia no se
// edita ni se borra.
package documentos

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// longitud mínima del motivo al marcar una versión como errónea u obsoleta
const motivoMinimo = 10

// UseCase operaciones sobre documentos versionados.
type UseCase struct {
	docRepo repository.DocumentoRepository
	negRepo repository.NegociacionRepository
	storage ports.Storage
	audit   ports.Auditoria
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	docRepo repository.DocumentoRepository,
	negRepo repository.NegociacionRepository,
	storage ports.Storage,
	audit ports.Auditoria,
) *UseCase {
	return &UseCase{
		docRepo: docRepo,
		negRepo: negRepo,
		storage: storage,
		audit:   audit,
	}
}

// SubirVersion sube el binario al almacenamiento y crea la versión siguiente
// del documento. Si el documento no existe se crea su cabecera con la primera
// versión; si existe, la versión actual pasa a supersedida y la nueva queda
// como actual con el consecutivo siguiente.
func (uc *UseCase) SubirVersion(ctx context.Context, proyectoID, userID, negID, documentoID string, contenido []byte, in dto.SubirVersionRequest) (*dto.DocumentoResponse, error) {
	if len(contenido) == 0 {
		return nil, domain.ErrInvalidInput
	}
	neg, err := uc.negRepo.GetByID(negID)
	if err != nil || neg == nil {
		return nil, domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}

	// Subir antes de tocar versiones: un fallo del almacenamiento no debe
	// dejar al documento sin versión vigente.
	url, err := uc.storage.Subir(ctx, contenido, in.Nombre, in.Proposito)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var doc *entity.Documento
	numero := 1
	corrige := ""

	if documentoID != "" {
		doc, err = uc.docRepo.GetByID(documentoID)
		if err != nil || doc == nil {
			return nil, domain.ErrNotFound
		}
		if doc.NegociacionID != negID {
			return nil, domain.ErrNotFound
		}
		actual, err := uc.docRepo.GetVersionActual(doc.ID)
		if err != nil {
			return nil, err
		}
		if actual != nil {
			numero = actual.Numero + 1
			corrige = actual.ID
			actual.EstadoVersion = entity.VersionSupersedida
			actual.EsActual = false
			if err := uc.docRepo.UpdateVersion(actual); err != nil {
				return nil, err
			}
		}
	} else {
		doc = &entity.Documento{
			ID:            uuid.New().String(),
			NegociacionID: negID,
			Nombre:        in.Nombre,
			Proposito:     in.Proposito,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.docRepo.Create(doc); err != nil {
			return nil, err
		}
	}

	version := &entity.DocumentoVersion{
		ID:               uuid.New().String(),
		DocumentoID:      doc.ID,
		Numero:           numero,
		ContenidoURL:     url,
		EstadoVersion:    entity.VersionValida,
		CorrigeVersionID: corrige,
		EsActual:         true,
		CreatedAt:        now,
		CreatedBy:        userID,
	}
	if err := uc.docRepo.CreateVersion(version); err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoDocumentoVersionado, negID, userID, map[string]string{
		"documento_id": doc.ID,
		"version_id":   version.ID,
	})
	return uc.toResponse(doc, []*entity.DocumentoVersion{version}), nil
}

// MarcarVersion marca la versión actual como errónea u obsoleta. Solo la
// versión actual se puede marcar (ErrVersionNoActual) y el motivo es
// obligatorio con un mínimo de sustancia (ErrMotivoRequerido). La versión
// marcada deja de ser actual; el documento queda sin versión vigente hasta
// que se suba o restaure una.
func (uc *UseCase) MarcarVersion(ctx context.Context, proyectoID, userID, versionID string, in dto.MarcarVersionRequest) (*dto.DocumentoVersionResponse, error) {
	if in.Estado != entity.VersionErronea && in.Estado != entity.VersionObsoleta {
		return nil, domain.ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Motivo)) < motivoMinimo {
		return nil, domain.ErrMotivoRequerido
	}

	version, doc, neg, err := uc.cargarVersion(proyectoID, versionID)
	if err != nil {
		return nil, err
	}
	if !version.EsActual {
		return nil, domain.ErrVersionNoActual
	}

	version.EstadoVersion = in.Estado
	version.Motivo = strings.TrimSpace(in.Motivo)
	version.EsActual = false
	if err := uc.docRepo.UpdateVersion(version); err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoVersionMarcada, neg.ID, userID, map[string]string{
		"documento_id": doc.ID,
		"version_id":   version.ID,
		"estado":       in.Estado,
	})
	resp := dto.ToVersionResponse(version)
	return &resp, nil
}

// Restaurar vuelve vigente el contenido de una versión histórica creando una
// versión nueva que lo referencia (CorrigeVersionID). La historia nunca se
// reescribe: restaurar la versión 2 de un documento en la 5 produce una
// versión 6 con el contenido de la 2.
func (uc *UseCase) Restaurar(ctx context.Context, proyectoID, userID, versionID string) (*dto.DocumentoVersionResponse, error) {
	origen, doc, neg, err := uc.cargarVersion(proyectoID, versionID)
	if err != nil {
		return nil, err
	}
	if origen.EsActual {
		return nil, domain.ErrConflict // ya es la vigente
	}

	versiones, err := uc.docRepo.ListVersiones(doc.ID)
	if err != nil {
		return nil, err
	}
	ultimo := 0
	for _, v := range versiones {
		if v.Numero > ultimo {
			ultimo = v.Numero
		}
		if v.EsActual {
			v.EstadoVersion = entity.VersionSupersedida
			v.EsActual = false
			if err := uc.docRepo.UpdateVersion(v); err != nil {
				return nil, err
			}
		}
	}

	nueva := &entity.DocumentoVersion{
		ID:               uuid.New().String(),
		DocumentoID:      doc.ID,
		Numero:           ultimo + 1,
		ContenidoURL:     origen.ContenidoURL,
		EstadoVersion:    entity.VersionValida,
		CorrigeVersionID: origen.ID,
		EsActual:         true,
		CreatedAt:        time.Now(),
		CreatedBy:        userID,
	}
	if err := uc.docRepo.CreateVersion(nueva); err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoVersionRestaurada, neg.ID, userID, map[string]string{
		"documento_id":  doc.ID,
		"version_id":    nueva.ID,
		"restaurada_de": origen.ID,
	})
	resp := dto.ToVersionResponse(nueva)
	return &resp, nil
}

// ListByNegociacion lista los documentos de la negociación con sus versiones.
func (uc *UseCase) ListByNegociacion(ctx context.Context, proyectoID, negID string) ([]*dto.DocumentoResponse, error) {
	neg, err := uc.negRepo.GetByID(negID)
	if err != nil || neg == nil {
		return nil, domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}
	docs, err := uc.docRepo.ListByNegociacion(negID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentoResponse, 0, len(docs))
	for _, d := range docs {
		versiones, err := uc.docRepo.ListVersiones(d.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(d, versiones))
	}
	return out, nil
}

// cargarVersion resuelve versión, documento y negociación verificando que la
// cadena pertenezca al proyecto del caller.
func (uc *UseCase) cargarVersion(proyectoID, versionID string) (*entity.DocumentoVersion, *entity.Documento, *entity.Negociacion, error) {
	version, err := uc.docRepo.GetVersion(versionID)
	if err != nil || version == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	doc, err := uc.docRepo.GetByID(version.DocumentoID)
	if err != nil || doc == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	neg, err := uc.negRepo.GetByID(doc.NegociacionID)
	if err != nil || neg == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, nil, nil, domain.ErrForbidden
	}
	return version, doc, neg, nil
}

func (uc *UseCase) toResponse(d *entity.Documento, versiones []*entity.DocumentoVersion) *dto.DocumentoResponse {
	resp := &dto.DocumentoResponse{
		ID:            d.ID,
		NegociacionID: d.NegociacionID,
		Nombre:        d.Nombre,
		Proposito:     d.Proposito,
		Versiones:     make([]dto.DocumentoVersionResponse, 0, len(versiones)),
	}
	for _, v := range versiones {
		resp.Versiones = append(resp.Versiones, dto.ToVersionResponse(v))
	}
	return resp
}

func (uc *UseCase) publicar(ctx context.Context, tipo, negociacionID, actor string, detalle map[string]string) {
	if uc.audit == nil {
		return
	}
	_ = uc.audit.Publicar(ctx, ports.Evento{
		Tipo:          tipo,
		NegociacionID: negociacionID,
		Actor:         actor,
		Detalle:       detalle,
		Fecha:         time.Now(),
	})
}
