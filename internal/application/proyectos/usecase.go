package proyectos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// UseCase casos de uso para proyectos y su inventario de viviendas.
type UseCase struct {
	proyectoRepo repository.ProyectoRepository
	viviendaRepo repository.ViviendaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(proyectoRepo repository.ProyectoRepository, viviendaRepo repository.ViviendaRepository) *UseCase {
	return &UseCase{proyectoRepo: proyectoRepo, viviendaRepo: viviendaRepo}
}

// Crear registra un proyecto nuevo. El slug es único.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.Nombre == "" || in.Slug == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.proyectoRepo.GetBySlug(in.Slug)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	proyecto := &entity.Proyecto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Ciudad:    in.Ciudad,
		Slug:      in.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proyectoRepo.Create(proyecto); err != nil {
		return nil, err
	}
	return toProyectoResponse(proyecto), nil
}

// List lista los proyectos registrados.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProyectoResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.proyectoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProyectoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProyectoResponse(p))
	}
	return out, nil
}

// CrearVivienda da de alta una unidad disponible en el inventario del proyecto.
func (uc *UseCase) CrearVivienda(ctx context.Context, proyectoID string, in dto.CrearViviendaRequest) (*dto.ViviendaResponse, error) {
	if in.Nomenclatura == "" || !in.ValorLista.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	proyecto, err := uc.proyectoRepo.GetByID(proyectoID)
	if err != nil || proyecto == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	vivienda := &entity.Vivienda{
		ID:           uuid.New().String(),
		ProyectoID:   proyectoID,
		Nomenclatura: in.Nomenclatura,
		Area:         in.Area,
		ValorLista:   in.ValorLista.Round(0),
		Estado:       entity.ViviendaDisponible,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.viviendaRepo.Create(vivienda); err != nil {
		return nil, err
	}
	return toViviendaResponse(vivienda), nil
}

// ListViviendas lista el inventario del proyecto, con filtro opcional por estado.
func (uc *UseCase) ListViviendas(ctx context.Context, proyectoID, estado string, limit, offset int) ([]*dto.ViviendaResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	switch estado {
	case "", entity.ViviendaDisponible, entity.ViviendaReservada, entity.ViviendaVendida:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.viviendaRepo.ListByProyecto(proyectoID, estado, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ViviendaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toViviendaResponse(v))
	}
	return out, nil
}

func toProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	return &dto.ProyectoResponse{
		ID:     p.ID,
		Nombre: p.Nombre,
		Ciudad: p.Ciudad,
		Slug:   p.Slug,
	}
}

func toViviendaResponse(v *entity.Vivienda) *dto.ViviendaResponse {
	return &dto.ViviendaResponse{
		ID:           v.ID,
		ProyectoID:   v.ProyectoID,
		Nomenclatura: v.Nomenclatura,
		Area:         v.Area,
		ValorLista:   v.ValorLista,
		Estado:       v.Estado,
	}
}
