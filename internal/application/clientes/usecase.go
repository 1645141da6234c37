package clientes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// UseCase casos de uso para clientes de la sala de ventas.
type UseCase struct {
	repo repository.ClienteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClienteRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Crear registra un cliente nuevo. El número de documento es único por proyecto.
func (uc *UseCase) Crear(ctx context.Context, proyectoID string, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.NumeroDocumento == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.repo.GetByProyectoYDocumento(proyectoID, in.NumeroDocumento)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:              uuid.New().String(),
		ProyectoID:      proyectoID,
		Nombre:          in.Nombre,
		TipoDocumento:   in.TipoDocumento,
		NumeroDocumento: in.NumeroDocumento,
		Email:           in.Email,
		Telefono:        in.Telefono,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toResponse(cliente), nil
}

// Get devuelve un cliente del proyecto.
func (uc *UseCase) Get(ctx context.Context, proyectoID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}
	return toResponse(cliente), nil
}

// List lista los clientes del proyecto.
func (uc *UseCase) List(ctx context.Context, proyectoID string, limit, offset int) ([]*dto.ClienteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByProyecto(proyectoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

func toResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:              c.ID,
		ProyectoID:      c.ProyectoID,
		Nombre:          c.Nombre,
		TipoDocumento:   c.TipoDocumento,
		NumeroDocumento: c.NumeroDocumento,
		Email:           c.Email,
		Telefono:        c.Telefono,
	}
}
