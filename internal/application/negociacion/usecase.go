package negociacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// UseCase casos de uso del ciclo de vida de la negociación: creación,
// consulta, suspensión, reanudación y renuncia. La configuración de fuentes
// y la activación viven en archivos hermanos de este paquete.
type UseCase struct {
	txRunner    TxRunner
	negRepo     repository.NegociacionRepository
	fuenteRepo  repository.FuentePagoRepository
	clienteRepo repository.ClienteRepository
	audit       ports.Auditoria
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	negRepo repository.NegociacionRepository,
	fuenteRepo repository.FuentePagoRepository,
	clienteRepo repository.ClienteRepository,
	audit ports.Auditoria,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		negRepo:     negRepo,
		fuenteRepo:  fuenteRepo,
		clienteRepo: clienteRepo,
		audit:       audit,
	}
}

// Crear crea la negociación en estado configuración y reserva la vivienda
// en la misma transacción (bloqueo de fila sobre la vivienda: dos asesores
// no pueden reservar la misma unidad).
func (uc *UseCase) Crear(ctx context.Context, proyectoID, userID string, in dto.CrearNegociacionRequest) (*dto.NegociacionResponse, error) {
	if !in.ValorNegociado.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Descuento.IsNegative() || in.Descuento.GreaterThan(in.ValorNegociado) {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	neg := &entity.Negociacion{
		ID:             uuid.New().String(),
		ProyectoID:     proyectoID,
		ViviendaID:     in.ViviendaID,
		ClienteID:      in.ClienteID,
		ValorNegociado: in.ValorNegociado.Round(0),
		Descuento:      in.Descuento.Round(0),
		ValorTotal:     in.ValorNegociado.Sub(in.Descuento).Round(0),
		Estado:         entity.EstadoConfiguracion,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      userID,
	}

	err = uc.txRunner.RunNegociacion(ctx, func(
		negRepo repository.NegociacionRepository,
		_ repository.FuentePagoRepository,
		viviendaRepo repository.ViviendaRepository,
	) error {
		vivienda, err := viviendaRepo.GetForUpdate(in.ViviendaID)
		if err != nil {
			return err
		}
		if vivienda == nil || vivienda.ProyectoID != proyectoID {
			return domain.ErrNotFound
		}
		if vivienda.Estado != entity.ViviendaDisponible {
			return domain.ErrConflict // ya reservada o vendida
		}
		vivienda.Estado = entity.ViviendaReservada
		vivienda.UpdatedAt = now
		if err := viviendaRepo.Update(vivienda); err != nil {
			return err
		}
		return negRepo.Create(neg)
	})
	if err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoNegociacionCreada, neg.ID, userID, map[string]string{
		"vivienda_id": neg.ViviendaID,
		"valor_total": neg.ValorTotal.StringFixed(0),
	})
	return uc.toResponse(neg, nil), nil
}

// Get devuelve la negociación con sus fuentes y el estado de cierre computado.
func (uc *UseCase) Get(ctx context.Context, proyectoID, id string) (*dto.NegociacionResponse, error) {
	neg, err := uc.negRepo.GetByID(id)
	if err != nil || neg == nil {
		return nil, domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}
	fuentes, err := uc.fuenteRepo.ListByNegociacion(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(neg, fuentes), nil
}

// List lista las negociaciones del proyecto.
func (uc *UseCase) List(ctx context.Context, proyectoID string, limit, offset int) ([]*dto.NegociacionResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.negRepo.ListByProyecto(proyectoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NegociacionResponse, 0, len(list))
	for _, n := range list {
		out = append(out, uc.toResponse(n, nil))
	}
	return out, nil
}

// Suspender pasa la negociación de activa a suspendida (acción administrativa).
func (uc *UseCase) Suspender(ctx context.Context, proyectoID, userID, id string) error {
	return uc.transicionSimple(ctx, proyectoID, userID, id, entity.EstadoSuspendida, ports.EventoNegociacionSuspendida)
}

// Reanudar regresa una negociación suspendida a activa.
func (uc *UseCase) Reanudar(ctx context.Context, proyectoID, userID, id string) error {
	return uc.transicionSimple(ctx, proyectoID, userID, id, entity.EstadoActiva, ports.EventoNegociacionReanudada)
}

// Renunciar cierra la negociación por desistimiento y libera la vivienda
// para el inventario, todo en una transacción.
func (uc *UseCase) Renunciar(ctx context.Context, proyectoID, userID, id string) error {
	var negID string
	err := uc.txRunner.RunNegociacion(ctx, func(
		negRepo repository.NegociacionRepository,
		_ repository.FuentePagoRepository,
		viviendaRepo repository.ViviendaRepository,
	) error {
		neg, err := negRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if neg == nil {
			return domain.ErrNotFound
		}
		if neg.ProyectoID != proyectoID {
			return domain.ErrForbidden
		}
		if err := cierre.Transicionar(neg, entity.EstadoRenuncia); err != nil {
			return err
		}
		now := time.Now()
		neg.UpdatedAt = now
		if err := negRepo.Update(neg); err != nil {
			return err
		}
		vivienda, err := viviendaRepo.GetForUpdate(neg.ViviendaID)
		if err != nil {
			return err
		}
		if vivienda != nil {
			vivienda.Estado = entity.ViviendaDisponible
			vivienda.UpdatedAt = now
			if err := viviendaRepo.Update(vivienda); err != nil {
				return err
			}
		}
		negID = neg.ID
		return nil
	})
	if err != nil {
		return err
	}
	uc.publicar(ctx, ports.EventoNegociacionRenuncia, negID, userID, nil)
	return nil
}

// transicionSimple aplica una transición que no toca inventario ni fuentes.
func (uc *UseCase) transicionSimple(ctx context.Context, proyectoID, userID, id, hacia, evento string) error {
	err := uc.txRunner.RunNegociacion(ctx, func(
		negRepo repository.NegociacionRepository,
		_ repository.FuentePagoRepository,
		_ repository.ViviendaRepository,
	) error {
		neg, err := negRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if neg == nil {
			return domain.ErrNotFound
		}
		if neg.ProyectoID != proyectoID {
			return domain.ErrForbidden
		}
		if err := cierre.Transicionar(neg, hacia); err != nil {
			return err
		}
		neg.UpdatedAt = time.Now()
		return negRepo.Update(neg)
	})
	if err != nil {
		return err
	}
	uc.publicar(ctx, evento, id, userID, nil)
	return nil
}

// publicar emite el evento de auditoría en best-effort.
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

func (uc *UseCase) toResponse(n *entity.Negociacion, fuentes []*entity.FuentePago) *dto.NegociacionResponse {
	st := cierre.CalcularEstado(fuentes, n.ValorTotal)
	resp := &dto.NegociacionResponse{
		ID:              n.ID,
		ProyectoID:      n.ProyectoID,
		ViviendaID:      n.ViviendaID,
		ClienteID:       n.ClienteID,
		ValorNegociado:  n.ValorNegociado,
		Descuento:       n.Descuento,
		ValorTotal:      n.ValorTotal,
		Estado:          n.Estado,
		FechaActivacion: n.FechaActivacion,
		FechaCompletada: n.FechaCompletada,
		Fuentes:         make([]dto.FuentePagoResponse, 0, len(fuentes)),
		Cierre: dto.EstadoCierreResponse{
			TotalConfigurado:   st.TotalConfigurado,
			PorcentajeCubierto: st.PorcentajeCubierto,
			Diferencia:         st.Diferencia,
			EsExacto:           st.EsExacto,
		},
		CreatedAt: n.CreatedAt,
	}
	for _, f := range fuentes {
		resp.Fuentes = append(resp.Fuentes, dto.ToFuenteResponse(f))
	}
	return resp
}
