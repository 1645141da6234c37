package negociacion

import (
	"context"
	"time"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// Activar intenta la transición cierre_financiero -> activa. Las tres
// compuertas (cierre exacto, documentos completos, montos aprobados > 0) se
// verifican con las fuentes leídas bajo el bloqueo de la negociación, de
// modo que una edición concurrente de fuentes no pueda colarse entre la
// verificación y el cambio de estado. En fallo devuelve
// *domain.CierreIncompletoError con la causa concreta.
func (uc *UseCase) Activar(ctx context.Context, proyectoID, userID, negID string) (*dto.NegociacionResponse, error) {
	var neg *entity.Negociacion
	var fuentes []*entity.FuentePago

	err := uc.txRunner.RunNegociacion(ctx, func(
		negRepo repository.NegociacionRepository,
		fuenteRepo repository.FuentePagoRepository,
		_ repository.ViviendaRepository,
	) error {
		var err error
		neg, err = negRepo.GetForUpdate(negID)
		if err != nil {
			return err
		}
		if neg == nil {
			return domain.ErrNotFound
		}
		if neg.ProyectoID != proyectoID {
			return domain.ErrForbidden
		}
		if !cierre.PuedeTransicionar(neg.Estado, entity.EstadoActiva) {
			return domain.ErrConflict
		}

		fuentes, err = fuenteRepo.ListByNegociacion(negID)
		if err != nil {
			return err
		}
		if err := cierre.VerificarActivacion(fuentes, neg.ValorTotal); err != nil {
			return err
		}

		now := time.Now()
		if err := cierre.Transicionar(neg, entity.EstadoActiva); err != nil {
			return err
		}
		neg.FechaActivacion = &now
		neg.UpdatedAt = now
		return negRepo.Update(neg)
	})
	if err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoNegociacionActivada, neg.ID, userID, map[string]string{
		"valor_total": neg.ValorTotal.StringFixed(0),
	})
	return uc.toResponse(neg, fuentes), nil
}
