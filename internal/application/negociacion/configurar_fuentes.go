package negociacion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// ConfigurarFuentes reemplaza el conjunto de fuentes de la negociación con
// el envío del formulario y pasa la negociación a cierre_financiero. El
// conjunto completo se valida con las reglas del registro (cardinalidad por
// tipo, monto > 0, entidad requerida) antes de tocar la BD; la escritura es
// una sola transacción: crear nuevas, actualizar conservadas, borrar las
// que salieron (solo si no tienen abonos).
func (uc *UseCase) ConfigurarFuentes(ctx context.Context, proyectoID, userID, negID string, in dto.ConfigurarFuentesRequest) (*dto.NegociacionResponse, error) {
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
		if neg.EstaCerrada() {
			return domain.ErrNegociacionBloqueada
		}
		if neg.Estado != entity.EstadoConfiguracion && neg.Estado != entity.EstadoCierreFinanciero {
			return domain.ErrConflict
		}

		existentes, err := fuenteRepo.ListByNegociacion(negID)
		if err != nil {
			return err
		}
		porID := make(map[string]*entity.FuentePago, len(existentes))
		for _, f := range existentes {
			porID[f.ID] = f
		}

		// Armar el conjunto propuesto con el registro para validar
		// cardinalidad y reglas de guardado antes de escribir.
		registro := cierre.NewRegistroFuentes(negID, nil)
		now := time.Now()
		propuestas := make([]*entity.FuentePago, 0, len(in.Fuentes))
		for _, fr := range in.Fuentes {
			tipo, err := entity.ParseTipoFuente(fr.Tipo)
			if err != nil {
				return domain.ErrInvalidInput
			}
			f, err := registro.Agregar(tipo)
			if err != nil {
				return err // ErrFuenteDuplicada
			}
			f.MontoAprobado = fr.MontoAprobado.Round(0)
			f.Entidad = fr.Entidad
			f.NumeroReferencia = fr.NumeroReferencia
			f.CartaAprobacionURL = fr.CartaAprobacionURL
			f.CartaAsignacionURL = fr.CartaAsignacionURL
			f.UpdatedAt = now
			if fr.ID != "" {
				prev, ok := porID[fr.ID]
				if !ok {
					return domain.ErrNotFound
				}
				if prev.Tipo != tipo {
					return domain.ErrInvalidInput // el tipo de una fuente persistida no cambia
				}
				f.ID = prev.ID
				f.MontoRecibido = prev.MontoRecibido
				f.CreatedAt = prev.CreatedAt
				if f.MontoAprobado.LessThan(f.MontoRecibido) {
					return domain.ErrSobrepago // no se puede aprobar menos de lo ya recibido
				}
			} else {
				f.CreatedAt = now
			}
			propuestas = append(propuestas, f)
		}
		if err := registro.ValidarParaGuardar(); err != nil {
			return err
		}

		// Eliminar las fuentes que salieron del conjunto (bloqueado si tienen abonos).
		enviadas := make(map[string]bool, len(propuestas))
		for _, f := range propuestas {
			if f.ID != "" {
				enviadas[f.ID] = true
			}
		}
		for _, prev := range existentes {
			if enviadas[prev.ID] {
				continue
			}
			if !prev.MontoRecibido.IsZero() {
				return domain.ErrEliminacionBloqueada
			}
			if err := fuenteRepo.Delete(prev.ID); err != nil {
				return err
			}
			uc.publicar(ctx, ports.EventoFuenteEliminada, negID, userID, map[string]string{
				"fuente_id": prev.ID, "tipo": prev.Tipo.String(),
			})
		}

		for _, f := range propuestas {
			if f.ID == "" {
				f.ID = uuid.New().String()
				if err := fuenteRepo.Create(f); err != nil {
					return err
				}
				uc.publicar(ctx, ports.EventoFuenteCreada, negID, userID, map[string]string{
					"fuente_id": f.ID, "tipo": f.Tipo.String(),
				})
			} else if err := fuenteRepo.Update(f); err != nil {
				return err
			}
		}

		if neg.Estado == entity.EstadoConfiguracion {
			if err := cierre.Transicionar(neg, entity.EstadoCierreFinanciero); err != nil {
				return err
			}
		}
		neg.UpdatedAt = now
		if err := negRepo.Update(neg); err != nil {
			return err
		}
		fuentes = propuestas
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(neg, fuentes), nil
}
