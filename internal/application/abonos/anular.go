package abonos

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

const motivoAnulacionMinimo = 10

// Anular revierte un abono mal registrado. El libro es append-only: el
// original no se edita, se inserta un registro de anulación que lo referencia
// y el monto recibido de la fuente se descuenta en la misma transacción.
//
// Reglas bajo el bloqueo de fila de la fuente:
//   - un abono que ya es una anulación no puede anularse (ErrInvalidInput);
//   - un abono ya anulado no puede anularse dos veces (ErrConflict);
//   - una negociación cerrada no admite reversas (ErrNegociacionBloqueada);
//   - el motivo es obligatorio, mínimo 10 caracteres (ErrMotivoRequerido).
func (uc *UseCase) Anular(ctx context.Context, proyectoID, userID, abonoID string, in dto.AnularAbonoRequest) (*dto.RegistrarAbonoResponse, error) {
	motivo := strings.TrimSpace(in.Motivo)
	if len(motivo) < motivoAnulacionMinimo {
		return nil, domain.ErrMotivoRequerido
	}

	var reversa *entity.Abono
	var fuente *entity.FuentePago
	var neg *entity.Negociacion

	err := uc.txRunner.RunAbono(ctx, func(
		negRepo repository.NegociacionRepository,
		fuenteRepo repository.FuentePagoRepository,
		abonoRepo repository.AbonoRepository,
		_ repository.ViviendaRepository,
	) error {
		original, err := abonoRepo.GetByID(abonoID)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.ErrNotFound
		}
		if original.Anulado {
			return domain.ErrInvalidInput
		}

		fuente, err = fuenteRepo.GetForUpdate(original.FuentePagoID)
		if err != nil {
			return err
		}
		if fuente == nil {
			return domain.ErrNotFound
		}

		neg, err = negRepo.GetByID(fuente.NegociacionID)
		if err != nil || neg == nil {
			return domain.ErrNotFound
		}
		if neg.ProyectoID != proyectoID {
			return domain.ErrForbidden
		}
		if neg.EstaCerrada() {
			return domain.ErrNegociacionBloqueada
		}

		// Con la fila de la fuente bloqueada el historial no puede cambiar
		// debajo nuestro; una reversa previa hace el segundo intento visible.
		historial, err := abonoRepo.ListByFuente(fuente.ID)
		if err != nil {
			return err
		}
		for _, a := range historial {
			if a.AnulaAbonoID == original.ID {
				return domain.ErrConflict
			}
		}

		now := time.Now()
		reversa = &entity.Abono{
			ID:           uuid.New().String(),
			FuentePagoID: fuente.ID,
			Monto:        original.Monto,
			MetodoPago:   original.MetodoPago,
			Notas:        motivo,
			Anulado:      true,
			AnulaAbonoID: original.ID,
			FechaPago:    now,
			CreatedAt:    now,
			CreatedBy:    userID,
		}
		if err := abonoRepo.Create(reversa); err != nil {
			return err
		}

		fuente.MontoRecibido = fuente.MontoRecibido.Sub(original.Monto)
		fuente.UpdatedAt = now
		return fuenteRepo.Update(fuente)
	})
	if err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoAbonoAnulado, neg.ID, userID, map[string]string{
		"abono_id":  abonoID,
		"fuente_id": fuente.ID,
		"monto":     reversa.Monto.StringFixed(0),
		"motivo":    motivo,
	})

	return &dto.RegistrarAbonoResponse{
		Abono:  dto.ToAbonoResponse(reversa),
		Fuente: dto.ToFuenteResponse(fuente),
	}, nil
}
