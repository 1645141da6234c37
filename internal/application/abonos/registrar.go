// Package abonos implementa el libro de abonos: registro de pagos parciales
// contra la cuota inicial con reglas de no sobregiro, y su historial.
package abonos

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

// UseCase registro y consulta de abonos.
type UseCase struct {
	txRunner   TxRunner
	fuenteRepo repository.FuentePagoRepository
	abonoRepo  repository.AbonoRepository
	negRepo    repository.NegociacionRepository
	audit      ports.Auditoria
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	fuenteRepo repository.FuentePagoRepository,
	abonoRepo repository.AbonoRepository,
	negRepo repository.NegociacionRepository,
	audit ports.Auditoria,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		fuenteRepo: fuenteRepo,
		abonoRepo:  abonoRepo,
		negRepo:    negRepo,
		audit:      audit,
	}
}

// Registrar registra un abono contra una fuente de cuota inicial.
//
// Reglas, en orden de verificación bajo el bloqueo de fila de la fuente:
//   - la negociación no puede estar cerrada (ErrNegociacionBloqueada) ni
//     fuera del estado activa (ErrConflict);
//   - solo las fuentes de cuota inicial reciben abonos (ErrInvalidInput);
//   - saldo pendiente cero rechaza con ErrFuentePagada;
//   - un monto que sobregire el saldo rechaza con ErrSobrepago: error del
//     caller, nunca truncado en silencio.
//
// Si el abono deja todas las fuentes de la negociación en saldo cero, la
// negociación pasa a completada y la vivienda a vendida en la misma
// transacción (decisión registrada en DESIGN.md).
func (uc *UseCase) Registrar(ctx context.Context, proyectoID, userID string, in dto.RegistrarAbonoRequest) (*dto.RegistrarAbonoResponse, error) {
	monto := in.Monto.Round(0)
	if !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var abono *entity.Abono
	var fuente *entity.FuentePago
	var neg *entity.Negociacion
	completada := false

	err := uc.txRunner.RunAbono(ctx, func(
		negRepo repository.NegociacionRepository,
		fuenteRepo repository.FuentePagoRepository,
		abonoRepo repository.AbonoRepository,
		viviendaRepo repository.ViviendaRepository,
	) error {
		var err error
		// Bloquea la fila de la fuente: serializa abonos concurrentes
		// contra la misma fuente (disciplina single-writer).
		fuente, err = fuenteRepo.GetForUpdate(in.FuentePagoID)
		if err != nil {
			return err
		}
		if fuente == nil {
			return domain.ErrNotFound
		}
		if !fuente.Tipo.EsAbonable() {
			return domain.ErrInvalidInput
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
		if neg.Estado != entity.EstadoActiva {
			return domain.ErrConflict
		}

		saldo := fuente.SaldoPendiente()
		if saldo.IsZero() {
			return domain.ErrFuentePagada
		}
		if monto.GreaterThan(saldo) {
			return domain.ErrSobrepago
		}

		now := time.Now()
		abono = &entity.Abono{
			ID:               uuid.New().String(),
			FuentePagoID:     fuente.ID,
			Monto:            monto,
			MetodoPago:       in.MetodoPago,
			NumeroReferencia: in.NumeroReferencia,
			ComprobanteURL:   in.ComprobanteURL,
			Notas:            in.Notas,
			FechaPago:        now,
			CreatedAt:        now,
			CreatedBy:        userID,
		}
		if err := abonoRepo.Create(abono); err != nil {
			return err
		}

		fuente.MontoRecibido = fuente.MontoRecibido.Add(monto)
		fuente.UpdatedAt = now
		if err := fuenteRepo.Update(fuente); err != nil {
			return err
		}

		// Si todas las fuentes quedaron pagadas, la negociación se completa
		// aquí mismo: único lugar que dispara esa transición.
		todas, err := fuenteRepo.ListByNegociacion(neg.ID)
		if err != nil {
			return err
		}
		pagadas := true
		for _, f := range todas {
			if !f.EstaPagada() {
				pagadas = false
				break
			}
		}
		if !pagadas {
			return nil
		}
		if err := cierre.Transicionar(neg, entity.EstadoCompletada); err != nil {
			return err
		}
		neg.FechaCompletada = &now
		neg.UpdatedAt = now
		if err := negRepo.Update(neg); err != nil {
			return err
		}
		vivienda, err := viviendaRepo.GetForUpdate(neg.ViviendaID)
		if err != nil {
			return err
		}
		if vivienda != nil {
			vivienda.Estado = entity.ViviendaVendida
			vivienda.UpdatedAt = now
			if err := viviendaRepo.Update(vivienda); err != nil {
				return err
			}
		}
		completada = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publicar(ctx, ports.EventoAbonoRegistrado, neg.ID, userID, map[string]string{
		"abono_id":    abono.ID,
		"fuente_id":   fuente.ID,
		"monto":       abono.Monto.StringFixed(0),
		"metodo_pago": abono.MetodoPago,
	})
	if completada {
		uc.publicar(ctx, ports.EventoNegociacionCompletada, neg.ID, userID, nil)
	}

	resp := &dto.RegistrarAbonoResponse{
		Abono:  dto.ToAbonoResponse(abono),
		Fuente: dto.ToFuenteResponse(fuente),
	}
	return resp, nil
}

// Historial devuelve los abonos de una fuente, más reciente primero.
// Solo lectura, para visualización.
func (uc *UseCase) Historial(ctx context.Context, proyectoID, fuentePagoID string) ([]dto.AbonoResponse, error) {
	fuente, err := uc.fuenteRepo.GetByID(fuentePagoID)
	if err != nil || fuente == nil {
		return nil, domain.ErrNotFound
	}
	neg, err := uc.negRepo.GetByID(fuente.NegociacionID)
	if err != nil || neg == nil {
		return nil, domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.abonoRepo.ListByFuente(fuentePagoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AbonoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ToAbonoResponse(a))
	}
	return out, nil
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
