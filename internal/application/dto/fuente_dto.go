package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// Los nombres JSON de este archivo replican el esquema remoto existente
// (monto_aprobado, saldo_pendiente, carta_aprobacion_url, ...): no renombrar.

// ConfigurarFuenteRequest una fuente dentro del envío de configuración.
// ID vacío = fuente nueva; ID presente = fuente ya persistida que se conserva.
type ConfigurarFuenteRequest struct {
	ID                 string          `json:"id,omitempty"`
	Tipo               string          `json:"tipo" validate:"required"`
	MontoAprobado      decimal.Decimal `json:"monto_aprobado"`
	Entidad            string          `json:"entidad,omitempty"`
	NumeroReferencia   string          `json:"numero_referencia,omitempty"`
	CartaAprobacionURL string          `json:"carta_aprobacion_url,omitempty"`
	CartaAsignacionURL string          `json:"carta_asignacion_url,omitempty"`
}

// ConfigurarFuentesRequest envío completo de la configuración de fuentes.
type ConfigurarFuentesRequest struct {
	Fuentes []ConfigurarFuenteRequest `json:"fuentes" validate:"required,min=1,dive"`
}

// FuentePagoResponse una fuente con sus campos computados.
type FuentePagoResponse struct {
	ID                 string          `json:"id"`
	NegociacionID      string          `json:"negociacion_id"`
	Tipo               string          `json:"tipo"`
	MontoAprobado      decimal.Decimal `json:"monto_aprobado"`
	MontoRecibido      decimal.Decimal `json:"monto_recibido"`
	SaldoPendiente     decimal.Decimal `json:"saldo_pendiente"`
	PorcentajeAvance   decimal.Decimal `json:"porcentaje_avance"`
	Entidad            string          `json:"entidad,omitempty"`
	NumeroReferencia   string          `json:"numero_referencia,omitempty"`
	CartaAprobacionURL string          `json:"carta_aprobacion_url,omitempty"`
	CartaAsignacionURL string          `json:"carta_asignacion_url,omitempty"`
}

// ToFuenteResponse mapea la entidad a la respuesta con computados.
func ToFuenteResponse(f *entity.FuentePago) FuentePagoResponse {
	return FuentePagoResponse{
		ID:                 f.ID,
		NegociacionID:      f.NegociacionID,
		Tipo:               f.Tipo.String(),
		MontoAprobado:      f.MontoAprobado,
		MontoRecibido:      f.MontoRecibido,
		SaldoPendiente:     f.SaldoPendiente(),
		PorcentajeAvance:   f.PorcentajeAvance(),
		Entidad:            f.Entidad,
		NumeroReferencia:   f.NumeroReferencia,
		CartaAprobacionURL: f.CartaAprobacionURL,
		CartaAsignacionURL: f.CartaAsignacionURL,
	}
}
