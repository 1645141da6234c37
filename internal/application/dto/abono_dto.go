package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// RegistrarAbonoRequest registro de un pago parcial contra la cuota inicial.
type RegistrarAbonoRequest struct {
	FuentePagoID     string          `json:"fuente_pago_id" validate:"required,uuid"`
	Monto            decimal.Decimal `json:"monto"`
	MetodoPago       string          `json:"metodo_pago" validate:"required,oneof=efectivo transferencia consignacion cheque"`
	NumeroReferencia string          `json:"numero_referencia,omitempty"`
	ComprobanteURL   string          `json:"comprobante_url,omitempty"`
	Notas            string          `json:"notas,omitempty"`
}

// AnularAbonoRequest reversa de un abono mal registrado.
type AnularAbonoRequest struct {
	Motivo string `json:"motivo" validate:"required,min=10"`
}

// AbonoResponse un registro del libro de abonos.
type AbonoResponse struct {
	ID               string          `json:"id"`
	FuentePagoID     string          `json:"fuente_pago_id"`
	Monto            decimal.Decimal `json:"monto"`
	MetodoPago       string          `json:"metodo_pago"`
	NumeroReferencia string          `json:"numero_referencia,omitempty"`
	ComprobanteURL   string          `json:"comprobante_url,omitempty"`
	Notas            string          `json:"notas,omitempty"`
	Anulado          bool            `json:"anulado,omitempty"`
	AnulaAbonoID     string          `json:"anula_abono_id,omitempty"`
	FechaPago        time.Time       `json:"fecha_pago"`
}

// RegistrarAbonoResponse abono creado más la fuente actualizada.
type RegistrarAbonoResponse struct {
	Abono  AbonoResponse      `json:"abono"`
	Fuente FuentePagoResponse `json:"fuente"`
}

// ToAbonoResponse mapea la entidad.
func ToAbonoResponse(a *entity.Abono) AbonoResponse {
	return AbonoResponse{
		ID:               a.ID,
		FuentePagoID:     a.FuentePagoID,
		Monto:            a.Monto,
		MetodoPago:       a.MetodoPago,
		NumeroReferencia: a.NumeroReferencia,
		ComprobanteURL:   a.ComprobanteURL,
		Notas:            a.Notas,
		Anulado:          a.Anulado,
		AnulaAbonoID:     a.AnulaAbonoID,
		FechaPago:        a.FechaPago,
	}
}
