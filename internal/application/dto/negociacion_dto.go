package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearNegociacionRequest creación de una negociación cliente-vivienda.
type CrearNegociacionRequest struct {
	ClienteID      string          `json:"cliente_id" validate:"required,uuid"`
	ViviendaID     string          `json:"vivienda_id" validate:"required,uuid"`
	ValorNegociado decimal.Decimal `json:"valor_negociado"`
	Descuento      decimal.Decimal `json:"descuento"`
}

// EstadoCierreResponse cobertura del cierre financiero.
type EstadoCierreResponse struct {
	TotalConfigurado   decimal.Decimal `json:"total_configurado"`
	PorcentajeCubierto decimal.Decimal `json:"porcentaje_cubierto"`
	Diferencia         decimal.Decimal `json:"diferencia"`
	EsExacto           bool            `json:"es_exacto"`
}

// NegociacionResponse negociación con fuentes y estado de cierre computado.
type NegociacionResponse struct {
	ID              string               `json:"id"`
	ProyectoID      string               `json:"proyecto_id"`
	ViviendaID      string               `json:"vivienda_id"`
	ClienteID       string               `json:"cliente_id"`
	ValorNegociado  decimal.Decimal      `json:"valor_negociado"`
	Descuento       decimal.Decimal      `json:"descuento"`
	ValorTotal      decimal.Decimal      `json:"valor_total"`
	Estado          string               `json:"estado"`
	FechaActivacion *time.Time           `json:"fecha_activacion,omitempty"`
	FechaCompletada *time.Time           `json:"fecha_completada,omitempty"`
	Fuentes         []FuentePagoResponse `json:"fuentes"`
	Cierre          EstadoCierreResponse `json:"cierre"`
	CreatedAt       time.Time            `json:"created_at"`
}
