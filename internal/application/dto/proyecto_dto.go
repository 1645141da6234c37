package dto

import "github.com/shopspring/decimal"

// CrearProyectoRequest alta de un proyecto inmobiliario.
type CrearProyectoRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Ciudad string `json:"ciudad" validate:"required"`
	Slug   string `json:"slug" validate:"required,lowercase"`
}

// ProyectoResponse proyecto registrado.
type ProyectoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Ciudad string `json:"ciudad"`
	Slug   string `json:"slug"`
}

// CrearViviendaRequest alta de una unidad en el inventario del proyecto.
type CrearViviendaRequest struct {
	Nomenclatura string          `json:"nomenclatura" validate:"required"`
	Area         decimal.Decimal `json:"area"`
	ValorLista   decimal.Decimal `json:"valor_lista"`
}

// ViviendaResponse unidad del inventario.
type ViviendaResponse struct {
	ID           string          `json:"id"`
	ProyectoID   string          `json:"proyecto_id"`
	Nomenclatura string          `json:"nomenclatura"`
	Area         decimal.Decimal `json:"area"`
	ValorLista   decimal.Decimal `json:"valor_lista"`
	Estado       string          `json:"estado"`
}
