package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de inventario de una vivienda.
const (
	ViviendaDisponible = "disponible"
	ViviendaReservada  = "reservada" // negociación en curso
	ViviendaVendida    = "vendida"   // negociación completada
)

// Proyecto un proyecto inmobiliario (torre, etapa o urbanización).
type Proyecto struct {
	ID        string
	Nombre    string
	Ciudad    string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vivienda una unidad del inventario del proyecto.
type Vivienda struct {
	ID           string
	ProyectoID   string
	Nomenclatura string // torre-apto, manzana-lote
	Area         decimal.Decimal
	ValorLista   decimal.Decimal
	Estado       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
