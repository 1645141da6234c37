package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la negociación (columna `estado` del esquema remoto).
const (
	EstadoConfiguracion    = "configuracion"     // borrador: fuentes en edición
	EstadoCierreFinanciero = "cierre_financiero" // fuentes enviadas, pendiente activar
	EstadoActiva           = "activa"            // cierre exacto y documentos completos
	EstadoSuspendida       = "suspendida"        // acción administrativa desde activa
	EstadoCompletada       = "completada"        // todas las fuentes pagadas
	EstadoRenuncia         = "renuncia"          // desistimiento; libera la vivienda
)

// Negociacion raíz de agregado: el negocio entre un cliente y una vivienda,
// con un valor total a fondear por las fuentes de pago.
type Negociacion struct {
	ID              string
	ProyectoID      string
	ViviendaID      string
	ClienteID       string
	ValorNegociado  decimal.Decimal
	Descuento       decimal.Decimal
	ValorTotal      decimal.Decimal // ValorNegociado - Descuento
	Estado          string
	FechaActivacion *time.Time
	FechaCompletada *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       string
}

// EstaCerrada indica si la negociación ya no admite abonos ni cambios de
// fuentes (estado terminal).
func (n *Negociacion) EstaCerrada() bool {
	return n.Estado == EstadoCompletada || n.Estado == EstadoRenuncia
}
