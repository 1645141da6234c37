package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados para abonos.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTransferencia = "transferencia"
	MetodoConsignacion  = "consignacion"
	MetodoCheque        = "cheque"
)

// Abono registro inmutable de un pago parcial contra la cuota inicial.
// El libro es append-only: la anulación se modela como un registro nuevo
// con Anulado=true referenciando al original, nunca como edición in situ.
type Abono struct {
	ID               string
	FuentePagoID     string
	Monto            decimal.Decimal
	MetodoPago       string
	NumeroReferencia string
	ComprobanteURL   string
	Notas            string
	Anulado          bool
	AnulaAbonoID     string // abono original, si este registro es una anulación
	FechaPago        time.Time
	CreatedAt        time.Time
	CreatedBy        string
}
