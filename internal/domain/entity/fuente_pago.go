package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/money"
)

// TipoFuente tipo de fuente de pago de una negociación. Enumeración cerrada:
// agregar un tipo nuevo obliga a cubrir los switch de metadata (el compilador
// y los tests de cobertura fallan si queda un caso sin atender).
type TipoFuente int

const (
	TipoCuotaInicial TipoFuente = iota
	TipoCreditoHipotecario
	TipoSubsidioMiCasaYa
	TipoSubsidioCaja
)

// TiposFuente todos los tipos válidos, en orden de presentación.
var TiposFuente = []TipoFuente{
	TipoCuotaInicial,
	TipoCreditoHipotecario,
	TipoSubsidioMiCasaYa,
	TipoSubsidioCaja,
}

// Nombres canónicos en el esquema remoto (columna `tipo`). Se preservan
// textualmente, tildes incluidas, por compatibilidad con los registros
// existentes.
const (
	nombreCuotaInicial       = "Cuota Inicial"
	nombreCreditoHipotecario = "Crédito Hipotecario"
	nombreSubsidioMiCasaYa   = "Subsidio Mi Casa Ya"
	nombreSubsidioCaja       = "Subsidio Caja de Compensación"
)

// String devuelve el nombre canónico del tipo.
func (t TipoFuente) String() string {
	switch t {
	case TipoCuotaInicial:
		return nombreCuotaInicial
	case TipoCreditoHipotecario:
		return nombreCreditoHipotecario
	case TipoSubsidioMiCasaYa:
		return nombreSubsidioMiCasaYa
	case TipoSubsidioCaja:
		return nombreSubsidioCaja
	}
	return fmt.Sprintf("TipoFuente(%d)", int(t))
}

// ParseTipoFuente convierte el nombre canónico a TipoFuente.
func ParseTipoFuente(s string) (TipoFuente, error) {
	switch s {
	case nombreCuotaInicial:
		return TipoCuotaInicial, nil
	case nombreCreditoHipotecario:
		return TipoCreditoHipotecario, nil
	case nombreSubsidioMiCasaYa:
		return TipoSubsidioMiCasaYa, nil
	case nombreSubsidioCaja:
		return TipoSubsidioCaja, nil
	}
	return 0, fmt.Errorf("tipo de fuente desconocido: %q", s)
}

// PermiteMultiples indica si una negociación admite más de una fuente de
// este tipo. Solo la cuota inicial puede repetirse.
func (t TipoFuente) PermiteMultiples() bool {
	switch t {
	case TipoCuotaInicial:
		return true
	case TipoCreditoHipotecario, TipoSubsidioMiCasaYa, TipoSubsidioCaja:
		return false
	}
	return false
}

// RequiereEntidad indica si la fuente exige nombre de entidad emisora
// (banco o caja de compensación).
func (t TipoFuente) RequiereEntidad() bool {
	switch t {
	case TipoCreditoHipotecario, TipoSubsidioCaja:
		return true
	case TipoCuotaInicial, TipoSubsidioMiCasaYa:
		return false
	}
	return false
}

// RequiereCartaAprobacion indica si la fuente exige carta de aprobación
// antes de contar para el cierre financiero.
func (t TipoFuente) RequiereCartaAprobacion() bool {
	switch t {
	case TipoCreditoHipotecario, TipoSubsidioCaja:
		return true
	case TipoCuotaInicial, TipoSubsidioMiCasaYa:
		return false
	}
	return false
}

// EsAbonable indica si la fuente recibe abonos parciales (solo cuota inicial).
func (t TipoFuente) EsAbonable() bool { return t == TipoCuotaInicial }

// FuentePago una fuente de pago de la negociación: canal que aporta al valor
// total (cuota inicial, crédito, subsidios). MontoRecibido crece solo vía
// registro de abonos y nunca supera MontoAprobado.
type FuentePago struct {
	ID                 string          // vacío hasta persistir
	NegociacionID      string
	Tipo               TipoFuente
	MontoAprobado      decimal.Decimal // > 0 para ser válida
	MontoRecibido      decimal.Decimal // monótono no decreciente
	Entidad            string          // banco / caja, si el tipo la exige
	NumeroReferencia   string
	CartaAprobacionURL string
	CartaAsignacionURL string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SaldoPendiente monto aprobado menos recibido. Invariante: >= 0.
func (f *FuentePago) SaldoPendiente() decimal.Decimal {
	return f.MontoAprobado.Sub(f.MontoRecibido)
}

// PorcentajeAvance porcentaje recibido sobre aprobado (0 si aprobado es cero).
func (f *FuentePago) PorcentajeAvance() decimal.Decimal {
	return money.Porcentaje(f.MontoRecibido, f.MontoAprobado)
}

// EstaPagada indica si ya se recibió el total aprobado.
func (f *FuentePago) EstaPagada() bool {
	return f.SaldoPendiente().IsZero() && !f.MontoAprobado.IsZero()
}
