package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Money representa un monto en pesos colombianos (COP). En Colombia no se
// usan centavos, así que todo monto almacenado se redondea al peso entero
// (mitades alejándose de cero, la política de Round de shopspring/decimal).
// Los montos almacenados nunca son negativos; las diferencias derivadas
// (faltante/excedente) se manejan como decimal.Decimal sin esa restricción.
type Money struct {
	d decimal.Decimal
}

var ErrMontoNegativo = errors.New("money: el monto no puede ser negativo")

// Zero monto cero.
func Zero() Money { return Money{} }

// NewFromDecimal construye un Money redondeado al peso. Error si es negativo.
func NewFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrMontoNegativo
	}
	return Money{d: d.Round(0)}, nil
}

// NewFromInt construye un Money desde pesos enteros. Los valores negativos
// se rechazan vía NewFromDecimal; este helper es para literales de test y
// montos ya validados.
func NewFromInt(pesos int64) Money {
	if pesos < 0 {
		return Money{}
	}
	return Money{d: decimal.NewFromInt(pesos)}
}

// Decimal devuelve el valor subyacente.
func (m Money) Decimal() decimal.Decimal { return m.d }

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool { return m.d.IsZero() }

// Add suma dos montos (redondeado al peso para evitar deriva en sumas repetidas).
func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d).Round(0)}
}

// Sub devuelve la diferencia m - o como decimal: puede ser negativa
// (excedente) o positiva (faltante). No es un Money porque los montos
// almacenados son siempre no negativos.
func (m Money) Sub(o Money) decimal.Decimal {
	return m.d.Sub(o.d).Round(0)
}

// Cmp compara: -1 si m < o, 0 si iguales, 1 si m > o.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

// Porcentaje devuelve qué porcentaje de total representa parte (0-100, dos
// decimales). Si total es cero devuelve cero: política documentada para
// evitar división por cero, no un error.
func Porcentaje(parte, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return parte.Mul(decimal.NewFromInt(100)).Div(total).Round(2)
}

// RedondearPeso redondea un decimal al peso entero, mitades alejándose de cero.
func RedondearPeso(d decimal.Decimal) decimal.Decimal { return d.Round(0) }
