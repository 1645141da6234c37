package cierre

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/money"
)

// toleranciaCierre margen para considerar exacto el cierre: absorbe redondeos
// de cálculos aguas arriba (menos de un peso), no faltantes reales.
var toleranciaCierre = decimal.NewFromInt(1)

// EstadoCierre resultado del cálculo de cobertura de una negociación.
type EstadoCierre struct {
	TotalConfigurado   decimal.Decimal // suma de montos aprobados
	PorcentajeCubierto decimal.Decimal // sobre el valor total (0-100)
	Diferencia         decimal.Decimal // valorTotal - totalConfigurado: >0 faltante, <0 excedente
	EsExacto           bool            // |Diferencia| < 1 peso
}

// CalcularEstado agrega los montos aprobados y los compara contra el valor
// total de la negociación. Independiente del orden de las fuentes.
func CalcularEstado(fuentes []*entity.FuentePago, valorTotal decimal.Decimal) EstadoCierre {
	total := decimal.Zero
	for _, f := range fuentes {
		total = total.Add(f.MontoAprobado)
	}
	dif := valorTotal.Sub(total)
	return EstadoCierre{
		TotalConfigurado:   total,
		PorcentajeCubierto: money.Porcentaje(total, valorTotal),
		Diferencia:         dif,
		EsExacto:           dif.Abs().LessThan(toleranciaCierre),
	}
}
