package cierre_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

func fuente(tipo entity.TipoFuente, aprobado int64) *entity.FuentePago {
	return &entity.FuentePago{
		ID:            "f-" + tipo.String(),
		NegociacionID: testNegociacionID,
		Tipo:          tipo,
		MontoAprobado: decimal.NewFromInt(aprobado),
		MontoRecibido: decimal.Zero,
	}
}

// Escenario A: cuota inicial 30M + crédito 70M contra 100M -> exacto.
func TestCalcularEstado_CierreExacto(t *testing.T) {
	fuentes := []*entity.FuentePago{
		fuente(entity.TipoCuotaInicial, 30_000_000),
		fuente(entity.TipoCreditoHipotecario, 70_000_000),
	}
	st := cierre.CalcularEstado(fuentes, decimal.NewFromInt(100_000_000))

	assert.True(t, st.TotalConfigurado.Equal(decimal.NewFromInt(100_000_000)))
	assert.True(t, st.Diferencia.IsZero())
	assert.True(t, st.EsExacto)
	assert.True(t, st.PorcentajeCubierto.Equal(decimal.NewFromInt(100)))
}

func TestCalcularEstado_Faltante(t *testing.T) {
	fuentes := []*entity.FuentePago{fuente(entity.TipoCuotaInicial, 30_000_000)}
	st := cierre.CalcularEstado(fuentes, decimal.NewFromInt(100_000_000))

	assert.True(t, st.Diferencia.Equal(decimal.NewFromInt(70_000_000)),
		"diferencia positiva = faltante")
	assert.False(t, st.EsExacto)
	assert.True(t, st.PorcentajeCubierto.Equal(decimal.NewFromInt(30)))
}

func TestCalcularEstado_Excedente(t *testing.T) {
	fuentes := []*entity.FuentePago{
		fuente(entity.TipoCuotaInicial, 50_000_000),
		fuente(entity.TipoCreditoHipotecario, 70_000_000),
	}
	st := cierre.CalcularEstado(fuentes, decimal.NewFromInt(100_000_000))

	assert.True(t, st.Diferencia.Equal(decimal.NewFromInt(-20_000_000)),
		"diferencia negativa = excedente")
	assert.False(t, st.EsExacto)
}

// La tolerancia de un peso absorbe redondeos aguas arriba, no faltantes reales.
func TestCalcularEstado_ToleranciaDeUnPeso(t *testing.T) {
	casos := []struct {
		nombre      string
		configurado int64
		exacto      bool
	}{
		{"diferencia cero", 100_000_000, true},
		{"un peso exacto de faltante queda fuera", 99_999_999, false},
		{"un peso exacto de excedente queda fuera", 100_000_001, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			fuentes := []*entity.FuentePago{fuente(entity.TipoCuotaInicial, c.configurado)}
			st := cierre.CalcularEstado(fuentes, decimal.NewFromInt(100_000_000))
			assert.Equal(t, c.exacto, st.EsExacto, "|diferencia| < 1 define la exactitud")
		})
	}
}

// Propiedad: el total configurado es la suma de aprobados, sin importar el orden.
func TestCalcularEstado_IndependienteDelOrden(t *testing.T) {
	a := fuente(entity.TipoCuotaInicial, 10_000_000)
	b := fuente(entity.TipoCreditoHipotecario, 60_000_000)
	c := fuente(entity.TipoSubsidioMiCasaYa, 30_000_000)

	st1 := cierre.CalcularEstado([]*entity.FuentePago{a, b, c}, decimal.NewFromInt(100_000_000))
	st2 := cierre.CalcularEstado([]*entity.FuentePago{c, a, b}, decimal.NewFromInt(100_000_000))

	assert.True(t, st1.TotalConfigurado.Equal(st2.TotalConfigurado))
	assert.Equal(t, st1.EsExacto, st2.EsExacto)
}

func TestCalcularEstado_SinFuentes(t *testing.T) {
	st := cierre.CalcularEstado(nil, decimal.NewFromInt(100_000_000))
	assert.True(t, st.TotalConfigurado.IsZero())
	assert.True(t, st.PorcentajeCubierto.IsZero())
	assert.False(t, st.EsExacto)
}

func TestCalcularEstado_ValorTotalCero(t *testing.T) {
	// Política de Porcentaje: total cero -> 0, sin división por cero.
	st := cierre.CalcularEstado(nil, decimal.Zero)
	assert.True(t, st.PorcentajeCubierto.IsZero())
	assert.True(t, st.EsExacto, "cero configurado contra cero total es exacto")
}
