package cierre_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

func TestPuedeTransicionar(t *testing.T) {
	casos := []struct {
		desde, hacia string
		ok           bool
	}{
		{entity.EstadoConfiguracion, entity.EstadoCierreFinanciero, true},
		{entity.EstadoCierreFinanciero, entity.EstadoActiva, true},
		{entity.EstadoActiva, entity.EstadoSuspendida, true},
		{entity.EstadoActiva, entity.EstadoCompletada, true},
		{entity.EstadoActiva, entity.EstadoRenuncia, true},
		{entity.EstadoSuspendida, entity.EstadoActiva, true},
		{entity.EstadoConfiguracion, entity.EstadoActiva, false}, // no se salta el cierre
		{entity.EstadoCompletada, entity.EstadoActiva, false},    // terminal
		{entity.EstadoRenuncia, entity.EstadoActiva, false},      // terminal
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, cierre.PuedeTransicionar(c.desde, c.hacia),
			"%s -> %s", c.desde, c.hacia)
	}
}

func TestTransicionar_InvalidaDevuelveConflict(t *testing.T) {
	n := &entity.Negociacion{Estado: entity.EstadoConfiguracion}
	err := cierre.Transicionar(n, entity.EstadoActiva)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.EstadoConfiguracion, n.Estado, "el estado no debe cambiar si la transición falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// VerificarActivacion: las tres compuertas de la activación
// ──────────────────────────────────────────────────────────────────────────────

func fuentesEscenarioA() []*entity.FuentePago {
	credito := fuente(entity.TipoCreditoHipotecario, 70_000_000)
	credito.Entidad = "Bancolombia"
	credito.CartaAprobacionURL = "https://docs.example.com/carta-aprobacion.pdf"
	return []*entity.FuentePago{
		fuente(entity.TipoCuotaInicial, 30_000_000),
		credito,
	}
}

// Escenario A: cierre exacto con documentos completos -> activa.
func TestVerificarActivacion_Exito(t *testing.T) {
	err := cierre.VerificarActivacion(fuentesEscenarioA(), decimal.NewFromInt(100_000_000))
	assert.NoError(t, err)
}

// Escenario B: mismo conjunto pero el crédito sin carta de aprobación.
func TestVerificarActivacion_CartaFaltante(t *testing.T) {
	fuentes := fuentesEscenarioA()
	fuentes[1].CartaAprobacionURL = ""

	err := cierre.VerificarActivacion(fuentes, decimal.NewFromInt(100_000_000))
	require.ErrorIs(t, err, domain.ErrCierreIncompleto)

	var ci *domain.CierreIncompletoError
	require.True(t, errors.As(err, &ci), "el error debe ser CierreIncompletoError con payload")
	assert.Contains(t, ci.Motivo, cierre.FallaCartaAprobacion,
		"el payload debe referenciar el documento faltante")
	assert.Equal(t, fuentes[1].ID, ci.FuenteID)
}

func TestVerificarActivacion_FaltanteDeMontos(t *testing.T) {
	fuentes := []*entity.FuentePago{fuente(entity.TipoCuotaInicial, 30_000_000)}

	err := cierre.VerificarActivacion(fuentes, decimal.NewFromInt(100_000_000))
	require.ErrorIs(t, err, domain.ErrCierreIncompleto)

	var ci *domain.CierreIncompletoError
	require.True(t, errors.As(err, &ci))
	assert.True(t, ci.Diferencia.Equal(decimal.NewFromInt(70_000_000)),
		"el payload debe traer el monto faltante exacto")
}

func TestVerificarActivacion_Excedente(t *testing.T) {
	fuentes := fuentesEscenarioA()
	fuentes[0].MontoAprobado = decimal.NewFromInt(50_000_000) // ahora suma 120M

	err := cierre.VerificarActivacion(fuentes, decimal.NewFromInt(100_000_000))
	require.ErrorIs(t, err, domain.ErrCierreIncompleto)

	var ci *domain.CierreIncompletoError
	require.True(t, errors.As(err, &ci))
	assert.True(t, ci.Diferencia.IsNegative(), "el excedente llega como diferencia negativa")
}

func TestVerificarActivacion_FuenteEnCero(t *testing.T) {
	fuentes := fuentesEscenarioA()
	fuentes[0].MontoAprobado = decimal.Zero

	err := cierre.VerificarActivacion(fuentes, decimal.NewFromInt(100_000_000))
	require.ErrorIs(t, err, domain.ErrCierreIncompleto)

	var ci *domain.CierreIncompletoError
	require.True(t, errors.As(err, &ci))
	assert.Equal(t, fuentes[0].ID, ci.FuenteID,
		"la fuente sin monto aprobado debe venir identificada")
}

func TestVerificarActivacion_SinFuentes(t *testing.T) {
	err := cierre.VerificarActivacion(nil, decimal.NewFromInt(100_000_000))
	assert.ErrorIs(t, err, domain.ErrCierreIncompleto)
}

// Propiedad §8: activar exige exactitud Y documentos completos Y aprobado > 0.
// Si las tres compuertas pasan, VerificarActivacion no puede fallar.
func TestVerificarActivacion_SiYSoloSi(t *testing.T) {
	fuentes := fuentesEscenarioA()
	valor := decimal.NewFromInt(100_000_000)

	require.True(t, cierre.CalcularEstado(fuentes, valor).EsExacto)
	require.Empty(t, cierre.ValidarDocumentos(fuentes))
	for _, f := range fuentes {
		require.True(t, f.MontoAprobado.GreaterThan(decimal.Zero))
	}
	assert.NoError(t, cierre.VerificarActivacion(fuentes, valor))
}
