package cierre_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

const testNegociacionID = "00000000-0000-0000-0000-0000000000aa"

// Escenario E: un subsidio no puede repetirse, la cuota inicial sí.
func TestAgregar_SubsidioDuplicadoFalla(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)

	_, err := r.Agregar(entity.TipoSubsidioMiCasaYa)
	require.NoError(t, err, "la primera fuente de un tipo siempre debe poder agregarse")

	_, err = r.Agregar(entity.TipoSubsidioMiCasaYa)
	assert.ErrorIs(t, err, domain.ErrFuenteDuplicada,
		"el segundo Subsidio Mi Casa Ya debe fallar con fuente duplicada")
}

func TestAgregar_CuotaInicialPermiteMultiples(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)

	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)
	_, err = r.Agregar(entity.TipoCuotaInicial)
	assert.NoError(t, err, "la cuota inicial admite varias instancias por negociación")
	assert.Len(t, r.Fuentes(), 2)
}

func TestAgregar_FuenteNuevaNaceEnCero(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	f, err := r.Agregar(entity.TipoCreditoHipotecario)
	require.NoError(t, err)
	assert.True(t, f.MontoAprobado.IsZero())
	assert.True(t, f.MontoRecibido.IsZero())
	assert.Equal(t, testNegociacionID, f.NegociacionID)
}

func TestEliminar_BloqueadaConAbonos(t *testing.T) {
	conAbonos := &entity.FuentePago{
		ID:            "f1",
		NegociacionID: testNegociacionID,
		Tipo:          entity.TipoCuotaInicial,
		MontoAprobado: decimal.NewFromInt(30_000_000),
		MontoRecibido: decimal.NewFromInt(5_000_000),
	}
	r := cierre.NewRegistroFuentes(testNegociacionID, []*entity.FuentePago{conAbonos})

	err := r.Eliminar(0)
	assert.ErrorIs(t, err, domain.ErrEliminacionBloqueada,
		"una fuente con abonos registrados no puede eliminarse")
	assert.Len(t, r.Fuentes(), 1, "la fuente debe seguir en el conjunto")
}

func TestEliminar_SinAbonosOk(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)

	require.NoError(t, r.Eliminar(0))
	assert.Empty(t, r.Fuentes())
}

func TestEliminar_IndiceFueraDeRango(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	assert.ErrorIs(t, r.Eliminar(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Eliminar(-1), domain.ErrInvalidInput)
}

// Entrada no numérica en monto_aprobado se ignora en silencio conservando
// el valor anterior (política para no propagar NaN desde formularios).
func TestActualizarCampo_MontoNoNumericoSeIgnora(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)
	require.NoError(t, r.ActualizarCampo(0, cierre.CampoMontoAprobado, "30000000"))

	require.NoError(t, r.ActualizarCampo(0, cierre.CampoMontoAprobado, "treinta millones"))
	assert.True(t, r.Fuentes()[0].MontoAprobado.Equal(decimal.NewFromInt(30_000_000)),
		"entrada no numérica debe conservar el monto anterior, no ponerlo en cero")
}

func TestActualizarCampo_MontoConDecimalesSeRedondea(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)

	require.NoError(t, r.ActualizarCampo(0, cierre.CampoMontoAprobado, "30000000.50"))
	assert.True(t, r.Fuentes()[0].MontoAprobado.Equal(decimal.NewFromInt(30_000_001)),
		"los montos se almacenan en pesos enteros (mitades alejándose de cero)")
}

func TestActualizarCampo_CampoDesconocido(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)
	assert.ErrorIs(t, r.ActualizarCampo(0, "saldo_pendiente", "1"), domain.ErrInvalidInput,
		"los campos computados no son editables")
}

func TestValidarParaGuardar_MontoCeroFalla(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCuotaInicial)
	require.NoError(t, err)
	assert.ErrorIs(t, r.ValidarParaGuardar(), domain.ErrInvalidInput,
		"monto aprobado en cero no es guardable")
}

func TestValidarParaGuardar_EntidadRequerida(t *testing.T) {
	r := cierre.NewRegistroFuentes(testNegociacionID, nil)
	_, err := r.Agregar(entity.TipoCreditoHipotecario)
	require.NoError(t, err)
	require.NoError(t, r.ActualizarCampo(0, cierre.CampoMontoAprobado, "70000000"))

	assert.ErrorIs(t, r.ValidarParaGuardar(), domain.ErrInvalidInput,
		"el crédito hipotecario exige entidad emisora")

	require.NoError(t, r.ActualizarCampo(0, cierre.CampoEntidad, "Bancolombia"))
	assert.NoError(t, r.ValidarParaGuardar())
}
