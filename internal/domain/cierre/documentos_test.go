package cierre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain/cierre"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

func TestDocumentosCompletos_CuotaInicialNoExigeCarta(t *testing.T) {
	f := fuente(entity.TipoCuotaInicial, 30_000_000)
	assert.True(t, cierre.DocumentosCompletos(f),
		"la cuota inicial no requiere carta de aprobación")
}

func TestDocumentosCompletos_CreditoSinCartaFalla(t *testing.T) {
	f := fuente(entity.TipoCreditoHipotecario, 70_000_000)
	assert.False(t, cierre.DocumentosCompletos(f))

	f.CartaAprobacionURL = "https://docs.example.com/carta-aprobacion.pdf"
	assert.True(t, cierre.DocumentosCompletos(f))
}

func TestDocumentosCompletos_URLSoloEspaciosNoCuenta(t *testing.T) {
	f := fuente(entity.TipoSubsidioCaja, 10_000_000)
	f.CartaAprobacionURL = "   "
	assert.False(t, cierre.DocumentosCompletos(f))
}

// Propiedad de idempotencia: el predicado no muta la fuente.
func TestDocumentosCompletos_Idempotente(t *testing.T) {
	f := fuente(entity.TipoCreditoHipotecario, 70_000_000)
	primera := cierre.DocumentosCompletos(f)
	segunda := cierre.DocumentosCompletos(f)
	assert.Equal(t, primera, segunda,
		"dos llamadas sobre la misma fuente sin mutar deben dar lo mismo")
}

func TestValidarDocumentos_ReportaCartaYEntidad(t *testing.T) {
	credito := fuente(entity.TipoCreditoHipotecario, 70_000_000) // sin carta ni entidad
	cuota := fuente(entity.TipoCuotaInicial, 30_000_000)

	fallas := cierre.ValidarDocumentos([]*entity.FuentePago{cuota, credito})

	assert.Len(t, fallas, 2, "el crédito debe reportar carta y entidad faltantes")
	motivos := []string{fallas[0].Motivo, fallas[1].Motivo}
	assert.Contains(t, motivos, cierre.FallaCartaAprobacion)
	assert.Contains(t, motivos, cierre.FallaEntidad)
	for _, fa := range fallas {
		assert.Same(t, credito, fa.Fuente, "todas las fallas deben señalar al crédito")
	}
}

func TestValidarDocumentos_SinFallas(t *testing.T) {
	credito := fuente(entity.TipoCreditoHipotecario, 70_000_000)
	credito.Entidad = "Davivienda"
	credito.CartaAprobacionURL = "https://docs.example.com/carta.pdf"

	fallas := cierre.ValidarDocumentos([]*entity.FuentePago{credito})
	assert.Empty(t, fallas)
}
