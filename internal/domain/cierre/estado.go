package cierre

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// transiciones permitidas de la máquina de estados de la negociación.
// La activación además está condicionada por VerificarActivacion.
var transiciones = map[string][]string{
	entity.EstadoConfiguracion:    {entity.EstadoCierreFinanciero},
	entity.EstadoCierreFinanciero: {entity.EstadoActiva, entity.EstadoRenuncia},
	entity.EstadoActiva:           {entity.EstadoSuspendida, entity.EstadoCompletada, entity.EstadoRenuncia},
	entity.EstadoSuspendida:       {entity.EstadoActiva, entity.EstadoRenuncia},
	entity.EstadoCompletada:       {},
	entity.EstadoRenuncia:         {},
}

// PuedeTransicionar indica si el cambio de estado está permitido.
func PuedeTransicionar(desde, hacia string) bool {
	for _, h := range transiciones[desde] {
		if h == hacia {
			return true
		}
	}
	return false
}

// Transicionar valida y aplica el cambio de estado sobre la negociación.
// Devuelve ErrConflict si la transición no está permitida.
func Transicionar(n *entity.Negociacion, hacia string) error {
	if !PuedeTransicionar(n.Estado, hacia) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrConflict, n.Estado, hacia)
	}
	n.Estado = hacia
	return nil
}

// VerificarActivacion comprueba las tres compuertas de la activación:
//
//  1. la suma de montos aprobados es exacta contra el valor total;
//  2. ninguna fuente tiene fallas documentales;
//  3. toda fuente tiene monto aprobado > 0.
//
// En caso de falla devuelve *domain.CierreIncompletoError con la causa
// concreta (monto faltante o documento faltante), nunca un fallo genérico.
func VerificarActivacion(fuentes []*entity.FuentePago, valorTotal decimal.Decimal) error {
	if len(fuentes) == 0 {
		return &domain.CierreIncompletoError{
			Motivo:     "la negociación no tiene fuentes de pago configuradas",
			Diferencia: valorTotal,
		}
	}
	for _, f := range fuentes {
		if !f.MontoAprobado.GreaterThan(decimal.Zero) {
			return &domain.CierreIncompletoError{
				Motivo:   fmt.Sprintf("la fuente %q no tiene monto aprobado", f.Tipo),
				FuenteID: f.ID,
			}
		}
	}
	if fallas := ValidarDocumentos(fuentes); len(fallas) > 0 {
		fa := fallas[0]
		return &domain.CierreIncompletoError{
			Motivo:   fmt.Sprintf("%s en la fuente %q", fa.Motivo, fa.Fuente.Tipo),
			FuenteID: fa.Fuente.ID,
		}
	}
	st := CalcularEstado(fuentes, valorTotal)
	if !st.EsExacto {
		motivo := fmt.Sprintf("faltan %s por configurar", st.Diferencia.StringFixed(0))
		if st.Diferencia.IsNegative() {
			motivo = fmt.Sprintf("las fuentes exceden el valor total en %s", st.Diferencia.Neg().StringFixed(0))
		}
		return &domain.CierreIncompletoError{Motivo: motivo, Diferencia: st.Diferencia}
	}
	return nil
}
