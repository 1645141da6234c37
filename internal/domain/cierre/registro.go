// Package cierre implementa las reglas del cierre financiero: el conjunto de
// fuentes de pago de una negociación, la completitud documental, el cálculo
// de cobertura contra el valor total y la máquina de estados que permite la
// activación solo con cierre exacto.
package cierre

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

// RegistroFuentes conjunto de trabajo de fuentes de pago de UNA negociación
// durante la configuración. Hace cumplir la cardinalidad por tipo; la
// persistencia y los borrados remotos son responsabilidad del caller.
type RegistroFuentes struct {
	negociacionID string
	fuentes       []*entity.FuentePago
}

// NewRegistroFuentes construye el registro con las fuentes ya persistidas.
func NewRegistroFuentes(negociacionID string, existentes []*entity.FuentePago) *RegistroFuentes {
	r := &RegistroFuentes{negociacionID: negociacionID}
	r.fuentes = append(r.fuentes, existentes...)
	return r
}

// Fuentes devuelve el conjunto actual (no copiar: el registro es el dueño
// del slice durante la configuración).
func (r *RegistroFuentes) Fuentes() []*entity.FuentePago { return r.fuentes }

// Agregar añade una fuente nueva en cero del tipo dado. Devuelve
// ErrFuenteDuplicada si el tipo no permite múltiples y ya existe una.
func (r *RegistroFuentes) Agregar(tipo entity.TipoFuente) (*entity.FuentePago, error) {
	if !tipo.PermiteMultiples() {
		for _, f := range r.fuentes {
			if f.Tipo == tipo {
				return nil, domain.ErrFuenteDuplicada
			}
		}
	}
	f := &entity.FuentePago{
		NegociacionID: r.negociacionID,
		Tipo:          tipo,
		MontoAprobado: decimal.Zero,
		MontoRecibido: decimal.Zero,
	}
	r.fuentes = append(r.fuentes, f)
	return f, nil
}

// Eliminar quita la fuente en el índice dado. Precondición: la fuente no
// tiene abonos (MontoRecibido cero); si los tiene devuelve
// ErrEliminacionBloqueada. Si la fuente está persistida, el delete remoto
// debe haberse confirmado antes de llamar aquí.
func (r *RegistroFuentes) Eliminar(indice int) error {
	if indice < 0 || indice >= len(r.fuentes) {
		return domain.ErrInvalidInput
	}
	if !r.fuentes[indice].MontoRecibido.IsZero() {
		return domain.ErrEliminacionBloqueada
	}
	r.fuentes = append(r.fuentes[:indice], r.fuentes[indice+1:]...)
	return nil
}

// Campos editables de la copia de trabajo.
const (
	CampoMontoAprobado    = "monto_aprobado"
	CampoEntidad          = "entidad"
	CampoNumeroReferencia = "numero_referencia"
)

// ActualizarCampo muta la copia de trabajo. Los campos numéricos con entrada
// no numérica se ignoran en silencio conservando el valor anterior (política
// explícita para no propagar NaN desde formularios); no hay más validación
// aquí, esa ocurre al guardar.
func (r *RegistroFuentes) ActualizarCampo(indice int, campo, valor string) error {
	if indice < 0 || indice >= len(r.fuentes) {
		return domain.ErrInvalidInput
	}
	f := r.fuentes[indice]
	switch campo {
	case CampoMontoAprobado:
		d, err := decimal.NewFromString(strings.TrimSpace(valor))
		if err != nil {
			return nil // entrada no numérica: se conserva el valor anterior
		}
		f.MontoAprobado = d.Round(0)
	case CampoEntidad:
		f.Entidad = valor
	case CampoNumeroReferencia:
		f.NumeroReferencia = valor
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// ValidarParaGuardar reglas mínimas de guardado: monto aprobado > 0 y
// entidad presente cuando el tipo la exige. Devuelve ErrInvalidInput en la
// primera falla.
func (r *RegistroFuentes) ValidarParaGuardar() error {
	for _, f := range r.fuentes {
		if !f.MontoAprobado.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		if f.Tipo.RequiereEntidad() && strings.TrimSpace(f.Entidad) == "" {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
