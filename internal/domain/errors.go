package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Cierre financiero y abonos.
	ErrFuenteDuplicada      = errors.New("ya existe una fuente de pago de ese tipo en la negociación")
	ErrEliminacionBloqueada = errors.New("la fuente tiene abonos registrados y no puede eliminarse")
	ErrFuentePagada         = errors.New("la fuente de pago ya está completamente pagada")
	ErrSobrepago            = errors.New("el abono excede el saldo pendiente de la fuente")
	ErrNegociacionBloqueada = errors.New("la negociación está cerrada y no admite cambios")
	ErrCierreIncompleto     = errors.New("el cierre financiero no está completo")

	// Versionado de documentos.
	ErrMotivoRequerido = errors.New("se requiere un motivo de al menos 10 caracteres")
	ErrVersionNoActual = errors.New("la versión no es la versión actual del documento")
)

// CierreIncompletoError detalla por qué falló la activación de una negociación:
// diferencia de montos, documento faltante o fuente sin monto aprobado.
// Nunca se devuelve un fallo genérico; el caller recibe la causa concreta.
type CierreIncompletoError struct {
	Motivo     string          // descripción legible de la falla
	FuenteID   string          // fuente afectada, si aplica
	Diferencia decimal.Decimal // valorTotal - totalConfigurado; cero si la falla es documental
}

func (e *CierreIncompletoError) Error() string {
	if e.FuenteID != "" {
		return fmt.Sprintf("cierre incompleto: %s (fuente %s)", e.Motivo, e.FuenteID)
	}
	return "cierre incompleto: " + e.Motivo
}

// Unwrap permite errors.Is(err, ErrCierreIncompleto).
func (e *CierreIncompletoError) Unwrap() error { return ErrCierreIncompleto }
