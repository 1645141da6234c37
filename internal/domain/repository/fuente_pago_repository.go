package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// FuentePagoRepository puerto de persistencia para FuentePago.
type FuentePagoRepository interface {
	Create(f *entity.FuentePago) error
	GetByID(id string) (*entity.FuentePago, error)
	// GetForUpdate bloquea la fila de la fuente (SELECT FOR UPDATE). El
	// invariante monto_recibido <= monto_aprobado depende de que el
	// read-then-write del registro de abonos sea atómico por fuente.
	GetForUpdate(id string) (*entity.FuentePago, error)
	ListByNegociacion(negociacionID string) ([]*entity.FuentePago, error)
	Update(f *entity.FuentePago) error
	Delete(id string) error
}
