package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// NegociacionRepository puerto de persistencia para Negociacion.
type NegociacionRepository interface {
	Create(n *entity.Negociacion) error
	GetByID(id string) (*entity.Negociacion, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// transiciones de estado dentro de una transacción.
	GetForUpdate(id string) (*entity.Negociacion, error)
	ListByProyecto(proyectoID string, limit, offset int) ([]*entity.Negociacion, error)
	Update(n *entity.Negociacion) error
}
