package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByProyectoYDocumento(proyectoID, numeroDocumento string) (*entity.Cliente, error)
	ListByProyecto(proyectoID string, limit, offset int) ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
}
