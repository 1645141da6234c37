package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// ProyectoRepository puerto de persistencia para Proyecto.
type ProyectoRepository interface {
	Create(p *entity.Proyecto) error
	GetByID(id string) (*entity.Proyecto, error)
	GetBySlug(slug string) (*entity.Proyecto, error)
	List(limit, offset int) ([]*entity.Proyecto, error)
}

// ViviendaRepository puerto de persistencia para Vivienda.
type ViviendaRepository interface {
	Create(v *entity.Vivienda) error
	GetByID(id string) (*entity.Vivienda, error)
	// GetForUpdate bloquea la fila para cambiar el estado de inventario
	// (reservar/liberar/vender) sin carreras entre negociaciones.
	GetForUpdate(id string) (*entity.Vivienda, error)
	ListByProyecto(proyectoID string, estado string, limit, offset int) ([]*entity.Vivienda, error)
	Update(v *entity.Vivienda) error
}
