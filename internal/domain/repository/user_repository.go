package repository

import "github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndProyecto(email, proyectoID string) (*entity.User, error)
	Update(u *entity.User) error
}
