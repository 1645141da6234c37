package entity

import "time"

// Roles de usuario de la sala de ventas.
const (
	RoleAdmin    = "admin"
	RoleDirector = "director" // director comercial: aprueba activaciones y renuncias
	RoleAsesor   = "asesor"   // asesor de ventas
)

// User usuario interno de la aplicación.
type User struct {
	ID           string
	ProyectoID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
