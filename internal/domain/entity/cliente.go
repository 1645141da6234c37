package entity

import "time"

// Cliente prospecto o comprador registrado en la sala de ventas.
type Cliente struct {
	ID              string
	ProyectoID      string
	Nombre          string
	TipoDocumento   string // CC, CE, NIT, PASAPORTE
	NumeroDocumento string
	Email           string
	Telefono        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
