package dto

// CrearClienteRequest intake de un cliente en la sala de ventas.
type CrearClienteRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	TipoDocumento   string `json:"tipo_documento" validate:"required,oneof=CC CE NIT PASAPORTE"`
	NumeroDocumento string `json:"numero_documento" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Telefono        string `json:"telefono,omitempty"`
}

// ClienteResponse cliente registrado.
type ClienteResponse struct {
	ID              string `json:"id"`
	ProyectoID      string `json:"proyecto_id"`
	Nombre          string `json:"nombre"`
	TipoDocumento   string `json:"tipo_documento"`
	NumeroDocumento string `json:"numero_documento"`
	Email           string `json:"email,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
}
