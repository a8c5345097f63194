package dto

import "github.com/AlonsoDiaz/web-inventario/internal/model"

type CrearClienteRequest struct {
	NombreCompleto string `json:"nombreCompleto" validate:"required"`
	Telefono       string `json:"telefono"       validate:"required"`
	Direccion      string `json:"direccion"      validate:"required"`
	Comuna         string `json:"comuna"         validate:"required"`
	DiaReparto     string `json:"diaReparto"`
	Region         string `json:"region"`
}

// ActualizarClienteRequest accepts partial updates. "nombre" is a legacy
// alias for nombreCompleto still sent by older UI builds.
type ActualizarClienteRequest struct {
	NombreCompleto *string `json:"nombreCompleto"`
	Nombre         *string `json:"nombre"`
	Telefono       *string `json:"telefono"`
	Direccion      *string `json:"direccion"`
	Comuna         *string `json:"comuna"`
	DiaReparto     *string `json:"diaReparto"`
	Region         *string `json:"region"`
}

type ClienteCreadoResponse struct {
	Client       model.Cliente `json:"client"`
	ClientsTotal int           `json:"clientsTotal"`
}

type ClienteEliminadoResponse struct {
	ClientID      string   `json:"clientId"`
	RemovedOrders []string `json:"removedOrders"`
}
