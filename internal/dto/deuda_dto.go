package dto

import "github.com/AlonsoDiaz/web-inventario/internal/model"

// CrearDeudaRequest converts pending order lines into a debt. Selections take
// precedence; OrderIDs is the legacy whole-order form.
type CrearDeudaRequest struct {
	ClientID   string            `json:"clientId" validate:"required"`
	Selections []SeleccionLineas `json:"selections" validate:"omitempty,dive"`
	OrderIDs   []string          `json:"orderIds"`
	Note       string            `json:"note"`
}

type DeudaCreadaResponse struct {
	Debt model.Deuda `json:"debt"`
}

// DeudaConCliente embeds the owning client for the listing view.
type DeudaConCliente struct {
	model.Deuda
	Client *model.Cliente `json:"client"`
}

type ListaDeudasResponse struct {
	Debts       []DeudaConCliente `json:"debts"`
	GeneratedAt string            `json:"generatedAt"`
}

type PagarDeudaRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type DeudaPagadaResponse struct {
	Debt  model.Deuda      `json:"debt"`
	Entry model.Movimiento `json:"entry"`
}
