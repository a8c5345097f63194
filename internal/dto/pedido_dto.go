package dto

import (
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

// ItemPedidoRequest is one requested order line. "quantity" is accepted as an
// alias for "cantidad".
type ItemPedidoRequest struct {
	ProductID string           `json:"productId"`
	Cantidad  *decimal.Decimal `json:"cantidad"`
	Quantity  *decimal.Decimal `json:"quantity"`
}

// CantidadEfectiva resolves the requested quantity from either field.
func (i ItemPedidoRequest) CantidadEfectiva() (decimal.Decimal, bool) {
	if i.Cantidad != nil {
		return *i.Cantidad, true
	}
	if i.Quantity != nil {
		return *i.Quantity, true
	}
	return decimal.Zero, false
}

type CrearPedidoRequest struct {
	ClienteID string              `json:"clienteId" validate:"required"`
	Items     []ItemPedidoRequest `json:"items"     validate:"required,min=1"`
}

// ActualizarPedidoRequest carries a partial order update; a nil Items slice
// means "leave the lines alone".
type ActualizarPedidoRequest struct {
	ClienteID *string             `json:"clienteId"`
	Items     []ItemPedidoRequest `json:"items"`
}

type PedidoCreadoResponse struct {
	Order       model.Pedido `json:"order"`
	OrdersTotal int          `json:"ordersTotal"`
}

// SeleccionLineas targets an order; an empty LineIDs list means every pending
// line in that order.
type SeleccionLineas struct {
	OrderID string   `json:"orderId" validate:"required"`
	LineIDs []string `json:"lineIds"`
}

type EntregaRequest struct {
	Deliveries []SeleccionLineas `json:"deliveries" validate:"required,min=1,dive"`
}

// LineaEntregada is one settled line in a delivery batch.
type LineaEntregada struct {
	OrderID     string          `json:"orderId"`
	LineID      string          `json:"lineId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ClientID    string          `json:"clientId"`
}

type EntregaResponse struct {
	DeliveredItems []LineaEntregada `json:"deliveredItems"`
	TotalAmount    decimal.Decimal  `json:"totalAmount"`
	UpdatedOrders  []string         `json:"updatedOrders"`
}

type CancelarPedidosRequest struct {
	OrderIDs []string `json:"orderIds" validate:"required,min=1"`
}

type PedidosCanceladosResponse struct {
	Removed     []string `json:"removed"`
	OrdersTotal int      `json:"ordersTotal"`
}
