package dto

import (
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

type Metricas struct {
	ProductosActivos  int `json:"productosActivos"`
	PedidosPendientes int `json:"pedidosPendientes"`
	ClientesActivos   int `json:"clientesActivos"`
}

type DashboardResponse struct {
	Metrics    Metricas          `json:"metrics"`
	Products   []model.Producto  `json:"products"`
	Activities []model.Actividad `json:"activities"`
	Pricing    model.Pricing     `json:"pricing"`
	Settings   model.Settings    `json:"settings"`
}

// ProductoResumen is the product view inside the pending-clients rollup;
// UnitPrice already carries the commune-resolved price.
type ProductoResumen struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit"`
}

type ProductoPendiente struct {
	Product  ProductoResumen `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// LineaPendiente is the per-line breakdown the delivery/debt selection forms
// consume.
type LineaPendiente struct {
	LineID    string          `json:"lineId"`
	ProductID string          `json:"productId"`
	Product   ProductoResumen `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type PedidoPendiente struct {
	OrderID   string           `json:"orderId"`
	CreatedAt string           `json:"createdAt"`
	Items     []LineaPendiente `json:"items"`
}

type ClientePendiente struct {
	Client        model.Cliente       `json:"client"`
	Products      []ProductoPendiente `json:"products"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	TotalUnits    decimal.Decimal     `json:"totalUnits"`
	OrderIDs      []string            `json:"orderIds"`
	OrderCount    int                 `json:"orderCount"`
	LatestOrderAt string              `json:"latestOrderAt"`
	Orders        []PedidoPendiente   `json:"orders"`
}

type ClientesPendientesResponse struct {
	Clients     []ClientePendiente `json:"clients"`
	GeneratedAt string             `json:"generatedAt"`
}
