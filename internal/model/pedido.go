package model

import "github.com/shopspring/decimal"

// Order-level states, always derived from line statuses via Recalcular.
const (
	EstadoPendiente  = "pendiente"
	EstadoDeuda      = "deuda"
	EstadoCompletado = "completado"
)

// Line-level statuses.
const (
	LineaPendiente = "pendiente"
	LineaEntregada = "entregado"
	LineaDeuda     = "deuda"
)

// LineaPedido is an individually-trackable order line.
type LineaPedido struct {
	LineID    string          `json:"lineId"`
	ProductID string          `json:"productId"`
	Cantidad  decimal.Decimal `json:"cantidad"`
	Status    string          `json:"status"`
}

type Pedido struct {
	ID          string        `json:"id"`
	ClienteID   string        `json:"clienteId"`
	Estado      string        `json:"estado"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
	DeliveredAt *string       `json:"deliveredAt"`
	DebtID      string        `json:"debtId,omitempty"`
	Items       []LineaPedido `json:"items"`
}

// Recalcular derives the order state from its lines. Precedence: any pending
// line keeps the order pendiente; otherwise any debt line makes it deuda;
// otherwise any delivered line completes it; an order without lines is
// pendiente. Never set Estado anywhere else once lines exist.
//
// deliveredAt is stamped when the order becomes completado (first time only),
// cleared when it reverts to pendiente, and left untouched on deuda.
func (p *Pedido) Recalcular(now string) {
	var hayPendiente, hayDeuda, hayEntregado bool
	for i := range p.Items {
		switch p.Items[i].Status {
		case LineaPendiente:
			hayPendiente = true
		case LineaDeuda:
			hayDeuda = true
		case LineaEntregada:
			hayEntregado = true
		}
	}

	switch {
	case hayPendiente:
		p.Estado = EstadoPendiente
	case hayDeuda:
		p.Estado = EstadoDeuda
	case hayEntregado:
		p.Estado = EstadoCompletado
	default:
		p.Estado = EstadoPendiente
	}

	switch p.Estado {
	case EstadoCompletado:
		if p.DeliveredAt == nil {
			entregado := now
			p.DeliveredAt = &entregado
		}
	case EstadoPendiente:
		p.DeliveredAt = nil
	}
}

// LineasPendientes returns pointers to the lines still pending delivery.
func (p *Pedido) LineasPendientes() []*LineaPedido {
	var pendientes []*LineaPedido
	for i := range p.Items {
		if p.Items[i].Status == LineaPendiente {
			pendientes = append(pendientes, &p.Items[i])
		}
	}
	return pendientes
}
