package model

import "github.com/shopspring/decimal"

const (
	DeudaPendiente = "pendiente"
	DeudaPagada    = "pagada"
)

// DeudaItem is a price/quantity snapshot aggregated by product at debt
// creation time. It never re-resolves prices afterwards.
type DeudaItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Deuda struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"clientId"`
	OrderIDs        []string        `json:"orderIds"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	Note            string          `json:"note"`
	Items           []DeudaItem     `json:"items"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	PaidAt          *string         `json:"paidAt"`
	CashflowEntryID string          `json:"cashflowEntryId,omitempty"`
}
