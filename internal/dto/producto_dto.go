package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Name      string           `json:"name"      validate:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice" validate:"omitempty,min=0"`
	Category  string           `json:"category"`
	Notes     string           `json:"notes"`
	Unit      string           `json:"unit"`
}

type ActualizarProductoRequest struct {
	Name      *string          `json:"name"      validate:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unitPrice" validate:"omitempty,min=0"`
	Category  *string          `json:"category"`
	Notes     *string          `json:"notes"`
	Unit      *string          `json:"unit"`
}

type CambiarPrecioRequest struct {
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoEliminadoResponse reports the cascade of a product deletion.
type ProductoEliminadoResponse struct {
	ProductID      string   `json:"productId"`
	AdjustedOrders []string `json:"adjustedOrders"`
	RemovedOrders  []string `json:"removedOrders"`
}
