package dto

import (
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

// OverrideRequest upserts one commune × product override. ProductID may be
// the reserved general key to cover every product in the commune.
type OverrideRequest struct {
	Comuna    string          `json:"comuna"    validate:"required"`
	ProductID string          `json:"productId" validate:"required"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
}

type OverridesResponse struct {
	Overrides map[string]model.ComunaOverride `json:"overrides"`
}
