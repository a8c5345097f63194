package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnidadPorDefecto labels products whose unit was never specified.
const UnidadPorDefecto = "Unidad"

type Producto struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
	Unit      string          `json:"unit"`
}

// NormalizeUnit trims the free-text unit label and falls back to the default.
func NormalizeUnit(unit string) string {
	cleaned := strings.TrimSpace(unit)
	if cleaned == "" {
		return UnidadPorDefecto
	}
	return cleaned
}
