package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The persisted document and every API response carry plain JSON numbers,
	// never quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// GeneralPriceKey is the reserved product key that marks a commune-wide
// override applying to every product.
const GeneralPriceKey = "__general__"

// ComunaOverride maps productId (or GeneralPriceKey) to an override price.
// Persisted documents may carry the legacy bare-number form for a commune;
// unmarshalling normalizes it to {GeneralPriceKey: value}. Malformed shapes
// and negative values are discarded instead of failing the whole read.
type ComunaOverride map[string]decimal.Decimal

func (o *ComunaOverride) UnmarshalJSON(raw []byte) error {
	*o = ComunaOverride{}

	if precio, ok := parsePrecio(raw); ok {
		(*o)[GeneralPriceKey] = precio
		return nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Wrong shape (array, non-numeric string, null): treat as empty.
		return nil
	}
	for productID, value := range entries {
		if precio, ok := parsePrecio(value); ok {
			(*o)[productID] = precio
		}
	}
	return nil
}

// parsePrecio accepts a JSON number or numeric string and rejects anything
// negative or unparseable.
func parsePrecio(raw json.RawMessage) (decimal.Decimal, bool) {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return decimal.Zero, false
	}

	var precio decimal.Decimal
	switch v := value.(type) {
	case float64:
		precio = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		precio = parsed
	default:
		return decimal.Zero, false
	}

	if precio.IsNegative() {
		return decimal.Zero, false
	}
	return precio, true
}

// Pricing holds the informational base price plus the per-commune override
// table. Unmarshalling never fails: malformed sections degrade to empty.
type Pricing struct {
	PrecioCaja       decimal.Decimal           `json:"precioCaja"`
	PreciosPorComuna map[string]ComunaOverride `json:"preciosPorComuna"`
}

func (p *Pricing) UnmarshalJSON(raw []byte) error {
	var aux struct {
		PrecioCaja       json.RawMessage           `json:"precioCaja"`
		PreciosPorComuna map[string]ComunaOverride `json:"preciosPorComuna"`
	}
	*p = Pricing{PreciosPorComuna: map[string]ComunaOverride{}}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return nil
	}
	if precio, ok := parsePrecio(aux.PrecioCaja); ok {
		p.PrecioCaja = precio
	}
	if aux.PreciosPorComuna != nil {
		p.PreciosPorComuna = aux.PreciosPorComuna
	}
	p.Normalize()
	return nil
}

// Normalize drops empty commune entries and clamps a negative base price to
// zero. Individual values were already filtered during unmarshalling but
// in-memory mutations go through here again before the table is served.
func (p *Pricing) Normalize() {
	if p.PreciosPorComuna == nil {
		p.PreciosPorComuna = map[string]ComunaOverride{}
	}
	for comuna, overrides := range p.PreciosPorComuna {
		for productID, precio := range overrides {
			if precio.IsNegative() {
				delete(overrides, productID)
			}
		}
		if len(overrides) == 0 {
			delete(p.PreciosPorComuna, comuna)
		}
	}
	if p.PrecioCaja.IsNegative() {
		p.PrecioCaja = decimal.Zero
	}
}

// ResolverPrecio resolves the effective unit price for a product sold to a
// client of the given commune. Precedence: product-specific override, then
// the commune's general override, then the fallback (the product's base
// price). Every call site that shows or charges a price goes through here.
func (p *Pricing) ResolverPrecio(productID, comuna string, fallback decimal.Decimal) decimal.Decimal {
	if p == nil || comuna == "" {
		return fallback
	}
	overrides, ok := p.PreciosPorComuna[comuna]
	if !ok || len(overrides) == 0 {
		return fallback
	}
	if precio, ok := overrides[productID]; ok {
		return precio
	}
	if precio, ok := overrides[GeneralPriceKey]; ok {
		return precio
	}
	return fallback
}
