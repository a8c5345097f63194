package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPrecio_Precedencia(t *testing.T) {
	pricing := Pricing{
		PreciosPorComuna: map[string]ComunaOverride{
			"Llolleo": {
				GeneralPriceKey: decimal.NewFromInt(80),
				"prod-1":        decimal.NewFromInt(70),
			},
		},
	}
	base := decimal.NewFromInt(100)

	// Product-specific override wins over the general key.
	assert.True(t, decimal.NewFromInt(70).Equal(pricing.ResolverPrecio("prod-1", "Llolleo", base)))
	// Other products in the commune take the general override.
	assert.True(t, decimal.NewFromInt(80).Equal(pricing.ResolverPrecio("prod-2", "Llolleo", base)))
	// Unknown commune falls back to the base price.
	assert.True(t, base.Equal(pricing.ResolverPrecio("prod-1", "Cartagena", base)))
	// Empty commune falls back too.
	assert.True(t, base.Equal(pricing.ResolverPrecio("prod-1", "", base)))
}

func TestResolverPrecio_OverrideCero(t *testing.T) {
	pricing := Pricing{
		PreciosPorComuna: map[string]ComunaOverride{
			"El Tabo": {"prod-1": decimal.Zero},
		},
	}
	// Zero is a valid override (promotions), not a missing value.
	assert.True(t, decimal.Zero.Equal(pricing.ResolverPrecio("prod-1", "El Tabo", decimal.NewFromInt(500))))
}

func TestComunaOverride_UnmarshalNumeroSimple(t *testing.T) {
	var o ComunaOverride
	require.NoError(t, json.Unmarshal([]byte(`1200`), &o))
	require.Len(t, o, 1)
	assert.True(t, decimal.NewFromInt(1200).Equal(o[GeneralPriceKey]))
}

func TestComunaOverride_UnmarshalStringNumerica(t *testing.T) {
	var o ComunaOverride
	require.NoError(t, json.Unmarshal([]byte(`" 950 "`), &o))
	assert.True(t, decimal.NewFromInt(950).Equal(o[GeneralPriceKey]))
}

func TestComunaOverride_UnmarshalObjeto(t *testing.T) {
	var o ComunaOverride
	require.NoError(t, json.Unmarshal([]byte(`{"prod-1": 100, "prod-2": "200", "prod-3": "abc", "prod-4": -5}`), &o))
	require.Len(t, o, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(o["prod-1"]))
	assert.True(t, decimal.NewFromInt(200).Equal(o["prod-2"]))
}

func TestComunaOverride_UnmarshalFormasInvalidas(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `null`, `"no-numerico"`, `-10`, `true`} {
		var o ComunaOverride
		require.NoError(t, json.Unmarshal([]byte(raw), &o), "shape %s must not fail", raw)
		assert.Empty(t, o, "shape %s must degrade to empty", raw)
	}
}

func TestPricing_UnmarshalDegradaSinFallar(t *testing.T) {
	var p Pricing
	require.NoError(t, json.Unmarshal([]byte(`{"precioCaja": "abc", "preciosPorComuna": {"Llolleo": [1,2]}}`), &p))
	assert.True(t, p.PrecioCaja.IsZero())
	// The malformed commune entry degraded to empty and Normalize dropped it.
	assert.Empty(t, p.PreciosPorComuna)
}

func TestPricing_Normalize(t *testing.T) {
	p := Pricing{
		PrecioCaja: decimal.NewFromInt(-10),
		PreciosPorComuna: map[string]ComunaOverride{
			"Llolleo":   {"prod-1": decimal.NewFromInt(-1)},
			"Cartagena": {"prod-2": decimal.NewFromInt(300)},
		},
	}
	p.Normalize()
	assert.True(t, p.PrecioCaja.IsZero())
	assert.NotContains(t, p.PreciosPorComuna, "Llolleo")
	assert.Contains(t, p.PreciosPorComuna, "Cartagena")
}
