package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestNewFileStore_SiembraDocumentoVacio(t *testing.T) {
	store, path := newTestStore(t)

	_, err := os.Stat(path)
	require.NoError(t, err)

	doc, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
	assert.Empty(t, doc.Orders)
	assert.NotNil(t, doc.Pricing.PreciosPorComuna)
}

func TestFileStore_MutatePersiste(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	doc, err := store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products = append(draft.Products, model.Producto{
			ID:        "p1",
			Name:      "Pan amasado",
			UnitPrice: decimal.NewFromInt(1500),
		})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)

	// A fresh store over the same file sees the write.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	persisted, err := reopened.Read(ctx)
	require.NoError(t, err)
	require.Len(t, persisted.Products, 1)
	assert.Equal(t, "Pan amasado", persisted.Products[0].Name)
}

// Persisting a fully-populated document and reading it back must preserve
// every entity field, including optional ones (deliveredAt, paidAt,
// cashflowEntryId, region) and decimal amounts.
func TestFileStore_RoundTripDocumentoCompleto(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	entregadoEn := "2026-08-28T18:30:00.000Z"
	pagadoEn := "2026-08-29T10:15:00.000Z"

	escrito, err := store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products = []model.Producto{
			{ID: "p1", Name: "Queso fresco", UnitPrice: decimal.NewFromInt(4500), Category: "Lácteos", Notes: "mantener refrigerado", Unit: "Kilo"},
			{ID: "p2", Name: "Pan amasado", UnitPrice: decimal.NewFromInt(1500), Category: "Panadería", Unit: "Unidad"},
		}
		draft.Clients = []model.Cliente{
			{ID: "c1", NombreCompleto: "María Soto", Telefono: "+56911112222", Direccion: "Av. Costanera 120", Comuna: "Llolleo", DiaReparto: "Miércoles", Region: "Valparaíso"},
		}
		draft.Orders = []model.Pedido{
			{
				ID: "o1", ClienteID: "c1", Estado: model.EstadoDeuda,
				CreatedAt: "2026-08-27T09:00:00.000Z", UpdatedAt: entregadoEn,
				DeliveredAt: &entregadoEn, DebtID: "d1",
				Items: []model.LineaPedido{
					{LineID: "l1", ProductID: "p1", Cantidad: decimal.NewFromInt(2), Status: model.LineaEntregada},
					{LineID: "l2", ProductID: "p2", Cantidad: decimal.NewFromInt(3), Status: model.LineaDeuda},
					{LineID: "l3", ProductID: "p2", Cantidad: decimal.NewFromInt(1), Status: model.LineaPendiente},
				},
			},
		}
		draft.Debts = []model.Deuda{
			{
				ID: "d1", ClientID: "c1", OrderIDs: []string{"o1"},
				Amount: decimal.NewFromInt(4500), Status: model.DeudaPagada,
				Note: "saldo de la ruta del miércoles",
				Items: []model.DeudaItem{
					{ProductID: "p2", Name: "Pan amasado", Unit: "Unidad", UnitPrice: decimal.NewFromInt(1500), Quantity: decimal.NewFromInt(3), Subtotal: decimal.NewFromInt(4500)},
				},
				CreatedAt: entregadoEn, UpdatedAt: pagadoEn,
				PaidAt: &pagadoEn, CashflowEntryID: "m1",
			},
		}
		draft.Cashflow = []model.Movimiento{
			{ID: "m1", Type: model.TipoIngreso, Amount: decimal.NewFromInt(4500), Category: "Cobranza", Description: "Pago deuda María Soto", Date: pagadoEn, CreatedAt: pagadoEn, PaymentMethod: model.MetodoEfectivo},
			{ID: "m2", Type: model.TipoEgreso, Amount: decimal.NewFromInt(800), Category: "Combustible", Date: "2026-08-29T00:00:00.000Z", CreatedAt: pagadoEn, PaymentMethod: model.MetodoTransferencia},
		}
		draft.Pricing.PrecioCaja = decimal.NewFromInt(12000)
		draft.Pricing.PreciosPorComuna = map[string]model.ComunaOverride{
			"Llolleo": {model.GeneralPriceKey: decimal.NewFromInt(1400), "p1": decimal.NewFromInt(4200)},
		}
		draft.Activities = []model.Actividad{
			{ID: "a1", Title: "Pedido creado", Detail: "Pedido o1 para María Soto", CreatedAt: "2026-08-27T09:00:00.000Z"},
		}
		draft.Settings = model.Settings{Comunas: []string{"Llolleo", "El Tabo"}, DiasReparto: []string{"Lunes", "Miércoles"}}
		return nil
	})
	require.NoError(t, err)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	leido, err := reopened.Read(ctx)
	require.NoError(t, err)

	assert.Equal(t, escrito.Products, leido.Products)
	assert.Equal(t, escrito.Clients, leido.Clients)
	assert.Equal(t, escrito.Orders, leido.Orders)
	assert.Equal(t, escrito.Debts, leido.Debts)
	assert.Equal(t, escrito.Cashflow, leido.Cashflow)
	assert.Equal(t, escrito.Activities, leido.Activities)
	assert.Equal(t, escrito.Settings, leido.Settings)

	// Pricing reloads through its lenient unmarshaller; compare by value.
	assert.True(t, leido.Pricing.PrecioCaja.Equal(decimal.NewFromInt(12000)))
	require.Len(t, leido.Pricing.PreciosPorComuna, 1)
	overrides := leido.Pricing.PreciosPorComuna["Llolleo"]
	require.Len(t, overrides, 2)
	assert.True(t, overrides[model.GeneralPriceKey].Equal(decimal.NewFromInt(1400)))
	assert.True(t, overrides["p1"].Equal(decimal.NewFromInt(4200)))

	// On disk the money fields stay plain JSON numbers, never quoted strings.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"unitPrice": 4500`)
	assert.Contains(t, string(raw), `"amount": 4500`)
	assert.NotContains(t, string(raw), `"4500"`)
}

// Documents written by the previous system may carry a bare number per
// commune instead of a per-product map. Reading through the store normalizes
// it to a general-key override.
func TestFileStore_NormalizaOverrideLegado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	legado := `{"pricing":{"precioCaja":12000,"preciosPorComuna":{"Cartagena":1200}}}`
	require.NoError(t, os.WriteFile(path, []byte(legado), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	doc, err := store.Read(context.Background())
	require.NoError(t, err)

	overrides := doc.Pricing.PreciosPorComuna["Cartagena"]
	require.Len(t, overrides, 1)
	assert.True(t, overrides[model.GeneralPriceKey].Equal(decimal.NewFromInt(1200)))
}

func TestFileStore_MutateAbortadaNoEscribe(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products = append(draft.Products, model.Producto{ID: "p1", Name: "fantasma"})
		return errors.New("boom")
	})
	require.Error(t, err)

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Products, "aborted mutation must leave the document untouched")
}

func TestFileStore_MutacionNoAliasaDocumentoLeido(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	antes, err := store.Read(ctx)
	require.NoError(t, err)

	_, err = store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Clients = append(draft.Clients, model.Cliente{ID: "c1", NombreCompleto: "María Soto"})
		return nil
	})
	require.NoError(t, err)

	// The draft is a deep clone: the earlier read does not see the append.
	assert.Empty(t, antes.Clients)
}
