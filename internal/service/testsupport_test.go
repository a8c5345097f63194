package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type fakeClock struct {
	actual time.Time
}

func (c *fakeClock) Now() time.Time { return c.actual }

func (c *fakeClock) Avanzar(d time.Duration) { c.actual = c.actual.Add(d) }

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

// entorno wires every service over a real FileStore in a temp dir, with a
// frozen clock and sequential ids so assertions are deterministic.
type entorno struct {
	store     *repository.FileStore
	clock     *fakeClock
	productos *ProductoService
	clientes  *ClienteService
	pedidos   *PedidoService
	deudas    *DeudaService
	cashflow  *CashflowService
	dashboard *DashboardService
	precios   *PrecioService
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	clock := &fakeClock{actual: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
	ids := &seqIDGen{}

	return &entorno{
		store:     store,
		clock:     clock,
		productos: NewProductoService(store, clock, ids),
		clientes:  NewClienteService(store, clock, ids),
		pedidos:   NewPedidoService(store, clock, ids),
		deudas:    NewDeudaService(store, clock, ids),
		cashflow:  NewCashflowService(store, clock, ids),
		dashboard: NewDashboardService(store, clock),
		precios:   NewPrecioService(store, clock, ids),
	}
}

func (e *entorno) doc(t *testing.T) *model.Documento {
	t.Helper()
	doc, err := e.store.Read(context.Background())
	require.NoError(t, err)
	return doc
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func dec(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

func (e *entorno) crearProducto(t *testing.T, nombre string, precio int64) model.Producto {
	t.Helper()
	producto, err := e.productos.Crear(context.Background(), dto.CrearProductoRequest{
		Name:      nombre,
		UnitPrice: dec(precio),
	})
	require.NoError(t, err)
	return *producto
}

func (e *entorno) crearCliente(t *testing.T, nombre, comuna string) model.Cliente {
	t.Helper()
	resultado, err := e.clientes.Crear(context.Background(), dto.CrearClienteRequest{
		NombreCompleto: nombre,
		Telefono:       "+56 9 1234 5678",
		Direccion:      "Calle Falsa 123",
		Comuna:         comuna,
	})
	require.NoError(t, err)
	return resultado.Client
}

type itemSeed struct {
	productID string
	cantidad  int64
}

func (e *entorno) crearPedido(t *testing.T, clienteID string, items ...itemSeed) model.Pedido {
	t.Helper()
	req := dto.CrearPedidoRequest{ClienteID: clienteID}
	for _, item := range items {
		req.Items = append(req.Items, dto.ItemPedidoRequest{
			ProductID: item.productID,
			Cantidad:  dec(item.cantidad),
		})
	}
	resultado, err := e.pedidos.Crear(context.Background(), req)
	require.NoError(t, err)
	return resultado.Order
}

func (e *entorno) fijarOverride(t *testing.T, comuna, productID string, precio int64) {
	t.Helper()
	_, err := e.precios.GuardarOverride(context.Background(), dto.OverrideRequest{
		Comuna:    comuna,
		ProductID: productID,
		Precio:    decimal.NewFromInt(precio),
	})
	require.NoError(t, err)
}
