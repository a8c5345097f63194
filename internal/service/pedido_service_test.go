package service

import (
	"context"
	"testing"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearPedido_DescartaItemsInvalidos(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 1500)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")

	resultado, err := e.pedidos.Crear(ctx, dto.CrearPedidoRequest{
		ClienteID: cliente.ID,
		Items: []dto.ItemPedidoRequest{
			{ProductID: producto.ID, Cantidad: dec(2)},
			{ProductID: "", Cantidad: dec(1)},
			{ProductID: producto.ID, Cantidad: dec(0)},
			{ProductID: producto.ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, resultado.Order.Items, 1)
	assert.Equal(t, model.EstadoPendiente, resultado.Order.Estado)
	assert.Equal(t, model.LineaPendiente, resultado.Order.Items[0].Status)
	assert.Equal(t, 1, resultado.OrdersTotal)
}

func TestCrearPedido_SinItemsValidosFalla(t *testing.T) {
	e := nuevoEntorno(t)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")

	_, err := e.pedidos.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID: cliente.ID,
		Items:     []dto.ItemPedidoRequest{{ProductID: "p1", Cantidad: dec(-1)}},
	})
	require.Error(t, err)
	assert.Equal(t, "items deben incluir cantidades válidas", err.Error())
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestMarcarEntregados_PrecioPorComuna(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	e.fijarOverride(t, "Llolleo", model.GeneralPriceKey, 80)
	pedido := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 3})

	resultado, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID}},
	})
	require.NoError(t, err)

	// The commune general override, not the base price, values the delivery.
	require.Len(t, resultado.DeliveredItems, 1)
	assert.True(t, decimal.NewFromInt(80).Equal(resultado.DeliveredItems[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(240).Equal(resultado.TotalAmount))
	assert.Equal(t, []string{pedido.ID}, resultado.UpdatedOrders)

	doc := e.doc(t)
	guardado := doc.BuscarPedido(pedido.ID)
	require.NotNil(t, guardado)
	assert.Equal(t, model.EstadoCompletado, guardado.Estado)
	require.NotNil(t, guardado.DeliveredAt)
}

func TestMarcarEntregados_SeleccionParcialDejaPendiente(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p1 := e.crearProducto(t, "Pan amasado", 100)
	p2 := e.crearProducto(t, "Huevos", 200)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pedido := e.crearPedido(t, cliente.ID, itemSeed{p1.ID, 1}, itemSeed{p2.ID, 1})

	resultado, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID, LineIDs: []string{pedido.Items[0].LineID}}},
	})
	require.NoError(t, err)
	require.Len(t, resultado.DeliveredItems, 1)

	guardado := e.doc(t).BuscarPedido(pedido.ID)
	assert.Equal(t, model.EstadoPendiente, guardado.Estado)
	assert.Equal(t, model.LineaEntregada, guardado.Items[0].Status)
	assert.Equal(t, model.LineaPendiente, guardado.Items[1].Status)
}

func TestMarcarEntregados_SinPendientesFalla(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pedido := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 1})

	_, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID}},
	})
	require.NoError(t, err)

	// A second pass finds nothing deliverable and must say so.
	_, err = e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID}},
	})
	require.Error(t, err)
	assert.Equal(t, "No se encontraron productos pendientes para entregar", err.Error())
	assert.Equal(t, 400, apierror.StatusOf(err))
}

func TestActualizarPedido_ReemplazoReiniciaLineas(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	p1 := e.crearProducto(t, "Pan amasado", 100)
	p2 := e.crearProducto(t, "Huevos", 200)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pedido := e.crearPedido(t, cliente.ID, itemSeed{p1.ID, 1}, itemSeed{p2.ID, 1})

	// Deliver one line first, then replace the item set.
	_, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID, LineIDs: []string{pedido.Items[0].LineID}}},
	})
	require.NoError(t, err)

	actualizado, err := e.pedidos.Actualizar(ctx, pedido.ID, dto.ActualizarPedidoRequest{
		Items: []dto.ItemPedidoRequest{{ProductID: p1.ID, Cantidad: dec(5)}},
	})
	require.NoError(t, err)

	// Replacement discards delivery progress: all lines fresh and pending.
	require.Len(t, actualizado.Items, 1)
	assert.Equal(t, model.LineaPendiente, actualizado.Items[0].Status)
	assert.NotEqual(t, pedido.Items[0].LineID, actualizado.Items[0].LineID)
	assert.Equal(t, model.EstadoPendiente, actualizado.Estado)
	assert.Nil(t, actualizado.DeliveredAt)
}

func TestActualizarPedido_RechazaCompletado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pedido := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 1})

	_, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID}},
	})
	require.NoError(t, err)

	_, err = e.pedidos.Actualizar(ctx, pedido.ID, dto.ActualizarPedidoRequest{
		Items: []dto.ItemPedidoRequest{{ProductID: producto.ID, Cantidad: dec(2)}},
	})
	require.Error(t, err)
	assert.Equal(t, "No se pueden editar pedidos completados", err.Error())
}

func TestActualizarPedido_NoEncontrado(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.pedidos.Actualizar(context.Background(), "nope", dto.ActualizarPedidoRequest{
		Items: []dto.ItemPedidoRequest{{ProductID: "p", Cantidad: dec(1)}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestCancelar_SoloPendientes(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pendiente := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 1})
	completado := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 2})

	_, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: completado.ID}},
	})
	require.NoError(t, err)

	resultado, err := e.pedidos.Cancelar(ctx, []string{pendiente.ID, completado.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{pendiente.ID}, resultado.Removed)
	assert.Equal(t, 1, resultado.OrdersTotal)

	// The completed order survived the batch untouched.
	assert.NotNil(t, e.doc(t).BuscarPedido(completado.ID))
}

func TestCancelar_SinPendientesFalla(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	pedido := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 1})

	_, err := e.pedidos.MarcarEntregados(ctx, dto.EntregaRequest{
		Deliveries: []dto.SeleccionLineas{{OrderID: pedido.ID}},
	})
	require.NoError(t, err)

	_, err = e.pedidos.Cancelar(ctx, []string{pedido.ID})
	require.Error(t, err)
	assert.Equal(t, "No se encontraron pedidos pendientes para cancelar", err.Error())
	assert.Equal(t, 400, apierror.StatusOf(err))
}
