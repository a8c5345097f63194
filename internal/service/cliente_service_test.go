package service

import (
	"context"
	"testing"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearCliente(t *testing.T) {
	e := nuevoEntorno(t)
	resultado, err := e.clientes.Crear(context.Background(), dto.CrearClienteRequest{
		NombreCompleto: "  María Soto ",
		Telefono:       "+56 9 1234 5678",
		Direccion:      "Calle Falsa 123",
		Comuna:         "Llolleo",
		DiaReparto:     "Miércoles",
	})
	require.NoError(t, err)
	assert.Equal(t, "María Soto", resultado.Client.NombreCompleto)
	assert.Equal(t, "Miércoles", resultado.Client.DiaReparto)
	assert.Equal(t, 1, resultado.ClientsTotal)
}

func TestActualizarCliente_AliasNombre(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	cliente := e.crearCliente(t, "María Soto", "Llolleo")

	// Older UI builds send "nombre" instead of "nombreCompleto".
	alias := "María Soto Vidal"
	actualizado, err := e.clientes.Actualizar(ctx, cliente.ID, dto.ActualizarClienteRequest{
		Nombre: &alias,
	})
	require.NoError(t, err)
	assert.Equal(t, "María Soto Vidal", actualizado.NombreCompleto)
	// Untouched fields survive.
	assert.Equal(t, "Llolleo", actualizado.Comuna)
}

func TestActualizarCliente_NoEncontrado(t *testing.T) {
	e := nuevoEntorno(t)
	nombre := "x"
	_, err := e.clientes.Actualizar(context.Background(), "nope", dto.ActualizarClienteRequest{
		NombreCompleto: &nombre,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.StatusOf(err))
}

func TestEliminarCliente_ArrastraSusPedidos(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	producto := e.crearProducto(t, "Pan amasado", 100)
	cliente := e.crearCliente(t, "María Soto", "Llolleo")
	otra := e.crearCliente(t, "Rosa Vidal", "Cartagena")
	pedidoCliente := e.crearPedido(t, cliente.ID, itemSeed{producto.ID, 1})
	pedidoOtra := e.crearPedido(t, otra.ID, itemSeed{producto.ID, 2})

	resultado, err := e.clientes.Eliminar(ctx, cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, cliente.ID, resultado.ClientID)
	assert.Equal(t, []string{pedidoCliente.ID}, resultado.RemovedOrders)

	doc := e.doc(t)
	assert.Nil(t, doc.BuscarCliente(cliente.ID))
	assert.Nil(t, doc.BuscarPedido(pedidoCliente.ID))
	// The other client's order is untouched.
	assert.NotNil(t, doc.BuscarPedido(pedidoOtra.ID))
}
