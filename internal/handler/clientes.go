package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	svc *service.ClienteService
}

func NewClientesHandler(svc *service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Listar godoc
// @Summary Lista los clientes registrados
// @Tags clientes
// @Produce json
// @Success 200 {array} model.Cliente
// @Router /api/clients [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Crear godoc
// @Summary Crea un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Success 201 {object} dto.ClienteCreadoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/clients [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resultado, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resultado)
}

// Actualizar godoc
// @Summary Actualiza datos de contacto de un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} model.Cliente
// @Failure 404 {object} apierror.APIError
// @Router /api/clients/{id} [patch]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// Eliminar godoc
// @Summary Elimina un cliente y sus pedidos
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.ClienteEliminadoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/clients/{id} [delete]
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	resultado, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
