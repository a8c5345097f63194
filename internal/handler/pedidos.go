package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc *service.PedidoService
}

func NewPedidosHandler(svc *service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista todos los pedidos
// @Tags pedidos
// @Produce json
// @Success 200 {array} model.Pedido
// @Router /api/orders [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	pedidos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// Crear godoc
// @Summary Crea un pedido con sus lineas
// @Tags pedidos
// @Accept json
// @Produce json
// @Success 201 {object} dto.PedidoCreadoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/orders [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
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
// @Summary Reemplaza cliente o lineas de un pedido no completado
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path string true "ID del pedido"
// @Success 200 {object} model.Pedido
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/orders/{id} [patch]
func (h *PedidosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pedido, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// MarcarEntregados godoc
// @Summary Marca lineas seleccionadas como entregadas
// @Tags pedidos
// @Accept json
// @Produce json
// @Success 200 {object} dto.EntregaResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/orders/mark-delivered [post]
func (h *PedidosHandler) MarcarEntregados(c *gin.Context) {
	var req dto.EntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resultado, err := h.svc.MarcarEntregados(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Cancelar godoc
// @Summary Cancela pedidos pendientes
// @Tags pedidos
// @Accept json
// @Produce json
// @Success 200 {object} dto.PedidosCanceladosResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/orders/cancel [post]
func (h *PedidosHandler) Cancelar(c *gin.Context) {
	var req dto.CancelarPedidosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resultado, err := h.svc.Cancelar(c.Request.Context(), req.OrderIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
