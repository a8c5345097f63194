package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc *service.ProductoService
}

func NewProductosHandler(svc *service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista el catalogo de productos
// @Tags productos
// @Produce json
// @Success 200 {array} model.Producto
// @Router /api/products [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// Crear godoc
// @Summary Crea un producto
// @Tags productos
// @Accept json
// @Produce json
// @Success 201 {object} model.Producto
// @Failure 400 {object} apierror.APIError
// @Router /api/products [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producto)
}

// Actualizar godoc
// @Summary Actualiza detalles de un producto
// @Tags productos
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} model.Producto
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id} [patch]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// CambiarPrecio godoc
// @Summary Cambia el precio base de un producto
// @Tags productos
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} model.Producto
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id}/price [post]
func (h *ProductosHandler) CambiarPrecio(c *gin.Context) {
	var req dto.CambiarPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	producto, err := h.svc.CambiarPrecio(c.Request.Context(), c.Param("id"), req.UnitPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// Eliminar godoc
// @Summary Elimina un producto y su cascada en pedidos y precios
// @Tags productos
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductoEliminadoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id} [delete]
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	resultado, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
