package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type CashflowHandler struct {
	svc *service.CashflowService
}

func NewCashflowHandler(svc *service.CashflowService) *CashflowHandler {
	return &CashflowHandler{svc: svc}
}

// Listar godoc
// @Summary Lista movimientos de caja con resumen
// @Tags cashflow
// @Produce json
// @Success 200 {object} dto.ListaCashflowResponse
// @Router /api/cashflow [get]
func (h *CashflowHandler) Listar(c *gin.Context) {
	resultado, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Crear godoc
// @Summary Registra un ingreso o egreso manual
// @Tags cashflow
// @Accept json
// @Produce json
// @Success 201 {object} dto.MovimientoCreadoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/cashflow [post]
func (h *CashflowHandler) Crear(c *gin.Context) {
	var req dto.CrearMovimientoRequest
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

// Eliminar godoc
// @Summary Elimina un movimiento de caja
// @Tags cashflow
// @Produce json
// @Param id path string true "ID del movimiento"
// @Success 200 {object} dto.MovimientoEliminadoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/cashflow/{id} [delete]
func (h *CashflowHandler) Eliminar(c *gin.Context) {
	resultado, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
