package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type DeudasHandler struct {
	svc *service.DeudaService
}

func NewDeudasHandler(svc *service.DeudaService) *DeudasHandler {
	return &DeudasHandler{svc: svc}
}

// Crear godoc
// @Summary Convierte lineas pendientes seleccionadas en una deuda
// @Tags deudas
// @Accept json
// @Produce json
// @Success 201 {object} dto.DeudaCreadaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/debts [post]
func (h *DeudasHandler) Crear(c *gin.Context) {
	var req dto.CrearDeudaRequest
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

// Listar godoc
// @Summary Lista deudas con su cliente asociado
// @Tags deudas
// @Produce json
// @Success 200 {object} dto.ListaDeudasResponse
// @Router /api/debts [get]
func (h *DeudasHandler) Listar(c *gin.Context) {
	resultado, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Pagar godoc
// @Summary Marca una deuda como pagada y registra el ingreso
// @Tags deudas
// @Accept json
// @Produce json
// @Param id path string true "ID de la deuda"
// @Success 200 {object} dto.DeudaPagadaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/debts/{id}/pay [post]
func (h *DeudasHandler) Pagar(c *gin.Context) {
	var req dto.PagarDeudaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resultado, err := h.svc.Pagar(c.Request.Context(), c.Param("id"), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
