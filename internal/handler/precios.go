package handler

import (
	"net/http"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type PreciosHandler struct {
	svc *service.PrecioService
}

func NewPreciosHandler(svc *service.PrecioService) *PreciosHandler {
	return &PreciosHandler{svc: svc}
}

// GuardarOverride godoc
// @Summary Fija un precio por comuna para un producto o para todos
// @Tags precios
// @Accept json
// @Produce json
// @Success 200 {object} dto.OverridesResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/pricing/overrides [post]
func (h *PreciosHandler) GuardarOverride(c *gin.Context) {
	var req dto.OverrideRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resultado, err := h.svc.GuardarOverride(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}
