package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PendingClientsCacheKey is invalidated by the cache middleware after every
// successful mutation, so a delivered line never reappears in the rollup.
const PendingClientsCacheKey = "pending-clients"

type DashboardHandler struct {
	svc      *service.DashboardService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewDashboardHandler(svc *service.DashboardService, rdb *redis.Client, cacheTTL time.Duration) *DashboardHandler {
	return &DashboardHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// Resumen godoc
// @Summary Entrega metricas, catalogo, actividades y configuracion
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resumen, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// ClientesPendientes godoc
// @Summary Agrupa todas las lineas pendientes por cliente
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.ClientesPendientesResponse
// @Router /api/dashboard/pending-clients [get]
func (h *DashboardHandler) ClientesPendientes(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, PendingClientsCacheKey).Bytes(); err == nil {
			var resultado dto.ClientesPendientesResponse
			if json.Unmarshal(cached, &resultado) == nil {
				c.JSON(http.StatusOK, resultado)
				return
			}
		}
	}

	resultado, err := h.svc.ClientesPendientes(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(resultado); err == nil {
			// Best effort, the handler never fails because the cache is down.
			_ = h.rdb.Set(ctx, PendingClientsCacheKey, payload, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resultado)
}
