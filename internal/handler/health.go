package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Health godoc
// @Summary Estado del servicio y sus backends
// @Tags salud
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	estado := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	codigo := http.StatusOK

	if h.db != nil {
		estado["storage"] = "postgres"
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			estado["storage"] = "postgres: sin conexión"
			estado["status"] = "degraded"
			codigo = http.StatusServiceUnavailable
		}
	} else {
		estado["storage"] = "file"
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			estado["redis"] = "error: " + err.Error()
		} else {
			estado["redis"] = "connected"
		}
	} else {
		estado["redis"] = "disabled"
	}

	c.JSON(codigo, estado)
}
