package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc *service.DashboardService
}

func NewReportesHandler(svc *service.DashboardService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Inventario godoc
// @Summary Reporte de inventario en JSON
// @Tags reportes
// @Produce json
// @Success 200 {object} dto.ReporteInventarioResponse
// @Router /api/reports/inventory [get]
func (h *ReportesHandler) Inventario(c *gin.Context) {
	reporte, err := h.svc.ReporteInventario(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporte)
}

// InventarioPDF godoc
// @Summary Reporte de inventario como PDF descargable
// @Tags reportes
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /api/reports/inventory/pdf [get]
func (h *ReportesHandler) InventarioPDF(c *gin.Context) {
	contenido, err := h.svc.ReporteInventarioPDF(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	nombre := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", contenido)
}
