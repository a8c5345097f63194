package router

import (
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/config"
	"github.com/AlonsoDiaz/web-inventario/internal/handler"
	"github.com/AlonsoDiaz/web-inventario/internal/middleware"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"
	"github.com/AlonsoDiaz/web-inventario/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← DocumentStore ← File/Postgres
func New(cfg *config.Config, store repository.DocumentStore, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	clock := service.SystemClock{}
	ids := service.UUIDGen{}

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(store, clock, ids)
	clienteSvc := service.NewClienteService(store, clock, ids)
	pedidoSvc := service.NewPedidoService(store, clock, ids)
	deudaSvc := service.NewDeudaService(store, clock, ids)
	cashflowSvc := service.NewCashflowService(store, clock, ids)
	dashboardSvc := service.NewDashboardService(store, clock)
	precioSvc := service.NewPrecioService(store, clock, ids)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cacheTTL := time.Duration(cfg.PendingCacheTTLSeconds) * time.Second
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	deudasH := handler.NewDeudasHandler(deudaSvc)
	cashflowH := handler.NewCashflowHandler(cashflowSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, rdb, cacheTTL)
	preciosH := handler.NewPreciosHandler(precioSvc)
	reportesH := handler.NewReportesHandler(dashboardSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", healthH.Health)

	api := r.Group("/api")
	if rdb != nil {
		// Any successful mutation under /api drops the pending-clients cache.
		api.Use(middleware.InvalidateCache(rdb, handler.PendingClientsCacheKey))
	}
	{
		api.GET("/dashboard", dashboardH.Resumen)
		api.GET("/dashboard/pending-clients", dashboardH.ClientesPendientes)

		products := api.Group("/products")
		{
			products.GET("", productosH.Listar)
			products.POST("", productosH.Crear)
			products.PATCH("/:id", productosH.Actualizar)
			products.POST("/:id/price", productosH.CambiarPrecio)
			products.DELETE("/:id", productosH.Eliminar)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clientesH.Listar)
			clients.POST("", clientesH.Crear)
			clients.PATCH("/:id", clientesH.Actualizar)
			clients.DELETE("/:id", clientesH.Eliminar)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", pedidosH.Listar)
			orders.POST("", pedidosH.Crear)
			orders.POST("/mark-delivered", pedidosH.MarcarEntregados)
			orders.POST("/cancel", pedidosH.Cancelar)
			orders.PATCH("/:id", pedidosH.Actualizar)
		}

		debts := api.Group("/debts")
		{
			debts.GET("", deudasH.Listar)
			debts.POST("", deudasH.Crear)
			debts.POST("/:id/pay", deudasH.Pagar)
		}

		cashflow := api.Group("/cashflow")
		{
			cashflow.GET("", cashflowH.Listar)
			cashflow.POST("", cashflowH.Crear)
			cashflow.DELETE("/:id", cashflowH.Eliminar)
		}

		api.POST("/pricing/overrides", preciosH.GuardarOverride)

		reports := api.Group("/reports")
		{
			reports.GET("/inventory", reportesH.Inventario)
			reports.GET("/inventory/pdf", reportesH.InventarioPDF)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
