package service

import (
	"context"
	"sort"

	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/infra"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService derives read-only views: metrics, the pending-clients
// rollup, and the inventory report. Nothing here mutates the document.
type DashboardService struct {
	store repository.DocumentStore
	clock Clock
}

func NewDashboardService(store repository.DocumentStore, clock Clock) *DashboardService {
	return &DashboardService{store: store, clock: clock}
}

func (s *DashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	pendientes := 0
	for _, pedido := range doc.Orders {
		if pedido.Estado == model.EstadoPendiente {
			pendientes++
		}
	}

	productos := make([]model.Producto, len(doc.Products))
	for i, producto := range doc.Products {
		producto.Unit = model.NormalizeUnit(producto.Unit)
		productos[i] = producto
	}

	doc.Pricing.Normalize()

	return &dto.DashboardResponse{
		Metrics: dto.Metricas{
			ProductosActivos:  len(doc.Products),
			PedidosPendientes: pendientes,
			ClientesActivos:   len(doc.Clients),
		},
		Products:   productos,
		Activities: doc.Activities,
		Pricing:    doc.Pricing,
		Settings:   doc.Settings,
	}, nil
}

// ClientesPendientes rolls every pending line up per client, grouped by
// product and broken down per order so the delivery/debt selection forms can
// target individual lines. Prices come from the same resolver used at
// settlement; clients sort by descending total, products by subtotal.
func (s *DashboardService) ClientesPendientes(ctx context.Context) (*dto.ClientesPendientesResponse, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	doc.Pricing.Normalize()

	type acumulado struct {
		cliente     model.Cliente
		productos   map[string]*dto.ProductoPendiente
		ordenProds  []string
		total       decimal.Decimal
		orderIDs    []string
		ultimaOrden string
		pedidos     []dto.PedidoPendiente
	}

	porCliente := map[string]*acumulado{}
	var ordenClientes []string

	for _, pedido := range doc.Orders {
		cliente := doc.BuscarCliente(pedido.ClienteID)
		if cliente == nil {
			continue
		}

		var lineas []dto.LineaPendiente
		for _, linea := range pedido.Items {
			if linea.Status != model.LineaPendiente {
				continue
			}
			producto := doc.BuscarProducto(linea.ProductID)
			if producto == nil {
				continue
			}
			precio := doc.Pricing.ResolverPrecio(producto.ID, cliente.Comuna, producto.UnitPrice)
			lineas = append(lineas, dto.LineaPendiente{
				LineID:    linea.LineID,
				ProductID: producto.ID,
				Product: dto.ProductoResumen{
					ID:        producto.ID,
					Name:      producto.Name,
					UnitPrice: precio,
					Unit:      model.NormalizeUnit(producto.Unit),
				},
				Quantity: linea.Cantidad,
				Subtotal: linea.Cantidad.Mul(precio),
			})
		}
		if len(lineas) == 0 {
			continue
		}

		entrada, ok := porCliente[cliente.ID]
		if !ok {
			entrada = &acumulado{
				cliente:   *cliente,
				productos: map[string]*dto.ProductoPendiente{},
			}
			porCliente[cliente.ID] = entrada
			ordenClientes = append(ordenClientes, cliente.ID)
		}

		for _, linea := range lineas {
			grupo, existe := entrada.productos[linea.ProductID]
			if !existe {
				grupo = &dto.ProductoPendiente{Product: linea.Product}
				entrada.productos[linea.ProductID] = grupo
				entrada.ordenProds = append(entrada.ordenProds, linea.ProductID)
			}
			grupo.Quantity = grupo.Quantity.Add(linea.Quantity)
			grupo.Subtotal = grupo.Subtotal.Add(linea.Subtotal)
			entrada.total = entrada.total.Add(linea.Subtotal)
		}

		entrada.orderIDs = append(entrada.orderIDs, pedido.ID)
		if entrada.ultimaOrden == "" || pedido.CreatedAt > entrada.ultimaOrden {
			entrada.ultimaOrden = pedido.CreatedAt
		}
		entrada.pedidos = append(entrada.pedidos, dto.PedidoPendiente{
			OrderID:   pedido.ID,
			CreatedAt: pedido.CreatedAt,
			Items:     lineas,
		})
	}

	clientes := make([]dto.ClientePendiente, 0, len(ordenClientes))
	for _, clienteID := range ordenClientes {
		entrada := porCliente[clienteID]

		productos := make([]dto.ProductoPendiente, 0, len(entrada.ordenProds))
		totalUnidades := decimal.Zero
		for _, productID := range entrada.ordenProds {
			grupo := *entrada.productos[productID]
			productos = append(productos, grupo)
			totalUnidades = totalUnidades.Add(grupo.Quantity)
		}
		sort.SliceStable(productos, func(i, j int) bool {
			return productos[i].Subtotal.GreaterThan(productos[j].Subtotal)
		})

		clientes = append(clientes, dto.ClientePendiente{
			Client:        entrada.cliente,
			Products:      productos,
			TotalAmount:   entrada.total,
			TotalUnits:    totalUnidades,
			OrderIDs:      entrada.orderIDs,
			OrderCount:    len(entrada.orderIDs),
			LatestOrderAt: entrada.ultimaOrden,
			Orders:        entrada.pedidos,
		})
	}
	sort.SliceStable(clientes, func(i, j int) bool {
		return clientes[i].TotalAmount.GreaterThan(clientes[j].TotalAmount)
	})

	return &dto.ClientesPendientesResponse{
		Clients:     clientes,
		GeneratedAt: model.ISO(s.clock.Now()),
	}, nil
}

func (s *DashboardService) ReporteInventario(ctx context.Context) (*dto.ReporteInventarioResponse, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	filas := make([]dto.FilaInventario, 0, len(doc.Products))
	for _, producto := range doc.Products {
		filas = append(filas, dto.FilaInventario{
			ID:        producto.ID,
			Name:      producto.Name,
			UnitPrice: producto.UnitPrice,
			Category:  producto.Category,
			Unit:      model.NormalizeUnit(producto.Unit),
		})
	}

	return &dto.ReporteInventarioResponse{
		GeneratedAt: model.ISO(s.clock.Now()),
		Totals:      dto.TotalesInventario{TotalProducts: len(filas)},
		Rows:        filas,
	}, nil
}

// ReporteInventarioPDF renders the same report as a printable PDF.
func (s *DashboardService) ReporteInventarioPDF(ctx context.Context) ([]byte, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return infra.GenerarInventarioPDF(model.ISO(s.clock.Now()), doc.Products)
}
