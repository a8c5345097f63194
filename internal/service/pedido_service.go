package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

type PedidoService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewPedidoService(store repository.DocumentStore, clock Clock, ids IDGen) *PedidoService {
	return &PedidoService{store: store, clock: clock, ids: ids}
}

func (s *PedidoService) Listar(ctx context.Context) ([]model.Pedido, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

// Crear registers an order. Invalid item entries are silently dropped; the
// operation only fails when nothing valid remains.
func (s *PedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoCreadoResponse, error) {
	var lineas []model.LineaPedido
	for _, item := range req.Items {
		cantidad, ok := item.CantidadEfectiva()
		if item.ProductID == "" || !ok || cantidad.LessThanOrEqual(decimal.Zero) {
			continue
		}
		lineas = append(lineas, model.LineaPedido{
			LineID:    s.ids.NewID(),
			ProductID: item.ProductID,
			Cantidad:  cantidad,
			Status:    model.LineaPendiente,
		})
	}
	if len(lineas) == 0 {
		return nil, apierror.Validation("items deben incluir cantidades válidas")
	}

	pedido := model.Pedido{
		ID:        s.ids.NewID(),
		ClienteID: req.ClienteID,
		Estado:    model.EstadoPendiente,
		CreatedAt: model.ISO(s.clock.Now()),
		Items:     lineas,
	}

	doc, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Orders = append(draft.Orders, pedido)
		detalle := "Pedido registrado"
		if cliente := draft.BuscarCliente(pedido.ClienteID); cliente != nil {
			detalle = fmt.Sprintf("%s · %d ítems", cliente.NombreCompleto, len(pedido.Items))
		}
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Pedido creado: "+pedido.ID, detalle))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.PedidoCreadoResponse{Order: pedido, OrdersTotal: len(doc.Orders)}, nil
}

// Actualizar patches an open order. Replacing items discards per-line
// delivery/debt progress and issues fresh pending lines; that reset is the
// documented contract of a full item replacement, not an accident.
func (s *PedidoService) Actualizar(ctx context.Context, id string, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	if req.ClienteID == nil && req.Items == nil {
		return nil, apierror.Validation("Debes especificar campos para actualizar")
	}

	var actualizado model.Pedido

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		pedido := draft.BuscarPedido(id)
		if pedido == nil {
			return apierror.NotFound("Pedido no encontrado")
		}
		if pedido.Estado == model.EstadoCompletado {
			return apierror.Conflict("No se pueden editar pedidos completados")
		}

		now := model.ISO(s.clock.Now())

		if req.ClienteID != nil && *req.ClienteID != "" {
			if draft.BuscarCliente(*req.ClienteID) == nil {
				return apierror.Validation("Cliente no válido")
			}
			pedido.ClienteID = *req.ClienteID
		}

		if req.Items != nil {
			var lineas []model.LineaPedido
			for _, item := range req.Items {
				cantidad, ok := item.CantidadEfectiva()
				if item.ProductID == "" || !ok || cantidad.LessThanOrEqual(decimal.Zero) {
					continue
				}
				if draft.BuscarProducto(item.ProductID) == nil {
					continue
				}
				lineas = append(lineas, model.LineaPedido{
					LineID:    s.ids.NewID(),
					ProductID: item.ProductID,
					Cantidad:  cantidad,
					Status:    model.LineaPendiente,
				})
			}
			if len(lineas) == 0 {
				return apierror.Validation("Debes incluir al menos un producto válido")
			}
			pedido.Items = lineas
			pedido.Recalcular(now)
		}

		pedido.UpdatedAt = now

		detalle := fmt.Sprintf("Pedido %s actualizado", pedido.ID)
		if cliente := draft.BuscarCliente(pedido.ClienteID); cliente != nil {
			detalle = fmt.Sprintf("%s · %d ítems", cliente.NombreCompleto, len(pedido.Items))
		}
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Pedido actualizado: "+pedido.ID, detalle))

		actualizado = *pedido
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// objetivoEntrega is a merged delivery target: todas subsumes any partial
// line selection for the same order.
type objetivoEntrega struct {
	todas   bool
	lineIDs map[string]struct{}
}

// MarcarEntregados settles pending lines at line granularity. Prices are
// resolved at settlement time with the client's commune; the caller records
// the returned total as income in a separate step.
func (s *PedidoService) MarcarEntregados(ctx context.Context, req dto.EntregaRequest) (*dto.EntregaResponse, error) {
	objetivos := map[string]*objetivoEntrega{}
	var orden []string
	for _, seleccion := range req.Deliveries {
		if seleccion.OrderID == "" {
			continue
		}
		objetivo, ok := objetivos[seleccion.OrderID]
		if !ok {
			objetivo = &objetivoEntrega{lineIDs: map[string]struct{}{}}
			objetivos[seleccion.OrderID] = objetivo
			orden = append(orden, seleccion.OrderID)
		}
		if len(seleccion.LineIDs) == 0 {
			objetivo.todas = true
			continue
		}
		for _, lineID := range seleccion.LineIDs {
			objetivo.lineIDs[lineID] = struct{}{}
		}
	}
	if len(orden) == 0 {
		return nil, apierror.Validation("deliveries debe incluir al menos un pedido")
	}

	resultado := &dto.EntregaResponse{
		DeliveredItems: []dto.LineaEntregada{},
		UpdatedOrders:  []string{},
	}
	total := decimal.Zero

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		now := model.ISO(s.clock.Now())

		for _, orderID := range orden {
			pedido := draft.BuscarPedido(orderID)
			if pedido == nil {
				continue
			}
			objetivo := objetivos[orderID]
			cliente := draft.BuscarCliente(pedido.ClienteID)
			comuna := ""
			if cliente != nil {
				comuna = cliente.Comuna
			}

			entregadas := 0
			for i := range pedido.Items {
				linea := &pedido.Items[i]
				if linea.Status != model.LineaPendiente {
					continue
				}
				if !objetivo.todas {
					if _, seleccionada := objetivo.lineIDs[linea.LineID]; !seleccionada {
						continue
					}
				}
				producto := draft.BuscarProducto(linea.ProductID)
				if producto == nil {
					continue
				}

				precio := draft.Pricing.ResolverPrecio(producto.ID, comuna, producto.UnitPrice)
				subtotal := linea.Cantidad.Mul(precio)
				linea.Status = model.LineaEntregada
				entregadas++

				resultado.DeliveredItems = append(resultado.DeliveredItems, dto.LineaEntregada{
					OrderID:     pedido.ID,
					LineID:      linea.LineID,
					ProductID:   producto.ID,
					ProductName: producto.Name,
					Quantity:    linea.Cantidad,
					UnitPrice:   precio,
					Subtotal:    subtotal,
					ClientID:    pedido.ClienteID,
				})
				total = total.Add(subtotal)
			}

			if entregadas == 0 {
				continue
			}
			pedido.Recalcular(now)
			pedido.UpdatedAt = now
			resultado.UpdatedOrders = append(resultado.UpdatedOrders, pedido.ID)

			var partes []string
			if cliente != nil {
				partes = append(partes, cliente.NombreCompleto)
				if cliente.Comuna != "" {
					partes = append(partes, cliente.Comuna)
				}
			}
			partes = append(partes, pluralizar(entregadas, "producto entregado", "productos entregados"))
			draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
				"Pedido entregado: "+pedido.ID, strings.Join(partes, " · ")))
		}

		if len(resultado.DeliveredItems) == 0 {
			return apierror.Validation("No se encontraron productos pendientes para entregar")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resultado.TotalAmount = total
	return resultado, nil
}

// Cancelar removes pending orders. Orders already completado or deuda are
// skipped; a batch that cancels nothing fails so the caller knows.
func (s *PedidoService) Cancelar(ctx context.Context, orderIDs []string) (*dto.PedidosCanceladosResponse, error) {
	seleccionados := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		seleccionados[id] = struct{}{}
	}

	resultado := &dto.PedidosCanceladosResponse{Removed: []string{}}

	doc, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		restantes := draft.Orders[:0]
		for _, pedido := range draft.Orders {
			_, pedidoEnLote := seleccionados[pedido.ID]
			if !pedidoEnLote || pedido.Estado != model.EstadoPendiente {
				restantes = append(restantes, pedido)
				continue
			}

			resultado.Removed = append(resultado.Removed, pedido.ID)

			var partes []string
			if cliente := draft.BuscarCliente(pedido.ClienteID); cliente != nil {
				partes = append(partes, cliente.NombreCompleto)
				if cliente.Comuna != "" {
					partes = append(partes, cliente.Comuna)
				}
			}
			partes = append(partes, "Pedido "+pedido.ID)
			draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
				"Pedido cancelado: "+pedido.ID, strings.Join(partes, " · ")))
		}
		draft.Orders = restantes

		if len(resultado.Removed) == 0 {
			return apierror.Validation("No se encontraron pedidos pendientes para cancelar")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resultado.OrdersTotal = len(doc.Orders)
	return resultado, nil
}
