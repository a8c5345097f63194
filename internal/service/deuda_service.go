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

type DeudaService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewDeudaService(store repository.DocumentStore, clock Clock, ids IDGen) *DeudaService {
	return &DeudaService{store: store, clock: clock, ids: ids}
}

// objetivoDeuda targets an order's pending lines; a nil set means every
// pending line (legacy whole-order form).
type objetivoDeuda struct {
	lineIDs map[string]struct{}
}

// Crear converts selected pending lines into a debt: an immutable snapshot
// aggregated by product at today's resolved prices. Any validation failure
// aborts the whole request; no partial debt is ever created.
func (s *DeudaService) Crear(ctx context.Context, req dto.CrearDeudaRequest) (*dto.DeudaCreadaResponse, error) {
	objetivos := map[string]*objetivoDeuda{}
	var orden []string

	if len(req.Selections) > 0 {
		for _, seleccion := range req.Selections {
			if seleccion.OrderID == "" {
				continue
			}
			objetivo, ok := objetivos[seleccion.OrderID]
			if !ok {
				objetivo = &objetivoDeuda{lineIDs: map[string]struct{}{}}
				objetivos[seleccion.OrderID] = objetivo
				orden = append(orden, seleccion.OrderID)
			}
			for _, lineID := range seleccion.LineIDs {
				objetivo.lineIDs[lineID] = struct{}{}
			}
		}
	} else {
		for _, orderID := range req.OrderIDs {
			if orderID == "" {
				continue
			}
			if _, ok := objetivos[orderID]; ok {
				continue
			}
			objetivos[orderID] = &objetivoDeuda{}
			orden = append(orden, orderID)
		}
	}
	if len(orden) == 0 {
		return nil, apierror.Validation("Debes seleccionar al menos un pedido")
	}

	var creada model.Deuda

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		cliente := draft.BuscarCliente(req.ClientID)
		if cliente == nil {
			return apierror.NotFound("Cliente no encontrado")
		}

		now := model.ISO(s.clock.Now())
		deudaID := s.ids.NewID()

		itemsPorProducto := map[string]*model.DeudaItem{}
		var ordenProductos []string
		monto := decimal.Zero
		var tocados []*model.Pedido

		for _, orderID := range orden {
			pedido := draft.BuscarPedido(orderID)
			if pedido == nil {
				return apierror.NotFound("Pedido no encontrado")
			}
			if pedido.ClienteID != req.ClientID {
				return apierror.Validation(fmt.Sprintf("El pedido %s no pertenece al cliente", orderID))
			}
			if pedido.Estado != model.EstadoPendiente {
				return apierror.Conflict(fmt.Sprintf("El pedido %s ya no está pendiente", orderID))
			}

			objetivo := objetivos[orderID]
			aportadas := 0
			for i := range pedido.Items {
				linea := &pedido.Items[i]
				if linea.Status != model.LineaPendiente {
					continue
				}
				if objetivo.lineIDs != nil {
					if _, seleccionada := objetivo.lineIDs[linea.LineID]; !seleccionada {
						continue
					}
				}
				producto := draft.BuscarProducto(linea.ProductID)
				if producto == nil {
					continue
				}

				precio := draft.Pricing.ResolverPrecio(producto.ID, cliente.Comuna, producto.UnitPrice)
				subtotal := linea.Cantidad.Mul(precio)

				item, existe := itemsPorProducto[producto.ID]
				if !existe {
					item = &model.DeudaItem{
						ProductID: producto.ID,
						Name:      producto.Name,
						Unit:      model.NormalizeUnit(producto.Unit),
						UnitPrice: precio,
					}
					itemsPorProducto[producto.ID] = item
					ordenProductos = append(ordenProductos, producto.ID)
				}
				item.Quantity = item.Quantity.Add(linea.Cantidad)
				item.Subtotal = item.Subtotal.Add(subtotal)
				monto = monto.Add(subtotal)

				linea.Status = model.LineaDeuda
				aportadas++
			}

			if aportadas == 0 {
				return apierror.Conflict("La selección ya no está disponible. Actualiza el listado e inténtalo nuevamente.")
			}
			tocados = append(tocados, pedido)
		}

		if len(ordenProductos) == 0 || monto.LessThanOrEqual(decimal.Zero) {
			return apierror.Validation("La deuda debe tener un monto mayor a 0")
		}

		items := make([]model.DeudaItem, 0, len(ordenProductos))
		for _, productID := range ordenProductos {
			items = append(items, *itemsPorProducto[productID])
		}

		orderIDs := make([]string, 0, len(tocados))
		for _, pedido := range tocados {
			orderIDs = append(orderIDs, pedido.ID)
		}

		deuda := model.Deuda{
			ID:        deudaID,
			ClientID:  req.ClientID,
			OrderIDs:  orderIDs,
			Amount:    monto,
			Status:    model.DeudaPendiente,
			Note:      strings.TrimSpace(req.Note),
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		}
		draft.Debts = append(draft.Debts, deuda)

		// Debts count as a delivery-adjacent event for date tracking, so the
		// delivery date is stamped even when the recompute leaves the order
		// pendiente.
		for _, pedido := range tocados {
			pedido.Recalcular(now)
			pedido.DebtID = deudaID
			pedido.UpdatedAt = now
			if pedido.DeliveredAt == nil {
				entregado := now
				pedido.DeliveredAt = &entregado
			}
		}

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Deuda registrada: "+cliente.NombreCompleto,
			fmt.Sprintf("$%s · %s", formatoCLP(monto),
				pluralizar(len(items), "producto", "productos"))))

		creada = deuda
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeudaCreadaResponse{Debt: creada}, nil
}

func (s *DeudaService) Listar(ctx context.Context) (*dto.ListaDeudasResponse, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	deudas := make([]dto.DeudaConCliente, 0, len(doc.Debts))
	for _, deuda := range doc.Debts {
		deudas = append(deudas, dto.DeudaConCliente{
			Deuda:  deuda,
			Client: doc.BuscarCliente(deuda.ClientID),
		})
	}
	return &dto.ListaDeudasResponse{
		Debts:       deudas,
		GeneratedAt: model.ISO(s.clock.Now()),
	}, nil
}

// Pagar settles a debt: one income cashflow entry is created, the debt is
// marked paid and linked to it, and every order line still in deuda flips to
// entregado. Double payment is rejected, not silently accepted.
func (s *DeudaService) Pagar(ctx context.Context, id string, metodoPago string) (*dto.DeudaPagadaResponse, error) {
	resultado := &dto.DeudaPagadaResponse{}

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		deuda := draft.BuscarDeuda(id)
		if deuda == nil {
			return apierror.NotFound("Deuda no encontrada")
		}
		if deuda.Status == model.DeudaPagada {
			return apierror.Conflict("La deuda ya está pagada")
		}

		now := model.ISO(s.clock.Now())
		metodo := model.NormalizarMetodoPago(metodoPago)

		nombreCliente := "Cliente"
		if cliente := draft.BuscarCliente(deuda.ClientID); cliente != nil {
			nombreCliente = cliente.NombreCompleto
		}

		entrada := model.Movimiento{
			ID:            s.ids.NewID(),
			Type:          model.TipoIngreso,
			Amount:        deuda.Amount,
			Category:      "Cobranza",
			Description:   "Pago de deuda · " + nombreCliente,
			Date:          now,
			CreatedAt:     now,
			PaymentMethod: metodo,
		}
		draft.Cashflow = append(draft.Cashflow, entrada)

		pagado := now
		deuda.Status = model.DeudaPagada
		deuda.PaidAt = &pagado
		deuda.UpdatedAt = now
		deuda.CashflowEntryID = entrada.ID

		for _, orderID := range deuda.OrderIDs {
			pedido := draft.BuscarPedido(orderID)
			if pedido == nil {
				continue
			}
			for i := range pedido.Items {
				if pedido.Items[i].Status == model.LineaDeuda {
					pedido.Items[i].Status = model.LineaEntregada
				}
			}
			pedido.Recalcular(now)
			pedido.UpdatedAt = now
		}

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Deuda pagada: "+nombreCliente,
			fmt.Sprintf("$%s · %s", formatoCLP(deuda.Amount), metodo)))

		resultado.Debt = *deuda
		resultado.Entry = entrada
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}
