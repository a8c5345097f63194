package service

import (
	"context"
	"strings"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

const categoriaPorDefecto = "General"

type ProductoService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewProductoService(store repository.DocumentStore, clock Clock, ids IDGen) *ProductoService {
	return &ProductoService{store: store, clock: clock, ids: ids}
}

func (s *ProductoService) Listar(ctx context.Context) ([]model.Producto, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	productos := make([]model.Producto, len(doc.Products))
	for i, producto := range doc.Products {
		producto.Unit = model.NormalizeUnit(producto.Unit)
		productos[i] = producto
	}
	return productos, nil
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	categoria := strings.TrimSpace(req.Category)
	if categoria == "" {
		categoria = categoriaPorDefecto
	}
	precio := decimal.Zero
	if req.UnitPrice != nil {
		precio = *req.UnitPrice
	}

	producto := model.Producto{
		ID:        s.ids.NewID(),
		Name:      req.Name,
		UnitPrice: precio,
		Category:  categoria,
		Notes:     strings.TrimSpace(req.Notes),
		Unit:      model.NormalizeUnit(req.Unit),
	}

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products = append(draft.Products, producto)
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Producto creado: "+producto.Name,
			"Nuevo producto agregado al inventario"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, id string, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	var actualizado model.Producto

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		producto := draft.BuscarProducto(id)
		if producto == nil {
			return apierror.NotFound("Producto no encontrado")
		}

		if req.Name != nil {
			producto.Name = strings.TrimSpace(*req.Name)
		}
		if req.UnitPrice != nil {
			producto.UnitPrice = *req.UnitPrice
		}
		if req.Category != nil {
			categoria := strings.TrimSpace(*req.Category)
			if categoria == "" {
				categoria = categoriaPorDefecto
			}
			producto.Category = categoria
		}
		if req.Notes != nil {
			producto.Notes = strings.TrimSpace(*req.Notes)
		}
		if req.Unit != nil {
			producto.Unit = model.NormalizeUnit(*req.Unit)
		}

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Producto actualizado: "+producto.Name,
			"Se actualizaron detalles del producto."))

		actualizado = *producto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// CambiarPrecio updates only the base price, as its own operation so the
// activity log records the price change explicitly.
func (s *ProductoService) CambiarPrecio(ctx context.Context, id string, precio decimal.Decimal) (*model.Producto, error) {
	var actualizado model.Producto

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		producto := draft.BuscarProducto(id)
		if producto == nil {
			return apierror.NotFound("Producto no encontrado")
		}
		producto.UnitPrice = precio
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Precio actualizado: "+producto.Name,
			"Nuevo precio unidad $"+formatoCLP(precio)))
		actualizado = *producto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar removes a product and cascades: commune overrides lose the
// product's entry, order lines referencing it disappear, and orders left
// without lines are removed entirely. Orders that keep lines get their state
// recomputed since the line set changed.
func (s *ProductoService) Eliminar(ctx context.Context, id string) (*dto.ProductoEliminadoResponse, error) {
	resultado := &dto.ProductoEliminadoResponse{
		ProductID:      id,
		AdjustedOrders: []string{},
		RemovedOrders:  []string{},
	}

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		indice := -1
		for i := range draft.Products {
			if draft.Products[i].ID == id {
				indice = i
				break
			}
		}
		if indice == -1 {
			return apierror.NotFound("Producto no encontrado")
		}
		eliminado := draft.Products[indice]
		draft.Products = append(draft.Products[:indice], draft.Products[indice+1:]...)

		for _, overrides := range draft.Pricing.PreciosPorComuna {
			delete(overrides, id)
		}
		draft.Pricing.Normalize()

		now := model.ISO(s.clock.Now())
		restantes := draft.Orders[:0]
		for i := range draft.Orders {
			pedido := draft.Orders[i]
			filtradas := pedido.Items[:0]
			for _, linea := range pedido.Items {
				if linea.ProductID != id {
					filtradas = append(filtradas, linea)
				}
			}
			if len(filtradas) == 0 && len(pedido.Items) > 0 {
				resultado.RemovedOrders = append(resultado.RemovedOrders, pedido.ID)
				continue
			}
			if len(filtradas) != len(pedido.Items) {
				pedido.Items = filtradas
				pedido.Recalcular(now)
				pedido.UpdatedAt = now
				resultado.AdjustedOrders = append(resultado.AdjustedOrders, pedido.ID)
			}
			restantes = append(restantes, pedido)
		}
		draft.Orders = restantes

		var partes []string
		if n := len(resultado.AdjustedOrders); n > 0 {
			partes = append(partes, pluralizar(n, "pedido actualizado", "pedidos actualizados"))
		}
		if n := len(resultado.RemovedOrders); n > 0 {
			partes = append(partes, pluralizar(n, "pedido eliminado", "pedidos eliminados"))
		}
		detalle := "Producto removido del inventario"
		if len(partes) > 0 {
			detalle = strings.Join(partes, " · ")
		}
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Producto eliminado: "+eliminado.Name, detalle))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}
