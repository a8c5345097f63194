package service

import (
	"context"
	"strings"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"
)

type ClienteService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewClienteService(store repository.DocumentStore, clock Clock, ids IDGen) *ClienteService {
	return &ClienteService{store: store, clock: clock, ids: ids}
}

func (s *ClienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Clients, nil
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteCreadoResponse, error) {
	cliente := model.Cliente{
		ID:             s.ids.NewID(),
		NombreCompleto: strings.TrimSpace(req.NombreCompleto),
		Telefono:       strings.TrimSpace(req.Telefono),
		Direccion:      strings.TrimSpace(req.Direccion),
		Comuna:         strings.TrimSpace(req.Comuna),
		DiaReparto:     strings.TrimSpace(req.DiaReparto),
		Region:         strings.TrimSpace(req.Region),
	}

	detalle := cliente.Comuna + " · " + cliente.Telefono
	if cliente.DiaReparto != "" {
		detalle += " · Entrega " + cliente.DiaReparto
	}

	doc, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Clients = append(draft.Clients, cliente)
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Cliente agregado: "+cliente.NombreCompleto, detalle))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ClienteCreadoResponse{Client: cliente, ClientsTotal: len(doc.Clients)}, nil
}

func (s *ClienteService) Actualizar(ctx context.Context, id string, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	var actualizado model.Cliente

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		cliente := draft.BuscarCliente(id)
		if cliente == nil {
			return apierror.NotFound("Cliente no encontrado")
		}

		if req.Nombre != nil && req.NombreCompleto == nil {
			req.NombreCompleto = req.Nombre
		}
		if req.NombreCompleto != nil {
			cliente.NombreCompleto = strings.TrimSpace(*req.NombreCompleto)
		}
		if req.Telefono != nil {
			cliente.Telefono = strings.TrimSpace(*req.Telefono)
		}
		if req.Direccion != nil {
			cliente.Direccion = strings.TrimSpace(*req.Direccion)
		}
		if req.Comuna != nil {
			cliente.Comuna = strings.TrimSpace(*req.Comuna)
		}
		if req.DiaReparto != nil {
			cliente.DiaReparto = strings.TrimSpace(*req.DiaReparto)
		}
		if req.Region != nil {
			cliente.Region = strings.TrimSpace(*req.Region)
		}

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Cliente actualizado: "+cliente.NombreCompleto,
			descripcionCliente(cliente)))

		actualizado = *cliente
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar removes the client and every order that belonged to them.
func (s *ClienteService) Eliminar(ctx context.Context, id string) (*dto.ClienteEliminadoResponse, error) {
	resultado := &dto.ClienteEliminadoResponse{ClientID: id, RemovedOrders: []string{}}

	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		indice := -1
		for i := range draft.Clients {
			if draft.Clients[i].ID == id {
				indice = i
				break
			}
		}
		if indice == -1 {
			return apierror.NotFound("Cliente no encontrado")
		}
		eliminado := draft.Clients[indice]
		draft.Clients = append(draft.Clients[:indice], draft.Clients[indice+1:]...)

		restantes := draft.Orders[:0]
		for _, pedido := range draft.Orders {
			if pedido.ClienteID == id {
				resultado.RemovedOrders = append(resultado.RemovedOrders, pedido.ID)
				continue
			}
			restantes = append(restantes, pedido)
		}
		draft.Orders = restantes

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Cliente eliminado: "+eliminado.NombreCompleto,
			descripcionCliente(&eliminado)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

func descripcionCliente(cliente *model.Cliente) string {
	comuna := cliente.Comuna
	if comuna == "" {
		comuna = "Sin comuna"
	}
	telefono := cliente.Telefono
	if telefono == "" {
		telefono = "Sin teléfono"
	}
	return comuna + " · " + telefono
}
