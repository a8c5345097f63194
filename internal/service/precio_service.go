package service

import (
	"context"
	"strings"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"
)

type PrecioService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewPrecioService(store repository.DocumentStore, clock Clock, ids IDGen) *PrecioService {
	return &PrecioService{store: store, clock: clock, ids: ids}
}

// GuardarOverride upserts one commune × product override. The reserved
// general key covers every product in the commune.
func (s *PrecioService) GuardarOverride(ctx context.Context, req dto.OverrideRequest) (*dto.OverridesResponse, error) {
	comuna := strings.TrimSpace(req.Comuna)
	productID := strings.TrimSpace(req.ProductID)
	if comuna == "" {
		return nil, apierror.Validation("comuna es requerida")
	}
	if productID == "" {
		return nil, apierror.Validation("productId es requerido")
	}

	doc, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		nombreProducto := "Todos los productos"
		if productID != model.GeneralPriceKey {
			producto := draft.BuscarProducto(productID)
			if producto == nil {
				return apierror.Validation("Producto no válido")
			}
			nombreProducto = producto.Name
		}

		overrides := draft.Pricing.PreciosPorComuna[comuna]
		if overrides == nil {
			overrides = model.ComunaOverride{}
			draft.Pricing.PreciosPorComuna[comuna] = overrides
		}
		overrides[productID] = req.Precio
		draft.Pricing.Normalize()

		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Precio por comuna actualizado",
			nombreProducto+" · "+comuna+" → $"+formatoCLP(req.Precio)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.OverridesResponse{Overrides: doc.Pricing.PreciosPorComuna}, nil
}
