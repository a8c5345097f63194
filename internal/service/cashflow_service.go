package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/apierror"
	"github.com/AlonsoDiaz/web-inventario/internal/dto"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

type CashflowService struct {
	store repository.DocumentStore
	clock Clock
	ids   IDGen
}

func NewCashflowService(store repository.DocumentStore, clock Clock, ids IDGen) *CashflowService {
	return &CashflowService{store: store, clock: clock, ids: ids}
}

// Listar returns the full history, newest first, with running totals.
// Date-range filtering is a view concern and stays out of the API.
func (s *CashflowService) Listar(ctx context.Context) (*dto.ListaCashflowResponse, error) {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	transacciones := make([]model.Movimiento, len(doc.Cashflow))
	copy(transacciones, doc.Cashflow)
	sort.SliceStable(transacciones, func(i, j int) bool {
		return fechaEfectiva(transacciones[i]) > fechaEfectiva(transacciones[j])
	})

	return &dto.ListaCashflowResponse{
		Transactions: transacciones,
		Summary:      model.CalcularResumen(doc.Cashflow),
		GeneratedAt:  model.ISO(s.clock.Now()),
	}, nil
}

func (s *CashflowService) Crear(ctx context.Context, req dto.CrearMovimientoRequest) (*dto.MovimientoCreadoResponse, error) {
	tipo := model.TipoIngreso
	if req.Type == model.TipoEgreso {
		tipo = model.TipoEgreso
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apierror.Validation("amount debe ser numérico y mayor a 0")
	}

	now := model.ISO(s.clock.Now())
	fecha := now
	if strings.TrimSpace(req.Date) != "" {
		parseada, err := parsearFecha(req.Date)
		if err != nil {
			return nil, apierror.Validation("date no es válida")
		}
		fecha = model.ISO(parseada)
	}

	entrada := model.Movimiento{
		ID:            s.ids.NewID(),
		Type:          tipo,
		Amount:        req.Amount,
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		Date:          fecha,
		CreatedAt:     now,
		PaymentMethod: model.NormalizarMetodoPago(req.PaymentMethod),
	}

	titulo := "Ingreso registrado"
	if tipo == model.TipoEgreso {
		titulo = "Egreso registrado"
	}
	categoria := entrada.Category
	if categoria == "" {
		categoria = "Sin categoría"
	}

	doc, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Cashflow = append(draft.Cashflow, entrada)
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			titulo, categoria+" · $"+formatoCLP(entrada.Amount)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoCreadoResponse{
		Entry:   entrada,
		Summary: model.CalcularResumen(doc.Cashflow),
	}, nil
}

// Eliminar drops one entry by id. A debt keeps its cashflowEntryId even if
// the entry it points to is deleted; the link is one-directional.
func (s *CashflowService) Eliminar(ctx context.Context, id string) (*dto.MovimientoEliminadoResponse, error) {
	_, err := s.store.Mutate(ctx, func(draft *model.Documento) error {
		indice := -1
		for i := range draft.Cashflow {
			if draft.Cashflow[i].ID == id {
				indice = i
				break
			}
		}
		if indice == -1 {
			return apierror.NotFound("Movimiento no encontrado")
		}
		eliminado := draft.Cashflow[indice]
		draft.Cashflow = append(draft.Cashflow[:indice], draft.Cashflow[indice+1:]...)

		categoria := eliminado.Category
		if categoria == "" {
			categoria = "Sin categoría"
		}
		draft.RegistrarActividad(nuevaActividad(s.ids, s.clock,
			"Movimiento eliminado", categoria+" · $"+formatoCLP(eliminado.Amount)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoEliminadoResponse{Removed: id}, nil
}

// fechaEfectiva orders entries by their user-supplied date, falling back to
// the creation timestamp. ISO strings compare chronologically as text.
func fechaEfectiva(mov model.Movimiento) string {
	if mov.Date != "" {
		return mov.Date
	}
	return mov.CreatedAt
}

func parsearFecha(valor string) (time.Time, error) {
	valor = strings.TrimSpace(valor)
	if t, err := time.Parse(time.RFC3339, valor); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", valor)
}
