package dto

import (
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

type CrearMovimientoRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
}

type MovimientoCreadoResponse struct {
	Entry   model.Movimiento      `json:"entry"`
	Summary model.ResumenCashflow `json:"summary"`
}

type ListaCashflowResponse struct {
	Transactions []model.Movimiento    `json:"transactions"`
	Summary      model.ResumenCashflow `json:"summary"`
	GeneratedAt  string                `json:"generatedAt"`
}

type MovimientoEliminadoResponse struct {
	Removed string `json:"removed"`
}
