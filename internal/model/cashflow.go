package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	TipoIngreso = "ingreso"
	TipoEgreso  = "egreso"
)

const (
	MetodoEfectivo      = "efectivo"
	MetodoTransferencia = "transferencia"
	MetodoOtro          = "otro"
)

// Movimiento is a single dated income/expense transaction. The ledger is
// append-only except for explicit delete-by-id.
type Movimiento struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	CreatedAt     string          `json:"createdAt"`
	PaymentMethod string          `json:"paymentMethod"`
}

// NormalizarMetodoPago folds any input into the three supported methods.
func NormalizarMetodoPago(metodo string) string {
	switch strings.ToLower(strings.TrimSpace(metodo)) {
	case MetodoEfectivo:
		return MetodoEfectivo
	case MetodoTransferencia:
		return MetodoTransferencia
	default:
		return MetodoOtro
	}
}

// ResumenCashflow carries the running totals derived from the full ledger.
// Cash and bank are net positions gated on the payment method; entries with
// method "otro" affect the totals but neither breakdown.
type ResumenCashflow struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	Cash         decimal.Decimal `json:"cash"`
	Bank         decimal.Decimal `json:"bank"`
}

// CalcularResumen scans the whole ledger and computes the summary.
func CalcularResumen(movimientos []Movimiento) ResumenCashflow {
	resumen := ResumenCashflow{}
	for _, mov := range movimientos {
		signo := decimal.NewFromInt(1)
		switch mov.Type {
		case TipoIngreso:
			resumen.TotalIncome = resumen.TotalIncome.Add(mov.Amount)
		case TipoEgreso:
			resumen.TotalExpense = resumen.TotalExpense.Add(mov.Amount)
			signo = decimal.NewFromInt(-1)
		default:
			continue
		}

		switch mov.PaymentMethod {
		case MetodoEfectivo:
			resumen.Cash = resumen.Cash.Add(mov.Amount.Mul(signo))
		case MetodoTransferencia:
			resumen.Bank = resumen.Bank.Add(mov.Amount.Mul(signo))
		}
	}
	resumen.Balance = resumen.TotalIncome.Sub(resumen.TotalExpense)
	return resumen
}
