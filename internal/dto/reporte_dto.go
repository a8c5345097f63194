package dto

import "github.com/shopspring/decimal"

type FilaInventario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
}

type TotalesInventario struct {
	TotalProducts int `json:"totalProducts"`
}

type ReporteInventarioResponse struct {
	GeneratedAt string            `json:"generatedAt"`
	Totals      TotalesInventario `json:"totals"`
	Rows        []FilaInventario  `json:"rows"`
}
