// Package model defines the persisted document and its entities. The whole
// application state lives in one JSON document; every entity keeps the wire
// field names the frontend already speaks.
package model

import "time"

// FormatoISO matches JavaScript's Date.toISOString output so persisted
// timestamps stay byte-identical across round trips.
const FormatoISO = "2006-01-02T15:04:05.000Z"

// ISO formats a timestamp the way the document stores every date.
func ISO(t time.Time) string {
	return t.UTC().Format(FormatoISO)
}

// Settings carries the operator-editable catalogs used by the UI forms.
type Settings struct {
	Comunas     []string `json:"comunas"`
	DiasReparto []string `json:"diasReparto"`
}

// Documento is the single persisted root. All entities are plain records
// referenced by id; deletion is explicit and cascading.
type Documento struct {
	Products   []Producto   `json:"products"`
	Clients    []Cliente    `json:"clients"`
	Orders     []Pedido     `json:"orders"`
	Debts      []Deuda      `json:"debts"`
	Cashflow   []Movimiento `json:"cashflow"`
	Pricing    Pricing      `json:"pricing"`
	Activities []Actividad  `json:"activities"`
	Settings   Settings     `json:"settings"`
}

// NuevoDocumento returns an empty, fully-shaped document.
func NuevoDocumento() *Documento {
	d := &Documento{}
	d.EnsureShape()
	return d
}

// EnsureShape replaces nil sections with empty ones so readers never have to
// nil-check collections. Called after every load.
func (d *Documento) EnsureShape() {
	if d.Products == nil {
		d.Products = []Producto{}
	}
	if d.Clients == nil {
		d.Clients = []Cliente{}
	}
	if d.Orders == nil {
		d.Orders = []Pedido{}
	}
	if d.Debts == nil {
		d.Debts = []Deuda{}
	}
	if d.Cashflow == nil {
		d.Cashflow = []Movimiento{}
	}
	if d.Activities == nil {
		d.Activities = []Actividad{}
	}
	if d.Pricing.PreciosPorComuna == nil {
		d.Pricing.PreciosPorComuna = map[string]ComunaOverride{}
	}
	if d.Settings.Comunas == nil {
		d.Settings.Comunas = []string{}
	}
	if d.Settings.DiasReparto == nil {
		d.Settings.DiasReparto = []string{}
	}
}

func (d *Documento) BuscarProducto(id string) *Producto {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

func (d *Documento) BuscarCliente(id string) *Cliente {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

func (d *Documento) BuscarPedido(id string) *Pedido {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Documento) BuscarDeuda(id string) *Deuda {
	for i := range d.Debts {
		if d.Debts[i].ID == id {
			return &d.Debts[i]
		}
	}
	return nil
}
