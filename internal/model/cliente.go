package model

type Cliente struct {
	ID             string `json:"id"`
	NombreCompleto string `json:"nombreCompleto"`
	Telefono       string `json:"telefono"`
	Direccion      string `json:"direccion"`
	Comuna         string `json:"comuna"`
	DiaReparto     string `json:"diaReparto,omitempty"`
	Region         string `json:"region,omitempty"`
}
