package dto

import "github.com/shopspring/decimal"

// RemitoItemRequest línea de un remito a emitir.
type RemitoItemRequest struct {
	Cantidad       int64           `json:"cantidad"`
	Medida         string          `json:"medida"`
	Producto       string          `json:"producto"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateRemitoRequest emisión de un remito.
type CreateRemitoRequest struct {
	ClienteID string              `json:"cliente_id"`
	Items     []RemitoItemRequest `json:"items"`
}

// RemitoItemResponse línea emitida (importe congelado).
type RemitoItemResponse struct {
	ID             string          `json:"id"`
	Cantidad       int64           `json:"cantidad"`
	Medida         string          `json:"medida"`
	Producto       string          `json:"producto"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
}

// RemitoResponse remito completo.
type RemitoResponse struct {
	ID        string               `json:"id"`
	Numero    int64                `json:"numero"`
	ClienteID string               `json:"cliente_id"`
	Cliente   string               `json:"cliente,omitempty"`
	Fecha     string               `json:"fecha"`
	Total     decimal.Decimal      `json:"total"`
	Items     []RemitoItemResponse `json:"items,omitempty"`
}

// ClienteRequest alta de cliente.
type ClienteRequest struct {
	Nombre    string `json:"nombre"`
	CUIT      string `json:"cuit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ClienteResponse cliente.
type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	CUIT      string `json:"cuit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}
