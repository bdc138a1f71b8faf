package dto

import "github.com/shopspring/decimal"

// ProductoRequest alta/modificación de una entrada del catálogo.
type ProductoRequest struct {
	Nombre   string          `json:"nombre"`
	Medida   string          `json:"medida"`
	Diametro string          `json:"diametro,omitempty"`
	Forma    string          `json:"forma,omitempty"`
	Precio   decimal.Decimal `json:"precio"`
}

// ProductoResponse entrada del catálogo con su costo, si está cargado.
type ProductoResponse struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre"`
	Medida   string          `json:"medida"`
	Diametro string          `json:"diametro,omitempty"`
	Forma    string          `json:"forma,omitempty"`
	Precio   decimal.Decimal `json:"precio"`
	Costo    *CostoResponse  `json:"costo,omitempty"`
}

// CostoRequest carga del costo de producción de un producto.
type CostoRequest struct {
	Costo          decimal.Decimal `json:"costo"`            // IVA incluido
	MargenGanancia decimal.Decimal `json:"margen_ganancia"` // %
}

// CostoResponse costo de producción registrado.
type CostoResponse struct {
	Costo          decimal.Decimal `json:"costo"`
	MargenGanancia decimal.Decimal `json:"margen_ganancia"`
}
