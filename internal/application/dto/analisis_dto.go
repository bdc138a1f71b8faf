package dto

import "github.com/shopspring/decimal"

// AnalisisRemitoDTO rentabilidad real de un remito. Montos redondeados a 2
// decimales en este borde; el motor calcula con precisión completa.
type AnalisisRemitoDTO struct {
	RemitoID     string          `json:"remito_id"`
	Numero       int64           `json:"numero"`
	Total        decimal.Decimal `json:"total"`
	CostoTotal   decimal.Decimal `json:"costo_total"`
	GananciaReal decimal.Decimal `json:"ganancia_real"`
	IVAVenta     decimal.Decimal `json:"iva_venta"`
	IVACosto     decimal.Decimal `json:"iva_costo"`
	// CostosIncompletos pide a la UI el aviso "configurá costos para ver
	// cifras reales" en lugar de presentar gasto cero como un hecho.
	CostosIncompletos bool `json:"costos_incompletos"`
	ItemsSinCosto     int  `json:"items_sin_costo,omitempty"`
}

// RentabilidadClienteDTO acumulado del historial completo de un cliente.
type RentabilidadClienteDTO struct {
	ClienteID         string          `json:"cliente_id"`
	Cliente           string          `json:"cliente"`
	Remitos           int             `json:"remitos"`
	VentasTotales     decimal.Decimal `json:"ventas_totales"`
	CostoTotal        decimal.Decimal `json:"costo_total"`
	GananciaTotal     decimal.Decimal `json:"ganancia_total"`
	IVACredito        decimal.Decimal `json:"iva_credito"`
	IVADebito         decimal.Decimal `json:"iva_debito"`
	IVASaldo          decimal.Decimal `json:"iva_saldo"`
	CostosIncompletos bool            `json:"costos_incompletos"`
}

// SugerenciaPrecioRequest pedido de precio sugerido.
// Si ProductoID está presente, costo y margen salen del registro cargado;
// si no, se usan los valores del cuerpo.
type SugerenciaPrecioRequest struct {
	ProductoID     string          `json:"producto_id,omitempty"`
	Costo          decimal.Decimal `json:"costo,omitempty"`            // IVA incluido
	MargenGanancia decimal.Decimal `json:"margen_ganancia,omitempty"` // %
}

// SugerenciaPrecioDTO desglose del precio sugerido.
type SugerenciaPrecioDTO struct {
	CostoNeto      decimal.Decimal `json:"costo_neto"`
	CostoConMargen decimal.Decimal `json:"costo_con_margen"`
	PrecioFinal    decimal.Decimal `json:"precio_final"`
	TasaIVA        decimal.Decimal `json:"tasa_iva"`
}

// EstimacionEstriboRequest pedido de estimación de material.
// KgPorMetro y PrecioPorKg vacíos usan los valores configurados.
type EstimacionEstriboRequest struct {
	Medida      string          `json:"medida"`
	Forma       string          `json:"forma,omitempty"`
	KgPorMetro  decimal.Decimal `json:"kg_por_metro,omitempty"`
	PrecioPorKg decimal.Decimal `json:"precio_por_kg,omitempty"`
}

// EstimacionEstriboDTO resultado de la estimación.
type EstimacionEstriboDTO struct {
	Medida        string          `json:"medida"`
	Forma         string          `json:"forma,omitempty"`
	MetrosUnidad  decimal.Decimal `json:"metros_por_unidad"`
	CostoMaterial decimal.Decimal `json:"costo_material"`
	// MedidaValida en falso indica que la medida no se pudo interpretar y los
	// valores quedaron en cero.
	MedidaValida bool `json:"medida_valida"`
}
