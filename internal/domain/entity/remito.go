package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Remito representa la cabecera de un remito de venta.
// Una vez persistido es inmutable: Total y los importes de línea quedan
// congelados al momento de la emisión y nunca se recalculan.
type Remito struct {
	ID        string
	Numero    int64
	ClienteID string
	Fecha     time.Time
	Total     decimal.Decimal // suma de los importes de línea (IVA incluido)
	CreatedAt time.Time
}

// RemitoItem representa una línea de un remito. Medida y Producto son texto
// desnormalizado (lo que se imprimió en el remito); el motor de costeo los
// reconcilia contra el catálogo a posteriori.
type RemitoItem struct {
	ID             string
	RemitoID       string
	Cantidad       int64
	Medida         string // descriptor serializado, ej. "20x20" o "20x20 Ø 4.2mm"
	Producto       string
	PrecioUnitario decimal.Decimal
	Importe        decimal.Decimal // Cantidad × PrecioUnitario, fijado al emitir
}
