package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostoProduccion registra el costo de fabricación de un producto del catálogo
// (relación uno a uno por ProductoID). Que un producto no tenga costo cargado
// es un estado válido: los cálculos dependientes degradan a costo cero.
type CostoProduccion struct {
	ProductoID     string
	Costo          decimal.Decimal // costo de producción unitario (IVA incluido)
	MargenGanancia decimal.Decimal // margen de ganancia (%), markup sobre el costo neto
	UpdatedAt      time.Time
}
