// Package costeo implementa el motor de reconciliación costo/margen/IVA:
// desglose de montos con IVA incluido, matching de líneas de remito contra el
// catálogo, costo real por remito y por cartera de cliente, precio sugerido y
// estimación de material para estribos. Todo es puro y determinista: ninguna
// función hace I/O ni guarda estado, por lo que pueden invocarse en paralelo
// sobre remitos o líneas independientes sin coordinación.
package costeo

import "github.com/shopspring/decimal"

var (
	uno  = decimal.NewFromInt(1)
	dos  = decimal.NewFromInt(2)
	cien = decimal.NewFromInt(100)
)

// Desglose es el resultado de separar un monto bruto en neto e IVA contenido.
type Desglose struct {
	Neto decimal.Decimal
	IVA  decimal.Decimal
}

// DesglosarIVA separa un monto con IVA incluido en neto e impuesto:
// neto = bruto / (1 + tasa/100), iva = bruto - neto.
// Con tasa 0 devuelve {bruto, 0}. Es función total sobre montos y tasas no
// negativos; una tasa negativa da un resultado matemáticamente definido pero
// sin sentido comercial (validarla es responsabilidad del caller).
func DesglosarIVA(bruto, tasaPorcentaje decimal.Decimal) Desglose {
	neto := bruto.Div(uno.Add(tasaPorcentaje.Div(cien)))
	return Desglose{Neto: neto, IVA: bruto.Sub(neto)}
}

// ComponerIVA es la operación inversa: bruto = neto * (1 + tasa/100).
func ComponerIVA(neto, tasaPorcentaje decimal.Decimal) decimal.Decimal {
	return neto.Mul(uno.Add(tasaPorcentaje.Div(cien)))
}
