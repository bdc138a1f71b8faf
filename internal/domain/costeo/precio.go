package costeo

import "github.com/shopspring/decimal"

// SugerenciaPrecio desglosa el precio de venta sugerido para un costo de
// producción bruto y un margen de ganancia.
type SugerenciaPrecio struct {
	CostoNeto      decimal.Decimal // costo de producción sin IVA
	CostoConMargen decimal.Decimal // costo neto + margen (sigue sin IVA)
	PrecioFinal    decimal.Decimal // precio de venta con IVA
}

// SugerirPrecio deriva el precio de venta: quita el IVA del costo bruto,
// aplica el margen sobre el costo neto y recompone el IVA al final.
// El orden es regla de negocio: el margen es un markup sobre el costo neto,
// no sobre el costo con IVA. Invertirlo cambia todos los precios sugeridos.
func SugerirPrecio(costoBruto, margenPorcentaje, tasaIVA decimal.Decimal) SugerenciaPrecio {
	neto := DesglosarIVA(costoBruto, tasaIVA).Neto
	conMargen := neto.Mul(uno.Add(margenPorcentaje.Div(cien)))
	return SugerenciaPrecio{
		CostoNeto:      neto,
		CostoConMargen: conMargen,
		PrecioFinal:    ComponerIVA(conMargen, tasaIVA),
	}
}
