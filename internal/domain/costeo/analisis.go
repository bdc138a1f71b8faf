package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/domain/entity"
)

// AnalisisRemito es la rentabilidad real de un remito contra los costos de
// producción registrados. Todas las cifras son derivadas: se calculan a
// demanda sobre el snapshot recibido y nunca se persisten.
type AnalisisRemito struct {
	CostoTotal   decimal.Decimal // Σ costo de producción resuelto por línea
	GananciaReal decimal.Decimal // Total del remito − CostoTotal; puede ser negativa
	IVAVenta     decimal.Decimal // IVA contenido en el total cobrado (crédito fiscal)
	IVACosto     decimal.Decimal // IVA contenido en los costos resueltos (débito fiscal)
	// CostosIncompletos indica que al menos una línea quedó sin costo (sin
	// producto en el catálogo o sin costo cargado). Las cifras siguen siendo
	// computables; la UI debería mostrar el aviso "configurá costos para ver
	// cifras reales" en lugar de implicar que el negocio no tiene gastos.
	CostosIncompletos bool
	ItemsSinCosto     int
}

// AnalizarRemito agrega el costo resuelto de cada línea y calcula ganancia
// real e IVA de venta y de costo. No tiene condiciones de error: un remito
// sin ningún costo resoluble reporta CostoTotal cero, GananciaReal igual al
// total y la bandera de costos incompletos encendida.
func AnalizarRemito(
	remito entity.Remito,
	items []entity.RemitoItem,
	catalogo []entity.Producto,
	costos map[string]entity.CostoProduccion,
	tasaIVA decimal.Decimal,
) AnalisisRemito {
	a := AnalisisRemito{}
	for _, item := range items {
		res := ResolverCostoItem(item, catalogo, costos)
		if res.Estado != CostoResuelto {
			a.CostosIncompletos = true
			a.ItemsSinCosto++
			continue
		}
		a.CostoTotal = a.CostoTotal.Add(res.Importe)
		a.IVACosto = a.IVACosto.Add(DesglosarIVA(res.Importe, tasaIVA).IVA)
	}
	a.GananciaReal = remito.Total.Sub(a.CostoTotal)
	a.IVAVenta = DesglosarIVA(remito.Total, tasaIVA).IVA
	return a
}
