package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/domain/entity"
)

// RemitoConItems empaqueta un remito con sus líneas para el análisis de cartera.
type RemitoConItems struct {
	Remito entity.Remito
	Items  []entity.RemitoItem
}

// ResumenCartera acumula el análisis de un conjunto arbitrario de remitos,
// típicamente el historial completo de un cliente.
type ResumenCartera struct {
	Remitos           int
	VentasTotales     decimal.Decimal
	CostoTotal        decimal.Decimal
	GananciaTotal     decimal.Decimal
	IVACredito        decimal.Decimal // crédito fiscal: IVA contenido en los costos resueltos
	IVADebito         decimal.Decimal // débito fiscal: IVA contenido en lo facturado
	IVASaldo          decimal.Decimal // débito − crédito: positivo es IVA a pagar
	CostosIncompletos bool
}

// AgregarCartera corre AnalizarRemito por cada remito y suma campo a campo.
// La suma es asociativa e independiente del orden: agregar los remitos de a
// uno da lo mismo que agregar todas las líneas juntas. Una lista vacía
// devuelve el resumen en cero.
func AgregarCartera(
	remitos []RemitoConItems,
	catalogo []entity.Producto,
	costos map[string]entity.CostoProduccion,
	tasaIVA decimal.Decimal,
) ResumenCartera {
	r := ResumenCartera{}
	for _, rc := range remitos {
		a := AnalizarRemito(rc.Remito, rc.Items, catalogo, costos, tasaIVA)
		r.Remitos++
		r.VentasTotales = r.VentasTotales.Add(rc.Remito.Total)
		r.CostoTotal = r.CostoTotal.Add(a.CostoTotal)
		r.GananciaTotal = r.GananciaTotal.Add(a.GananciaReal)
		r.IVACredito = r.IVACredito.Add(a.IVACosto)
		r.IVADebito = r.IVADebito.Add(a.IVAVenta)
		r.CostosIncompletos = r.CostosIncompletos || a.CostosIncompletos
	}
	r.IVASaldo = r.IVADebito.Sub(r.IVACredito)
	return r
}
