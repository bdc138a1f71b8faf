package costeo_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hierrosur/costos-api/internal/domain/costeo"
	"github.com/hierrosur/costos-api/internal/domain/entity"
)

func remitoDePrueba(items []entity.RemitoItem) entity.Remito {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Importe)
	}
	return entity.Remito{
		ID:        "r1",
		Numero:    1042,
		ClienteID: "c1",
		Fecha:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Total:     total,
	}
}

func TestAnalizarRemito_CostoYGanancia(t *testing.T) {
	items := []entity.RemitoItem{
		item(10, "20x20 Ø 4.2mm", "Estribo", "500"),      // costo 302.50 × 10 = 3025
		item(2, "1.5 pulgadas", "Caño estructural", "1200"), // costo 800 × 2 = 1600
	}
	remito := remitoDePrueba(items) // total 5000 + 2400 = 7400
	tasa := decimal.NewFromInt(21)

	a := costeo.AnalizarRemito(remito, items, catalogoDePrueba(), costosDePrueba(), tasa)

	assert.True(t, a.CostoTotal.Equal(decimal.NewFromInt(4625)), "costo total, obtenido %s", a.CostoTotal)
	assert.True(t, a.GananciaReal.Equal(decimal.NewFromInt(2775)), "ganancia real = 7400 − 4625")
	assert.False(t, a.CostosIncompletos)
	assert.Zero(t, a.ItemsSinCosto)

	// IVA venta sobre el total; IVA costo como suma por línea resuelta
	assertDecimalCercano(t, costeo.DesglosarIVA(remito.Total, tasa).IVA, a.IVAVenta, "IVA venta")
	esperadoIVACosto := costeo.DesglosarIVA(decimal.NewFromInt(3025), tasa).IVA.
		Add(costeo.DesglosarIVA(decimal.NewFromInt(1600), tasa).IVA)
	assertDecimalCercano(t, esperadoIVACosto, a.IVACosto, "IVA costo")
}

func TestAnalizarRemito_GananciaNegativaEsValida(t *testing.T) {
	// vendido por debajo del costo: estado reportable, no error
	items := []entity.RemitoItem{item(10, "20x20 Ø 4.2mm", "Estribo", "100")} // venta 1000, costo 3025
	a := costeo.AnalizarRemito(remitoDePrueba(items), items, catalogoDePrueba(), costosDePrueba(), decimal.NewFromInt(21))

	assert.True(t, a.GananciaReal.IsNegative(), "ganancia esperada negativa, obtenida %s", a.GananciaReal)
}

func TestAnalizarRemito_SinCostosConfigurados(t *testing.T) {
	items := []entity.RemitoItem{
		item(1, "99x99", "Inexistente", "350"),
		item(2, "20x20 Ø 6mm", "Estribo", "700"), // producto sin costo cargado
	}
	remito := remitoDePrueba(items)

	a := costeo.AnalizarRemito(remito, items, catalogoDePrueba(), costosDePrueba(), decimal.NewFromInt(21))

	assert.True(t, a.CostoTotal.IsZero(), "sin costos resolubles el costo total es 0")
	assert.True(t, a.GananciaReal.Equal(remito.Total), "la ganancia aparente es el total")
	assert.True(t, a.CostosIncompletos, "la bandera avisa que las cifras no son reales")
	assert.Equal(t, 2, a.ItemsSinCosto)
}

func TestAnalizarRemito_UnaLineaSinCostoEnciendeLaBandera(t *testing.T) {
	items := []entity.RemitoItem{
		item(10, "20x20 Ø 4.2mm", "Estribo", "500"),
		item(1, "99x99", "Inexistente", "350"),
	}
	a := costeo.AnalizarRemito(remitoDePrueba(items), items, catalogoDePrueba(), costosDePrueba(), decimal.NewFromInt(21))

	assert.True(t, a.CostosIncompletos)
	assert.Equal(t, 1, a.ItemsSinCosto)
	assert.True(t, a.CostoTotal.Equal(decimal.NewFromInt(3025)), "las líneas resueltas igual suman")
}

// TestAnalizarRemito_AsociatividadPorParticion verifica que el costo total del
// remito completo es la suma de resolver cada grupo de líneas por separado,
// para cualquier partición.
func TestAnalizarRemito_AsociatividadPorParticion(t *testing.T) {
	items := []entity.RemitoItem{
		item(10, "20x20 Ø 4.2mm", "Estribo", "500"),
		item(2, "1.5 pulgadas", "Caño estructural", "1200"),
		item(1, "99x99", "Inexistente", "350"),
		item(7, "20x20 Ø 4.2mm", "Estribo", "480"),
	}
	completo := costeo.AnalizarRemito(remitoDePrueba(items), items, catalogoDePrueba(), costosDePrueba(), decimal.NewFromInt(21))

	for corte := 0; corte <= len(items); corte++ {
		suma := decimal.Zero
		for _, grupo := range [][]entity.RemitoItem{items[:corte], items[corte:]} {
			for _, it := range grupo {
				suma = suma.Add(costeo.ResolverCostoItem(it, catalogoDePrueba(), costosDePrueba()).Importe)
			}
		}
		assert.True(t, completo.CostoTotal.Equal(suma),
			"partición en %d: %s vs %s", corte, completo.CostoTotal, suma)
	}
}
