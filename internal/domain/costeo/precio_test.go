package costeo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hierrosur/costos-api/internal/domain/costeo"
)

// TestSugerirPrecio_VectorDeReferencia valida el ejemplo de referencia del
// negocio: costo bruto 100 al 21% de IVA con margen 90%.
//
//	neto       = 100 / 1.21        ≈ 82.64
//	con margen = neto × 1.90       ≈ 157.02
//	final      = con margen × 1.21 ≈ 190.00
func TestSugerirPrecio_VectorDeReferencia(t *testing.T) {
	s := costeo.SugerirPrecio(
		decimal.NewFromInt(100),
		decimal.NewFromInt(90),
		decimal.NewFromInt(21),
	)

	assert.Equal(t, "82.64", s.CostoNeto.Round(2).StringFixed(2))
	assert.Equal(t, "157.02", s.CostoConMargen.Round(2).StringFixed(2))
	assert.Equal(t, "190.00", s.PrecioFinal.Round(2).StringFixed(2))
}

// TestSugerirPrecio_ElMargenSeAplicaSobreElNeto fija el orden de las
// operaciones: margen sobre el costo sin IVA y el IVA se recompone al final.
// Aplicar el margen sobre el bruto daría otro precio.
func TestSugerirPrecio_ElMargenSeAplicaSobreElNeto(t *testing.T) {
	bruto := decimal.NewFromInt(121)
	tasa := decimal.NewFromInt(21)
	margen := decimal.NewFromInt(50)

	s := costeo.SugerirPrecio(bruto, margen, tasa)

	// neto 100, con margen 150, final 181.50
	assertDecimalCercano(t, decimal.NewFromInt(100), s.CostoNeto, "costo neto")
	assertDecimalCercano(t, decimal.NewFromInt(150), s.CostoConMargen, "costo con margen")
	assertDecimalCercano(t, decimal.RequireFromString("181.50"), s.PrecioFinal, "precio final")

	// contraejemplo: margen sobre el bruto sería 121×1.5 = 181.50 *sin* volver
	// a componer IVA; con IVA recompuesto daría 219.615, nunca 181.50 por la
	// misma vía. El camino correcto pasa por el neto.
	margenSobreBruto := bruto.Mul(decimal.RequireFromString("1.5"))
	conIVA := costeo.ComponerIVA(margenSobreBruto, tasa)
	assert.False(t, conIVA.Sub(s.PrecioFinal).Abs().LessThan(decimal.NewFromInt(1)),
		"invertir el orden cambia el precio sugerido")
}

func TestSugerirPrecio_MargenCero(t *testing.T) {
	// sin margen, el precio final reconstruye el costo bruto
	s := costeo.SugerirPrecio(decimal.RequireFromString("605"), decimal.Zero, decimal.NewFromInt(21))
	assertDecimalCercano(t, decimal.RequireFromString("605"), s.PrecioFinal, "margen 0 es neutro")
}
