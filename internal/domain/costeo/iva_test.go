package costeo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierrosur/costos-api/internal/domain/costeo"
)

// tolerancia para comparar resultados de divisiones decimales periódicas.
var tolerancia = decimal.NewFromFloat(0.0000001)

func assertDecimalCercano(t *testing.T, esperado, obtenido decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, esperado.Sub(obtenido).Abs().LessThanOrEqual(tolerancia),
		"%s: esperado %s, obtenido %s", msg, esperado, obtenido)
}

func TestDesglosarIVA_Ejemplo21(t *testing.T) {
	d := costeo.DesglosarIVA(decimal.NewFromInt(121), decimal.NewFromInt(21))

	assertDecimalCercano(t, decimal.NewFromInt(100), d.Neto, "neto de 121 al 21%")
	assertDecimalCercano(t, decimal.NewFromInt(21), d.IVA, "IVA de 121 al 21%")
}

func TestDesglosarIVA_NetoMasIVAEsElBruto(t *testing.T) {
	bruto := decimal.RequireFromString("4235.50")
	d := costeo.DesglosarIVA(bruto, decimal.NewFromInt(21))

	require.True(t, d.Neto.Add(d.IVA).Equal(bruto),
		"neto + IVA debe reconstruir el bruto exactamente (IVA se define por resta)")
}

func TestDesglosarIVA_TasaCeroEsIdentidad(t *testing.T) {
	bruto := decimal.RequireFromString("999.99")
	d := costeo.DesglosarIVA(bruto, decimal.Zero)

	assert.True(t, d.Neto.Equal(bruto), "con tasa 0 el neto es el bruto")
	assert.True(t, d.IVA.IsZero(), "con tasa 0 el IVA es cero")
}

func TestDesglosarIVA_BrutoCero(t *testing.T) {
	d := costeo.DesglosarIVA(decimal.Zero, decimal.NewFromInt(21))

	assert.True(t, d.Neto.IsZero())
	assert.True(t, d.IVA.IsZero())
}

func TestComponerIVA_Ejemplo(t *testing.T) {
	bruto := costeo.ComponerIVA(decimal.NewFromInt(100), decimal.NewFromInt(21))
	assert.True(t, bruto.Equal(decimal.NewFromInt(121)), "100 neto al 21%% son 121 brutos, obtenido %s", bruto)
}

// TestIVA_RoundTrip verifica la propiedad de ida y vuelta: componer el neto de
// un desglose recupera el bruto original (a menos de la precisión decimal).
func TestIVA_RoundTrip(t *testing.T) {
	casos := []struct {
		bruto string
		tasa  string
	}{
		{"121", "21"},
		{"100", "21"},
		{"4235.50", "21"},
		{"0.01", "21"},
		{"850", "10.5"},
		{"99.99", "0"},
		{"12345.67", "27"},
	}
	for _, c := range casos {
		bruto := decimal.RequireFromString(c.bruto)
		tasa := decimal.RequireFromString(c.tasa)

		vuelta := costeo.ComponerIVA(costeo.DesglosarIVA(bruto, tasa).Neto, tasa)
		assertDecimalCercano(t, bruto, vuelta, "round-trip de "+c.bruto+" al "+c.tasa+"%")
	}
}
