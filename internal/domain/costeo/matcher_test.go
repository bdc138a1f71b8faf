package costeo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierrosur/costos-api/internal/domain/costeo"
	"github.com/hierrosur/costos-api/internal/domain/entity"
)

// ─── ParseMedida ──────────────────────────────────────────────────────────────

func TestParseMedida_SinDiametro(t *testing.T) {
	d := costeo.ParseMedida("20x20", "Estribo")

	assert.Equal(t, "20x20", d.Medida)
	assert.Empty(t, d.Diametro)
	assert.False(t, d.TieneDiametro())
	assert.Equal(t, "Estribo", d.Nombre)
}

func TestParseMedida_ConDiametroYSufijo(t *testing.T) {
	d := costeo.ParseMedida("20x20 Ø 4.2mm", "Estribo")

	assert.Equal(t, "20x20", d.Medida)
	assert.Equal(t, "4.2", d.Diametro, "el sufijo mm se descarta")
	assert.True(t, d.TieneDiametro())
}

func TestParseMedida_DiametroSinSufijo(t *testing.T) {
	d := costeo.ParseMedida("30x15 Ø 6", "Estribo")

	assert.Equal(t, "30x15", d.Medida)
	assert.Equal(t, "6", d.Diametro)
}

// ─── BuscarProducto ───────────────────────────────────────────────────────────

func catalogoDePrueba() []entity.Producto {
	return []entity.Producto{
		{ID: "p1", Nombre: "Estribo", Medida: "20x20", Diametro: "4.2", Forma: entity.FormaCuadrado, Precio: decimal.NewFromInt(500)},
		{ID: "p2", Nombre: "Estribo", Medida: "20x20", Diametro: "6", Forma: entity.FormaCuadrado, Precio: decimal.NewFromInt(700)},
		{ID: "p3", Nombre: "Caño estructural", Medida: "1.5 pulgadas", Precio: decimal.NewFromInt(1200)},
	}
}

func TestBuscarProducto_ConDiametroExigeLosTresCampos(t *testing.T) {
	res := costeo.BuscarProducto(costeo.ParseMedida("20x20 Ø 6mm", "Estribo"), catalogoDePrueba())

	require.NotNil(t, res.Producto)
	assert.Equal(t, "p2", res.Producto.ID, "debe elegir la variante del diámetro pedido")
	assert.Equal(t, 1, res.Candidatos)
}

func TestBuscarProducto_SinDiametroIgnoraElDiametro(t *testing.T) {
	res := costeo.BuscarProducto(costeo.ParseMedida("1.5 pulgadas", "Caño estructural"), catalogoDePrueba())

	require.NotNil(t, res.Producto)
	assert.Equal(t, "p3", res.Producto.ID)
}

func TestBuscarProducto_SinMatchDevuelveNilNoError(t *testing.T) {
	res := costeo.BuscarProducto(costeo.ParseMedida("99x99 Ø 4.2mm", "Estribo"), catalogoDePrueba())

	assert.Nil(t, res.Producto, "sin match no es un error: el caller lo trata como costo desconocido")
	assert.Zero(t, res.Candidatos)
}

func TestBuscarProducto_MultiplesGanaElPrimero(t *testing.T) {
	// sin diámetro, "20x20 Estribo" matchea p1 y p2: duplicado de datos que el
	// motor no resuelve; gana el primero y Candidatos lo delata.
	res := costeo.BuscarProducto(costeo.ParseMedida("20x20", "Estribo"), catalogoDePrueba())

	require.NotNil(t, res.Producto)
	assert.Equal(t, "p1", res.Producto.ID)
	assert.Equal(t, 2, res.Candidatos)
}

func TestBuscarProducto_IgnoraMayusculasYAcentos(t *testing.T) {
	res := costeo.BuscarProducto(costeo.ParseMedida("1.5 PULGADAS", "caño estructural"), catalogoDePrueba())

	require.NotNil(t, res.Producto)
	assert.Equal(t, "p3", res.Producto.ID)
}
