package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hierrosur/costos-api/internal/application/usecase"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeRemitoRepo struct {
	remitos map[string]entity.Remito
	items   map[string][]entity.RemitoItem
}

func (f *fakeRemitoRepo) Create(r *entity.Remito, items []entity.RemitoItem) error {
	f.remitos[r.ID] = *r
	f.items[r.ID] = items
	return nil
}

func (f *fakeRemitoRepo) GetByID(id string) (*entity.Remito, error) {
	r, ok := f.remitos[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRemitoRepo) GetItems(remitoID string) ([]entity.RemitoItem, error) {
	return f.items[remitoID], nil
}

func (f *fakeRemitoRepo) ListByCliente(clienteID string) ([]entity.Remito, error) {
	var out []entity.Remito
	for _, r := range f.remitos {
		if r.ClienteID == clienteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRemitoRepo) NextNumero() (int64, error) { return int64(len(f.remitos) + 1), nil }

type fakeClienteRepo struct {
	clientes map[string]entity.Cliente
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	f.clientes[c.ID] = *c
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeClienteRepo) List(limit, offset int) ([]entity.Cliente, error) { return nil, nil }

type fakeProductoRepo struct {
	productos []entity.Producto
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error             { return nil }
func (f *fakeProductoRepo) Update(p *entity.Producto) error             { return nil }
func (f *fakeProductoRepo) Delete(id string) error                      { return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) ListAll() ([]entity.Producto, error)         { return f.productos, nil }
func (f *fakeProductoRepo) List(limit, offset int) ([]entity.Producto, error) {
	return f.productos, nil
}

type fakeCostoRepo struct {
	costos []entity.CostoProduccion
}

func (f *fakeCostoRepo) Upsert(c *entity.CostoProduccion) error { return nil }
func (f *fakeCostoRepo) Delete(productoID string) error         { return nil }
func (f *fakeCostoRepo) GetByProductoID(productoID string) (*entity.CostoProduccion, error) {
	for i := range f.costos {
		if f.costos[i].ProductoID == productoID {
			return &f.costos[i], nil
		}
	}
	return nil, nil
}
func (f *fakeCostoRepo) ListAll() ([]entity.CostoProduccion, error) { return f.costos, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Escenario: un cliente con un remito de estribos, costo cargado solo para uno
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func armarEscenario() (*usecase.AnalisisUseCase, string, string) {
	productoRepo := &fakeProductoRepo{productos: []entity.Producto{
		{ID: "p1", Nombre: "Estribo", Medida: "20x20", Diametro: "4.2", Forma: entity.FormaCuadrado},
		{ID: "p2", Nombre: "Estribo", Medida: "20x20", Diametro: "6"},
	}}
	// Solo p1 tiene costo: 302.50 con IVA = 250 neto a tasa 21%.
	costoRepo := &fakeCostoRepo{costos: []entity.CostoProduccion{
		{ProductoID: "p1", Costo: dec("302.50"), MargenGanancia: dec("90")},
	}}
	clienteRepo := &fakeClienteRepo{clientes: map[string]entity.Cliente{
		"c1": {ID: "c1", Nombre: "Corralón El Túnel", CreatedAt: time.Now()},
	}}
	remitoRepo := &fakeRemitoRepo{
		remitos: map[string]entity.Remito{
			"r1": {ID: "r1", Numero: 1, ClienteID: "c1", Fecha: time.Now(), Total: dec("5000")},
		},
		items: map[string][]entity.RemitoItem{
			"r1": {
				{ID: "i1", RemitoID: "r1", Cantidad: 10, Medida: "20x20 Ø 4.2mm", Producto: "Estribo",
					PrecioUnitario: dec("500"), Importe: dec("5000")},
			},
		},
	}

	uc := usecase.NewAnalisisUseCase(remitoRepo, clienteRepo, productoRepo, costoRepo, dec("21"))
	return uc, "r1", "c1"
}

func TestAnalizarRemito_CostoResuelto(t *testing.T) {
	uc, remitoID, _ := armarEscenario()

	out, err := uc.AnalizarRemito(remitoID)
	require.NoError(t, err)

	// 10 estribos a costo 302.50 = 3025; ganancia = 5000 - 3025 = 1975.
	assert.True(t, dec("3025").Equal(out.CostoTotal), "el costo total debe ser 3025, fue %s", out.CostoTotal)
	assert.True(t, dec("1975").Equal(out.GananciaReal), "la ganancia real debe ser 1975, fue %s", out.GananciaReal)
	// IVA del costo: 3025 - 3025/1.21 = 525 exacto.
	assert.True(t, dec("525").Equal(out.IVACosto), "el IVA del costo debe ser 525, fue %s", out.IVACosto)
	assert.Equal(t, "867.77", out.IVAVenta.StringFixed(2), "el IVA de la venta debe redondear a 867.77")
	assert.False(t, out.CostosIncompletos, "con todos los costos resueltos no debe marcar incompletos")
	assert.Zero(t, out.ItemsSinCosto)
}

func TestAnalizarRemito_ItemSinCostoMarcaIncompleto(t *testing.T) {
	// Remito cuya única línea matchea un producto sin costo cargado.
	productoRepo := &fakeProductoRepo{productos: []entity.Producto{
		{ID: "p2", Nombre: "Estribo", Medida: "20x20", Diametro: "6"},
	}}
	costoRepo := &fakeCostoRepo{}
	clienteRepo := &fakeClienteRepo{clientes: map[string]entity.Cliente{
		"c1": {ID: "c1", Nombre: "Corralón El Túnel"},
	}}
	remitoRepo := &fakeRemitoRepo{
		remitos: map[string]entity.Remito{
			"r2": {ID: "r2", Numero: 2, ClienteID: "c1", Fecha: time.Now(), Total: dec("1210")},
		},
		items: map[string][]entity.RemitoItem{
			"r2": {
				{ID: "i1", RemitoID: "r2", Cantidad: 2, Medida: "20x20 Ø 6mm", Producto: "Estribo",
					PrecioUnitario: dec("605"), Importe: dec("1210")},
			},
		},
	}
	uc := usecase.NewAnalisisUseCase(remitoRepo, clienteRepo, productoRepo, costoRepo, dec("21"))

	out, err := uc.AnalizarRemito("r2")
	require.NoError(t, err)

	assert.True(t, out.CostosIncompletos, "una línea sin costo debe marcar costos incompletos")
	assert.Equal(t, 1, out.ItemsSinCosto)
	assert.True(t, out.CostoTotal.IsZero(), "sin costos el costo total degrada a cero")
	assert.True(t, dec("1210").Equal(out.GananciaReal), "sin costos la ganancia aparente es el total")
}

func TestAnalizarRemito_NoExiste(t *testing.T) {
	uc, _, _ := armarEscenario()

	_, err := uc.AnalizarRemito("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentabilidadCliente_AgregaHistorial(t *testing.T) {
	uc, _, clienteID := armarEscenario()

	out, err := uc.RentabilidadCliente(clienteID)
	require.NoError(t, err)

	assert.Equal(t, "Corralón El Túnel", out.Cliente)
	assert.Equal(t, 1, out.Remitos)
	assert.True(t, dec("5000").Equal(out.VentasTotales), "las ventas totales deben ser 5000, fueron %s", out.VentasTotales)
	assert.True(t, dec("1975").Equal(out.GananciaTotal), "la ganancia total debe ser 1975, fue %s", out.GananciaTotal)
	// Saldo de IVA = débito (venta 867.77) − crédito (costo 525) > 0: a pagar.
	assert.Equal(t, "342.77", out.IVASaldo.StringFixed(2), "vendiendo con margen el saldo de IVA queda a pagar")
	assert.False(t, out.CostosIncompletos)
}

func TestRentabilidadCliente_NoExiste(t *testing.T) {
	uc, _, _ := armarEscenario()

	_, err := uc.RentabilidadCliente("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
