package costeo

import (
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/domain/entity"
)

// EstadoCosto etiqueta el resultado de resolver el costo de una línea, para
// que el caller distinga "cero porque no cuesta nada" de "cero porque falta
// cargar el costo". Solo la capa de agregación colapsa los estados a cero.
type EstadoCosto int

const (
	// CostoResuelto la línea matcheó un producto con costo cargado.
	CostoResuelto EstadoCosto = iota
	// CostoSinProducto la línea no matcheó ninguna entrada del catálogo.
	CostoSinProducto
	// CostoSinRegistro el producto existe pero no tiene costo de producción cargado.
	CostoSinRegistro
)

// ResultadoCosto es el costo de producción de una línea de remito.
// Importe es costo unitario × cantidad, o cero si el estado no es resuelto.
type ResultadoCosto struct {
	Estado   EstadoCosto
	Importe  decimal.Decimal
	Producto *entity.Producto // nil si Estado == CostoSinProducto
}

// IndexarCostos arma el índice por producto que consume ResolverCostoItem a
// partir del snapshot plano que entrega la persistencia.
func IndexarCostos(costos []entity.CostoProduccion) map[string]entity.CostoProduccion {
	m := make(map[string]entity.CostoProduccion, len(costos))
	for _, c := range costos {
		m[c.ProductoID] = c
	}
	return m
}

// ResolverCostoItem reconcilia una línea de remito con su costo de producción:
// parsea la medida serializada, matchea contra el catálogo y busca el costo
// registrado. Nunca falla: cada paso que no resuelve degrada al estado
// etiquetado correspondiente con importe cero. Es libre de efectos y puede
// ejecutarse en paralelo sobre líneas independientes.
func ResolverCostoItem(item entity.RemitoItem, catalogo []entity.Producto, costos map[string]entity.CostoProduccion) ResultadoCosto {
	match := BuscarProducto(ParseMedida(item.Medida, item.Producto), catalogo)
	if match.Producto == nil {
		return ResultadoCosto{Estado: CostoSinProducto}
	}
	costo, ok := costos[match.Producto.ID]
	if !ok {
		return ResultadoCosto{Estado: CostoSinRegistro, Producto: match.Producto}
	}
	return ResultadoCosto{
		Estado:   CostoResuelto,
		Importe:  costo.Costo.Mul(decimal.NewFromInt(item.Cantidad)),
		Producto: match.Producto,
	}
}
