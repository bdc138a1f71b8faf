package costeo

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DoblezCmDefault es el alambre extra (cm) que consume cada doblez del estribo.
var DoblezCmDefault = decimal.NewFromInt(6)

// EstimadorEstribo calcula el costo de material de un estribo a partir de su
// medida. El largo de alambre es el perímetro de la figura más dos dobleces;
// el costo sale del peso lineal del alambre y su precio por kilo.
type EstimadorEstribo struct {
	DoblezCm    decimal.Decimal // cm por doblez (default 6)
	KgPorMetro  decimal.Decimal // peso lineal del alambre (kg/m), ej. 0.395 para Ø 4.2
	PrecioPorKg decimal.Decimal // precio del alambre ($/kg)
}

// NewEstimadorEstribo construye el estimador con el doblez por defecto.
func NewEstimadorEstribo(kgPorMetro, precioPorKg decimal.Decimal) EstimadorEstribo {
	return EstimadorEstribo{
		DoblezCm:    DoblezCmDefault,
		KgPorMetro:  kgPorMetro,
		PrecioPorKg: precioPorKg,
	}
}

// ParseDimensiones tokeniza una medida tipo "20x30" o "10X10x10" en 1 a 3
// dimensiones en centímetros. Acepta coma o punto decimal. Un token vacío o
// no numérico invalida toda la medida (ok=false, sin error): las pantallas de
// carga masiva siguen funcionando y la línea queda con largo cero.
func ParseDimensiones(medida string) (dims []decimal.Decimal, ok bool) {
	partes := strings.Split(strings.ToLower(strings.TrimSpace(medida)), "x")
	if len(partes) == 0 || len(partes) > 3 {
		return nil, false
	}
	dims = make([]decimal.Decimal, 0, len(partes))
	for _, p := range partes {
		p = strings.ReplaceAll(strings.TrimSpace(p), ",", ".")
		d, err := decimal.NewFromString(p)
		if err != nil || d.IsNegative() {
			return nil, false
		}
		dims = append(dims, d)
	}
	return dims, true
}

// Perimetro aplica la regla de perímetro (cm). La forma declarada manda sobre
// la cantidad de dimensiones:
//   - Cuadrado: 4·d1 (todos los lados iguales)
//   - Rectangular: 2·(d1+d2)
//   - Triangular: d1+d2+d3
//
// Sin forma (o con una etiqueta no reconocida) decide la cantidad de
// dimensiones: 1 cuadrado, 2 rectángulo, 3 triángulo. Una combinación
// irreconocible (ej. forma Triangular con dos números) cae a la regla
// rectangular si hay exactamente dos dimensiones; si no, 0.
func Perimetro(dims []decimal.Decimal, forma string) decimal.Decimal {
	cuatro := decimal.NewFromInt(4)
	switch normalizar(forma) {
	case "cuadrado":
		if len(dims) >= 1 {
			return cuatro.Mul(dims[0])
		}
	case "rectangular":
		if len(dims) >= 2 {
			return dos.Mul(dims[0].Add(dims[1]))
		}
	case "triangular":
		if len(dims) >= 3 {
			return dims[0].Add(dims[1]).Add(dims[2])
		}
	default:
		switch len(dims) {
		case 1:
			return cuatro.Mul(dims[0])
		case 2:
			return dos.Mul(dims[0].Add(dims[1]))
		case 3:
			return dims[0].Add(dims[1]).Add(dims[2])
		}
		return decimal.Zero
	}
	// forma reconocida pero sin las dimensiones que pide
	if len(dims) == 2 {
		return dos.Mul(dims[0].Add(dims[1]))
	}
	return decimal.Zero
}

// LargoConDobleces suma al perímetro el alambre de los dos dobleces de cierre.
// Un perímetro cero (medida inválida) queda en cero: no se cobran dobleces de
// un estribo que no se pudo interpretar.
func (e EstimadorEstribo) LargoConDobleces(perimetroCm decimal.Decimal) decimal.Decimal {
	if !perimetroCm.IsPositive() {
		return decimal.Zero
	}
	return perimetroCm.Add(dos.Mul(e.DoblezCm))
}

// MetrosPorUnidad corre el pipeline completo medida→dimensiones→perímetro→
// dobleces y convierte a metros. Medida inválida devuelve 0.
func (e EstimadorEstribo) MetrosPorUnidad(medida, forma string) decimal.Decimal {
	dims, ok := ParseDimensiones(medida)
	if !ok {
		return decimal.Zero
	}
	return e.LargoConDobleces(Perimetro(dims, forma)).Div(cien)
}

// CostoUnitario estima el costo de material de un estribo:
// metros × kg/m × $/kg.
func (e EstimadorEstribo) CostoUnitario(medida, forma string) decimal.Decimal {
	return e.MetrosPorUnidad(medida, forma).Mul(e.KgPorMetro).Mul(e.PrecioPorKg)
}
