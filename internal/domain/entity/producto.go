package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas reconocidas de un estribo (determinan la regla de perímetro).
const (
	FormaCuadrado    = "Cuadrado"
	FormaRectangular = "Rectangular"
	FormaTriangular  = "Triangular"
)

// Producto representa una entrada del catálogo de venta.
// La identidad comercial es la tupla (Medida, Diametro, Nombre); se asume única
// en el catálogo pero el motor no lo impone.
type Producto struct {
	ID        string
	Nombre    string
	Medida    string          // etiqueta libre, ej. "20x20" o "1.5 pulgadas"
	Diametro  string          // opcional, ej. "4.2" (mm de alambre)
	Forma     string          // opcional: Cuadrado | Rectangular | Triangular | otra
	Precio    decimal.Decimal // precio de venta unitario (IVA incluido)
	CreatedAt time.Time
	UpdatedAt time.Time
}
