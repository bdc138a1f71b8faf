package costeo

import "github.com/hierrosur/costos-api/internal/domain/entity"

// ResultadoMatch es la salida de BuscarProducto. Candidatos cuenta cuántas
// entradas del catálogo coincidieron: más de una indica un duplicado de datos
// aguas arriba que un administrador debería revisar (el motor no lo resuelve,
// solo lo informa).
type ResultadoMatch struct {
	Producto   *entity.Producto
	Candidatos int
}

// BuscarProducto resuelve un descriptor de línea de remito contra un snapshot
// del catálogo. Reglas, en orden:
//   - con diámetro: coinciden medida, diámetro y nombre;
//   - sin diámetro: coinciden medida y nombre (el diámetro se ignora en ambos lados).
//
// Sin coincidencia devuelve Producto nil; no es un error: el caller lo trata
// como "costo desconocido". Con múltiples coincidencias gana la primera
// encontrada, conservando el comportamiento histórico del sistema.
func BuscarProducto(desc DescriptorMedida, catalogo []entity.Producto) ResultadoMatch {
	var res ResultadoMatch
	medida := normalizar(desc.Medida)
	diametro := normalizar(desc.Diametro)
	nombre := normalizar(desc.Nombre)

	for i := range catalogo {
		p := &catalogo[i]
		if normalizar(p.Medida) != medida || normalizar(p.Nombre) != nombre {
			continue
		}
		if desc.TieneDiametro() && normalizar(p.Diametro) != diametro {
			continue
		}
		res.Candidatos++
		if res.Producto == nil {
			res.Producto = p
		}
	}
	return res
}
