package repository

import "github.com/hierrosur/costos-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para el catálogo.
// Los métodos Get* devuelven (nil, nil) cuando el recurso no existe.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	Update(p *entity.Producto) error
	Delete(id string) error
	GetByID(id string) (*entity.Producto, error)
	// ListAll devuelve el snapshot completo del catálogo; el motor de costeo
	// matchea en memoria sobre esta foto para que un análisis vea un único
	// punto consistente en el tiempo.
	ListAll() ([]entity.Producto, error)
	List(limit, offset int) ([]entity.Producto, error)
}
