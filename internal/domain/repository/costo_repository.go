package repository

import "github.com/hierrosur/costos-api/internal/domain/entity"

// CostoRepository define el puerto de persistencia para costos de producción.
type CostoRepository interface {
	// Upsert crea o reemplaza el costo del producto (relación 1 a 1).
	Upsert(c *entity.CostoProduccion) error
	Delete(productoID string) error
	GetByProductoID(productoID string) (*entity.CostoProduccion, error)
	// ListAll devuelve el snapshot de todos los costos cargados.
	ListAll() ([]entity.CostoProduccion, error)
}
