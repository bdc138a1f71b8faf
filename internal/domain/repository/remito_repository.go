package repository

import "github.com/hierrosur/costos-api/internal/domain/entity"

// RemitoRepository define el puerto de persistencia para remitos y sus líneas.
type RemitoRepository interface {
	Create(r *entity.Remito, items []entity.RemitoItem) error
	GetByID(id string) (*entity.Remito, error)
	GetItems(remitoID string) ([]entity.RemitoItem, error)
	// ListByCliente devuelve el historial completo de remitos del cliente,
	// del más reciente al más antiguo.
	ListByCliente(clienteID string) ([]entity.Remito, error)
	// NextNumero reserva y devuelve el próximo número correlativo de remito.
	NextNumero() (int64, error)
}
