package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

var _ repository.CostoRepository = (*CostoRepo)(nil)

// CostoRepo implementación de CostoRepository sobre PostgreSQL (usable con pool o tx).
type CostoRepo struct {
	q Querier
}

// NewCostoRepository construye el adaptador de costos de producción. Pasar pool o tx (Querier).
func NewCostoRepository(q Querier) *CostoRepo {
	return &CostoRepo{q: q}
}

// Upsert crea o reemplaza el costo del producto (relación 1 a 1 por producto_id).
func (r *CostoRepo) Upsert(c *entity.CostoProduccion) error {
	query := `
		INSERT INTO costos_produccion (producto_id, costo, margen_ganancia, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (producto_id) DO UPDATE SET costo = $2, margen_ganancia = $3, updated_at = $4`
	_, err := r.q.Exec(context.Background(), query,
		c.ProductoID, c.Costo, c.MargenGanancia, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert costo: %w", err)
	}
	return nil
}

// Delete elimina el costo asociado a un producto.
func (r *CostoRepo) Delete(productoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM costos_produccion WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete costo: %w", err)
	}
	return nil
}

// GetByProductoID obtiene el costo de un producto.
func (r *CostoRepo) GetByProductoID(productoID string) (*entity.CostoProduccion, error) {
	query := `
		SELECT producto_id, costo, margen_ganancia, updated_at
		FROM costos_produccion WHERE producto_id = $1`
	var c entity.CostoProduccion
	err := r.q.QueryRow(context.Background(), query, productoID).Scan(
		&c.ProductoID, &c.Costo, &c.MargenGanancia, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get costo: %w", err)
	}
	return &c, nil
}

// ListAll devuelve el snapshot de todos los costos cargados.
func (r *CostoRepo) ListAll() ([]entity.CostoProduccion, error) {
	query := `
		SELECT producto_id, costo, margen_ganancia, updated_at
		FROM costos_produccion`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list costos: %w", err)
	}
	defer rows.Close()
	var list []entity.CostoProduccion
	for rows.Next() {
		var c entity.CostoProduccion
		if err := rows.Scan(&c.ProductoID, &c.Costo, &c.MargenGanancia, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan costo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
