package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

var _ repository.RemitoRepository = (*RemitoRepo)(nil)

// RemitoRepo implementación de RemitoRepository sobre PostgreSQL.
// Create usa una transacción propia (cabecera + líneas atómicas), por eso
// recibe el pool y no un Querier genérico.
type RemitoRepo struct {
	pool *pgxpool.Pool
}

// NewRemitoRepository construye el adaptador de remitos.
func NewRemitoRepository(pool *pgxpool.Pool) *RemitoRepo {
	return &RemitoRepo{pool: pool}
}

// Create persiste la cabecera y las líneas en una misma transacción.
func (r *RemitoRepo) Create(remito *entity.Remito, items []entity.RemitoItem) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO remitos (id, numero, cliente_id, fecha, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		remito.ID, remito.Numero, remito.ClienteID, remito.Fecha, remito.Total, remito.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert remito: %w", err)
	}
	for i := range items {
		it := &items[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO remito_items (id, remito_id, cantidad, medida, producto, precio_unitario, importe)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, it.RemitoID, it.Cantidad, it.Medida, it.Producto, it.PrecioUnitario, it.Importe,
		)
		if err != nil {
			return fmt.Errorf("insert remito item: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un remito.
func (r *RemitoRepo) GetByID(id string) (*entity.Remito, error) {
	query := `
		SELECT id, numero, cliente_id, fecha, total, created_at
		FROM remitos WHERE id = $1`
	var rem entity.Remito
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rem.ID, &rem.Numero, &rem.ClienteID, &rem.Fecha, &rem.Total, &rem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	return &rem, nil
}

// GetItems devuelve las líneas de un remito en el orden en que se cargaron.
func (r *RemitoRepo) GetItems(remitoID string) ([]entity.RemitoItem, error) {
	query := `
		SELECT id, remito_id, cantidad, medida, producto, precio_unitario, importe
		FROM remito_items WHERE remito_id = $1 ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, remitoID)
	if err != nil {
		return nil, fmt.Errorf("list remito items: %w", err)
	}
	defer rows.Close()
	var list []entity.RemitoItem
	for rows.Next() {
		var it entity.RemitoItem
		if err := rows.Scan(&it.ID, &it.RemitoID, &it.Cantidad, &it.Medida, &it.Producto, &it.PrecioUnitario, &it.Importe); err != nil {
			return nil, fmt.Errorf("scan remito item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListByCliente devuelve el historial de remitos del cliente, del más reciente al más antiguo.
func (r *RemitoRepo) ListByCliente(clienteID string) ([]entity.Remito, error) {
	query := `
		SELECT id, numero, cliente_id, fecha, total, created_at
		FROM remitos WHERE cliente_id = $1 ORDER BY numero DESC`
	rows, err := r.pool.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
	}
	defer rows.Close()
	var list []entity.Remito
	for rows.Next() {
		var rem entity.Remito
		if err := rows.Scan(&rem.ID, &rem.Numero, &rem.ClienteID, &rem.Fecha, &rem.Total, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

// NextNumero reserva el próximo número correlativo vía secuencia de PostgreSQL.
func (r *RemitoRepo) NextNumero() (int64, error) {
	var n int64
	err := r.pool.QueryRow(context.Background(), `SELECT nextval('remitos_numero_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next numero remito: %w", err)
	}
	return n, nil
}
