package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cabuya-planner/internal/storage"
)

func (s *Storage) GetOrders(ctx context.Context) ([]*storage.Order, error) {
	const op = "storage.orders.GetOrders.sql"

	stmt := `SELECT o.id, o.denier_id, COALESCE(d.name, ''), o.cabuya_codigo,
	                o.total_kg, o.produced_kg, COALESCE(o.required_date, ''), o.status
	         FROM orders o
	         LEFT JOIN deniers d ON d.id = o.denier_id
	         WHERE o.status != 'completado'
	         ORDER BY o.required_date, o.id`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order
	for rows.Next() {
		var o storage.Order
		var denierID sql.NullString

		err := rows.Scan(&o.ID, &denierID, &o.DenierName, &o.CabuyaCodigo,
			&o.TotalKg, &o.ProducedKg, &o.RequiredDate, &o.Status)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if denierID.Valid {
			o.DenierID = &denierID.String
		}

		orders = append(orders, &o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (s *Storage) SaveOrder(ctx context.Context, o *storage.Order) (string, error) {
	const op = "storage.orders.SaveOrder.sql"

	id := uuid.NewString()

	stmt := `INSERT INTO orders (id, denier_id, cabuya_codigo, total_kg, produced_kg, required_date, status)
	         VALUES (?, ?, ?, ?, 0, ?, 'pendiente')`

	_, err := s.db.ExecContext(ctx, stmt, id, o.DenierID, o.CabuyaCodigo, o.TotalKg, o.RequiredDate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpdateOrderProduced adds reported kg to an order and closes it once the
// total is covered.
func (s *Storage) UpdateOrderProduced(ctx context.Context, id string, kg float64) error {
	const op = "storage.orders.UpdateOrderProduced.sql"

	stmt := `UPDATE orders
	         SET produced_kg = produced_kg + ?,
	             status = IF(produced_kg >= total_kg, 'completado', status)
	         WHERE id = ?`

	res, err := s.db.ExecContext(ctx, stmt, kg, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: order %s not found", op, id)
	}

	return nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id string) error {
	const op = "storage.orders.DeleteOrder.sql"

	_, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
