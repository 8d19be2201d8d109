package mysql

import (
	"context"
	"fmt"

	"cabuya-planner/internal/storage"
)

func (s *Storage) GetProducts(ctx context.Context) ([]*storage.Product, error) {
	const op = "storage.products.GetProducts.sql"

	stmt := `SELECT codigo, descripcion, referencia_denier, existencias, inventario_seguridad, prioridad
	         FROM products
	         ORDER BY codigo`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []*storage.Product
	for rows.Next() {
		var p storage.Product
		err := rows.Scan(&p.Codigo, &p.Descripcion, &p.ReferenciaDenier,
			&p.Existencias, &p.InventarioSeguridad, &p.Prioridad)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return products, nil
}

func (s *Storage) UpdateProductPriority(ctx context.Context, codigo string, priority bool) error {
	const op = "storage.products.UpdateProductPriority.sql"

	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET prioridad = ? WHERE codigo = ?`, priority, codigo)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: product %s not found", op, codigo)
	}

	return nil
}

func (s *Storage) UpdateProductSafetyStock(ctx context.Context, codigo string, kg float64) error {
	const op = "storage.products.UpdateProductSafetyStock.sql"

	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET inventario_seguridad = ? WHERE codigo = ?`, kg, codigo)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: product %s not found", op, codigo)
	}

	return nil
}
