package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cabuya-planner/internal/storage"
)

func (s *Storage) SavePlan(ctx context.Context, name string, plan []byte) (string, error) {
	const op = "storage.plans.SavePlan.sql"

	id := uuid.NewString()

	stmt := `INSERT INTO saved_plans (id, name, plan_data, created_at) VALUES (?, ?, ?, NOW())`

	_, err := s.db.ExecContext(ctx, stmt, id, name, plan)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetSavedPlans(ctx context.Context) ([]*storage.SavedPlan, error) {
	const op = "storage.plans.GetSavedPlans.sql"

	stmt := `SELECT id, name, plan_data, created_at FROM saved_plans ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var plans []*storage.SavedPlan
	for rows.Next() {
		var p storage.SavedPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Plan, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		plans = append(plans, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return plans, nil
}
