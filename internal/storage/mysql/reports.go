package mysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"cabuya-planner/internal/storage"
)

func (s *Storage) SaveMachineReport(ctx context.Context, r *storage.MachineReport) (string, error) {
	const op = "storage.reports.SaveMachineReport.sql"

	id := uuid.NewString()

	stmt := `INSERT INTO machine_reports (id, machine_id, type, description, impact_hours, created_at)
	         VALUES (?, ?, ?, ?, ?, NOW())`

	_, err := s.db.ExecContext(ctx, stmt, id, r.MachineID, r.Type, r.Description, r.ImpactHours)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetMachineReports(ctx context.Context, machineID string) ([]*storage.MachineReport, error) {
	const op = "storage.reports.GetMachineReports.sql"

	stmt := `SELECT id, machine_id, type, description, impact_hours, created_at
	         FROM machine_reports`
	var args []interface{}
	if machineID != "" {
		stmt += ` WHERE machine_id = ?`
		args = append(args, machineID)
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reports []*storage.MachineReport
	for rows.Next() {
		var r storage.MachineReport
		err := rows.Scan(&r.ID, &r.MachineID, &r.Type, &r.Description, &r.ImpactHours, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		reports = append(reports, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reports, nil
}
