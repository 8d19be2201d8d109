package mysql

import (
	"context"
	"fmt"

	"cabuya-planner/internal/storage"
)

func (s *Storage) GetDeniers(ctx context.Context) ([]*storage.Denier, error) {
	const op = "storage.capacity.GetDeniers.sql"

	stmt := `SELECT id, name, cycle_time FROM deniers ORDER BY name`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var deniers []*storage.Denier
	for rows.Next() {
		var d storage.Denier
		if err := rows.Scan(&d.ID, &d.Name, &d.CycleTime); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		deniers = append(deniers, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deniers, nil
}

func (s *Storage) GetMachineDenierConfigs(ctx context.Context) ([]*storage.MachineDenierConfig, error) {
	const op = "storage.capacity.GetMachineDenierConfigs.sql"

	stmt := `SELECT machine_id, denier, rpm, torsiones_metro, husos
	         FROM machine_denier_config
	         ORDER BY machine_id, denier`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var configs []*storage.MachineDenierConfig
	for rows.Next() {
		var c storage.MachineDenierConfig
		if err := rows.Scan(&c.MachineID, &c.Denier, &c.RPM, &c.TorsionesMetro, &c.Husos); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		configs = append(configs, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

func (s *Storage) UpsertMachineDenierConfig(ctx context.Context, c *storage.MachineDenierConfig) error {
	const op = "storage.capacity.UpsertMachineDenierConfig.sql"

	stmt := `INSERT INTO machine_denier_config (machine_id, denier, rpm, torsiones_metro, husos)
	         VALUES (?, ?, ?, ?, ?)
	         ON DUPLICATE KEY UPDATE rpm = VALUES(rpm), torsiones_metro = VALUES(torsiones_metro), husos = VALUES(husos)`

	_, err := s.db.ExecContext(ctx, stmt, c.MachineID, c.Denier, c.RPM, c.TorsionesMetro, c.Husos)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetRewinderConfigs(ctx context.Context) ([]*storage.RewinderDenierConfig, error) {
	const op = "storage.capacity.GetRewinderConfigs.sql"

	stmt := `SELECT denier, mp_segundos, tm_minutos FROM rewinder_denier_config ORDER BY denier`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var configs []*storage.RewinderDenierConfig
	for rows.Next() {
		var c storage.RewinderDenierConfig
		if err := rows.Scan(&c.Denier, &c.MPSegundos, &c.TMMinutos); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		configs = append(configs, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

func (s *Storage) UpsertRewinderConfig(ctx context.Context, c *storage.RewinderDenierConfig) error {
	const op = "storage.capacity.UpsertRewinderConfig.sql"

	stmt := `INSERT INTO rewinder_denier_config (denier, mp_segundos, tm_minutos)
	         VALUES (?, ?, ?)
	         ON DUPLICATE KEY UPDATE mp_segundos = VALUES(mp_segundos), tm_minutos = VALUES(tm_minutos)`

	_, err := s.db.ExecContext(ctx, stmt, c.Denier, c.MPSegundos, c.TMMinutos)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) GetShifts(ctx context.Context) ([]*storage.Shift, error) {
	const op = "storage.capacity.GetShifts.sql"

	stmt := `SELECT date, working_hours FROM shifts ORDER BY date`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var shifts []*storage.Shift
	for rows.Next() {
		var sh storage.Shift
		if err := rows.Scan(&sh.Date, &sh.WorkingHours); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		shifts = append(shifts, &sh)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shifts, nil
}

func (s *Storage) UpsertShift(ctx context.Context, sh *storage.Shift) error {
	const op = "storage.capacity.UpsertShift.sql"

	stmt := `INSERT INTO shifts (date, working_hours)
	         VALUES (?, ?)
	         ON DUPLICATE KEY UPDATE working_hours = VALUES(working_hours)`

	_, err := s.db.ExecContext(ctx, stmt, sh.Date, sh.WorkingHours)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
