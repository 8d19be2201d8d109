package storage

// Denier is one yarn-thickness family in the catalog.
type Denier struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CycleTime float64 `json:"cycle_time"`
}

// MachineDenierConfig binds a torsion machine to a denier family with the
// parameters it runs that family at.
type MachineDenierConfig struct {
	MachineID      string `json:"machine_id"`
	Denier         string `json:"denier"`
	RPM            int    `json:"rpm"`
	TorsionesMetro int    `json:"torsiones_metro"`
	Husos          int    `json:"husos"`
}

// RewinderDenierConfig holds the rewinder cycle parameters of a family.
type RewinderDenierConfig struct {
	Denier     string  `json:"denier"`
	MPSegundos float64 `json:"mp_segundos"`
	TMMinutos  float64 `json:"tm_minutos"`
}

// Shift is one calendar date with its declared working hours (0-24).
type Shift struct {
	Date         string `json:"date"`
	WorkingHours int    `json:"working_hours"`
}
