package storage

import (
	"encoding/json"
	"time"
)

// MachineReport is a supervisor-reported event (novedad) against a torsion
// machine: damaged spindles, operator stop, cleaning, missing raw material.
type MachineReport struct {
	ID          string    `json:"id"`
	MachineID   string    `json:"machine_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	ImpactHours float64   `json:"impact_hours"`
	CreatedAt   time.Time `json:"created_at"`
}

// SavedPlan is a persisted planning scenario.
type SavedPlan struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Plan      json.RawMessage `json:"plan_data"`
	CreatedAt time.Time       `json:"created_at"`
}
