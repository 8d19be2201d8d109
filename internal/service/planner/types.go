package planner

import (
	"fmt"
	"time"
)

// Strategy selects how the calendar is traversed. Both strategies feed the
// same daily-entry and machine-load structures, so aggregation and
// redistribution are strategy-agnostic.
type Strategy string

const (
	// StrategyFixedShift divides each day into fixed shift blocks and lets
	// every active reference compete for posts within each block.
	StrategyFixedShift Strategy = "fixed_shift"
	// StrategyContinuous runs references one at a time to exhaustion,
	// advancing a single clock across hour and day boundaries.
	StrategyContinuous Strategy = "continuous"
)

// OrderPolicy selects how the backlog is ordered before allocation.
type OrderPolicy string

const (
	// OrderDenierDesc schedules thicker deniers first.
	OrderDenierDesc OrderPolicy = "denier_desc"
	// OrderPriorityFirst puts flagged references ahead, thicker deniers first
	// within each group.
	OrderPriorityFirst OrderPolicy = "priority_first"
)

// BacklogEntry is one pending reference as received from the caller.
type BacklogEntry struct {
	Denier      string  `json:"denier"`
	Kg          float64 `json:"kg_total"`
	Priority    bool    `json:"is_priority"`
	Description string  `json:"description"`
}

// RewinderCapacity is the finishing-stage profile of a denier family.
type RewinderCapacity struct {
	KgPerHour float64 `json:"kg_per_hour"`
	NOptimo   int     `json:"n_optimo"`
}

// Machine is one torsion machine with its throughput for a denier family.
type Machine struct {
	ID  string  `json:"machine_id"`
	Kgh float64 `json:"kgh"`
}

// TorsionCapacity is the feeder-stage profile of a denier family.
type TorsionCapacity struct {
	TotalKgh float64   `json:"total_kgh"`
	Machines []Machine `json:"machines"`
}

// ShiftDay declares the working hours available on one calendar date.
// Dates absent from the calendar default to 24 hours.
type ShiftDay struct {
	Date         string `json:"date"`
	WorkingHours int    `json:"working_hours"`
}

// Input is one planning run's snapshot. The engine never mutates it and
// owns every structure it derives from it.
type Input struct {
	Backlog  map[string]BacklogEntry
	Rewinder map[string]RewinderCapacity
	Torsion  map[string]TorsionCapacity
	Shifts   []ShiftDay

	Strategy   Strategy
	Order      OrderPolicy
	TotalPosts int
	ShiftHours int

	// Now anchors the "start tomorrow at 00:00" rule; injected so that two
	// runs on the same snapshot produce identical output.
	Now time.Time
}

// Allocation is one (shift, reference) assignment. Never mutated after the
// allocator emits it.
type Allocation struct {
	Ref         string  `json:"referencia"`
	Description string  `json:"descripcion"`
	Denier      string  `json:"denier"`
	Shift       string  `json:"turno"`
	Posts       int     `json:"puestos"`
	Crew        int     `json:"operarios"`
	Kg          float64 `json:"kg_producidos"`
	// SupplyRatio is torsion supply over rewinder consumption for the shift.
	SupplyRatio float64 `json:"balance_ratio"`
	// Degraded marks that even the smallest admissible post count broke the
	// 90% mass-balance threshold. The schedule proceeds regardless.
	Degraded bool `json:"degraded"`
}

// MachineLoad is the finalized load of one torsion machine on one date.
type MachineLoad struct {
	Machine string   `json:"maquina"`
	Hours   float64  `json:"horas"`
	Kg      float64  `json:"kg"`
	Refs    []string `json:"referencias"`
}

// TorsionSummary is the post-redistribution feeder demand of one date.
type TorsionSummary struct {
	Machines []MachineLoad `json:"maquinas"`
	TotalKg  float64       `json:"total_kg"`
	// Hours is the day's aggregate production-hours figure: the maximum
	// hours in use across machines.
	Hours float64 `json:"horas"`
	// CapExceeded flags a day left above the 24h cap after the single
	// backward sweep (a day that received pushed-back load is not re-checked).
	CapExceeded bool `json:"cap_exceeded,omitempty"`
}

// DayEntry is the daily calendar row.
type DayEntry struct {
	Date        string         `json:"fecha"`
	Allocations []Allocation   `json:"asignaciones"`
	Torsion     TorsionSummary `json:"torsion"`
	CrewPeak    int            `json:"operarios_pico"`
	PostsActive int            `json:"puestos_activos"`
}

// Finalization records when a reference finished and what it consumed.
type Finalization struct {
	Ref         string  `json:"referencia"`
	Description string  `json:"descripcion"`
	FinishedAt  string  `json:"fecha_finalizacion"`
	AvgPosts    float64 `json:"puestos_promedio"`
	TotalKg     float64 `json:"kg_totales"`
}

// ChartSeries is ready-to-plot time series data.
type ChartSeries struct {
	Dates    []string  `json:"labels"`
	CrewPeak []int     `json:"dataset_operarios"`
	KgPerDay []float64 `json:"dataset_kg_produccion"`
}

// Summary is the run's headline figures.
type Summary struct {
	DaysScheduled int     `json:"total_dias_programados"`
	FinishedAt    string  `json:"fecha_finalizacion_total"`
	TotalKg       float64 `json:"kg_totales_plan"`
	Annotation    string  `json:"comentario_estrategia"`
}

// Result is the complete output of one planning run.
type Result struct {
	Summary      Summary        `json:"resumen_global"`
	Finalization []Finalization `json:"tabla_finalizacion_referencias"`
	Days         []DayEntry     `json:"cronograma_diario"`
	Chart        ChartSeries    `json:"datos_para_grafica"`
}

// ConfigError aborts a run: the configuration makes scheduling structurally
// impossible (empty admissible post set, runaway loop).
type ConfigError struct {
	Ref    string
	Date   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("planner: %s (ref %q, date %s)", e.Reason, e.Ref, e.Date)
	}
	return fmt.Sprintf("planner: %s (ref %q)", e.Reason, e.Ref)
}
